// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

// Bounds selects a sub-sequence by three optional stages. A nil field
// means the stage is absent; the zero Bounds passes the source through
// unchanged.
type Bounds struct {
	// Start is the number of items to drop before the first yield.
	Start *int
	// Stop is the maximum number of items to yield. It counts yielded
	// items after the other stages, not a position in the source.
	Stop *int
	// Step keeps one item out of every Step. Must be at least 1 when
	// set.
	Step *int
}

// Int returns a pointer to i, for filling [Bounds] fields inline.
func Int(i int) *int {
	return &i
}

// Slice yields the sub-sequence of src selected by b. The stages always
// compose in the same fixed order, whichever of them are present: drop
// Start items first, then keep every Step-th item, then yield at most
// Stop items. The eight presence combinations reduce to that one
// pipeline:
//
//	{}                   src unchanged
//	{Start}              skip
//	{Stop}               take
//	{Step}               step
//	{Start, Stop}        skip, then take
//	{Start, Step}        skip, then step
//	{Stop, Step}         step, then take
//	{Start, Stop, Step}  skip, then step, then take
//
// The order matters: Stop counts the items that survive skipping and
// stepping, and stepping starts from the first item after the skip.
//
// Slice pulls exactly as many items from src as its output requires and
// no more. Skipped items, including the Step-1 items dropped between
// yields, are pulled only on demand: the items between the last yield
// and the next one are not consumed until the next pull, and nothing at
// all is consumed after the Stop count is reached. The caller can keep
// reading src directly from wherever that leaves it.
//
// Start <= 0 skips nothing, Stop <= 0 yields nothing, and Step < 1
// panics.
func Slice[V any](src Source[V], b Bounds) *Iterator[V, struct{}] {
	s := src
	if b.Start != nil {
		s = &skipSource[V]{src: s, n: *b.Start}
	}
	if b.Step != nil {
		if *b.Step < 1 {
			panic("genertools: non-positive step")
		}
		s = &stepSource[V]{src: s, step: *b.Step}
	}
	if b.Stop != nil {
		s = &takeSource[V]{src: s, left: *b.Stop}
	}
	return Iterate(FromSource(s))
}

// skipSource drops its first n items. The drop happens on the first
// pull, not at construction.
type skipSource[V any] struct {
	src Source[V]
	n   int
}

func (s *skipSource[V]) Next() (V, bool) {
	for ; s.n > 0; s.n-- {
		if _, ok := s.src.Next(); !ok {
			s.n = 0
			var zero V
			return zero, false
		}
	}
	return s.src.Next()
}

// stepSource keeps the first item and every step-th item after it. The
// step-1 items between yields are dropped lazily, on the pull that needs
// the next kept item.
type stepSource[V any] struct {
	src     Source[V]
	step    int
	started bool
}

func (s *stepSource[V]) Next() (V, bool) {
	if s.started {
		for range s.step - 1 {
			if _, ok := s.src.Next(); !ok {
				var zero V
				return zero, false
			}
		}
	}
	s.started = true
	return s.src.Next()
}

// takeSource passes through at most left items, then reports exhaustion
// without touching the underlying source again.
type takeSource[V any] struct {
	src  Source[V]
	left int
}

func (t *takeSource[V]) Next() (V, bool) {
	if t.left <= 0 {
		var zero V
		return zero, false
	}
	t.left--
	return t.src.Next()
}
