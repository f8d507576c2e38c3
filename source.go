// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

// Source is a pull-style sequence: Next returns the next item, or zero
// and false when exhausted. Exhaustion must be stable — once Next has
// returned false it keeps returning false.
//
// Sources are externally owned: constructors like [FilterWhile] and
// [Slice] pull exactly the items they need and no more, so a caller can
// keep reading the same source afterwards from wherever they left it.
type Source[V any] interface {
	Next() (V, bool)
}

// DoubleEnded is a Source that can also give up items from its back.
// The two ends consume from the same remaining range and meet in the
// middle; they never hand out the same item twice.
type DoubleEnded[V any] interface {
	Source[V]
	NextBack() (V, bool)
}

// SliceCursor walks a slice from both ends without copying it.
type SliceCursor[V any] struct {
	items []V
	lo    int
	hi    int
}

// NewSliceCursor returns a cursor over items. The slice is not copied;
// the caller must not shrink it while the cursor is live.
func NewSliceCursor[V any](items []V) *SliceCursor[V] {
	return &SliceCursor[V]{items: items, hi: len(items)}
}

// Next returns the frontmost remaining item.
func (c *SliceCursor[V]) Next() (V, bool) {
	if c.lo >= c.hi {
		var zero V
		return zero, false
	}
	v := c.items[c.lo]
	c.lo++
	return v, true
}

// NextBack returns the backmost remaining item.
func (c *SliceCursor[V]) NextBack() (V, bool) {
	if c.lo >= c.hi {
		var zero V
		return zero, false
	}
	c.hi--
	return c.items[c.hi], true
}

// Len returns the number of remaining items.
func (c *SliceCursor[V]) Len() int {
	return c.hi - c.lo
}

// Span counts through the half-open range [start, stop) from either end.
type Span struct {
	lo int
	hi int
}

// NewSpan returns a cursor over the integers start <= i < stop.
// An empty or inverted range yields nothing.
func NewSpan(start, stop int) *Span {
	if stop < start {
		stop = start
	}
	return &Span{lo: start, hi: stop}
}

// Next returns the smallest remaining integer.
func (s *Span) Next() (int, bool) {
	if s.lo >= s.hi {
		return 0, false
	}
	v := s.lo
	s.lo++
	return v, true
}

// NextBack returns the largest remaining integer.
func (s *Span) NextBack() (int, bool) {
	if s.lo >= s.hi {
		return 0, false
	}
	s.hi--
	return s.hi, true
}

// Len returns the number of remaining integers.
func (s *Span) Len() int {
	return s.hi - s.lo
}
