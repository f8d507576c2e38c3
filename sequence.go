// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

import (
	"iter"
)

// Once returns an iterator that produces v exactly once.
func Once[V any](v V) *Iterator[V, struct{}] {
	return Iterate(Generate(func(yield func(V) bool) struct{} {
		yield(v)
		return struct{}{}
	}))
}

// Repeat returns an iterator that produces v forever.
func Repeat[V any](v V) *Iterator[V, struct{}] {
	return Iterate(Generate(func(yield func(V) bool) struct{} {
		for yield(v) {
		}
		return struct{}{}
	}))
}

// RepeatN returns an iterator that produces v exactly n times.
// n <= 0 gives an iterator that is exhausted from the start.
func RepeatN[V any](v V, n int) *Iterator[V, struct{}] {
	return Iterate(Generate(func(yield func(V) bool) struct{} {
		for range n {
			if !yield(v) {
				break
			}
		}
		return struct{}{}
	}))
}

// FilterWhile yields items from src while pred holds. The first failing
// item is consumed and dropped; after it, every remaining item of src is
// yielded with no further predicate checks.
func FilterWhile[V any](pred func(V) bool, src Source[V]) *Iterator[V, struct{}] {
	return Iterate(Generate(func(yield func(V) bool) struct{} {
		for {
			v, ok := src.Next()
			if !ok {
				return struct{}{}
			}
			if !pred(v) {
				break
			}
			if !yield(v) {
				return struct{}{}
			}
		}
		for {
			if v, ok := src.Next(); !TryYield(yield, v, ok) {
				return struct{}{}
			}
		}
	}))
}

// Alternate yields from the front, then the back, then the front again,
// until either end fails to produce. The first failed extraction ends
// the whole sequence — it does not fall through to the other end. Over
// 0..10 that gives 0, 9, 1, 8, 2, 7, 3, 6, 4, 5.
func Alternate[V any](src DoubleEnded[V]) *Iterator[V, struct{}] {
	return Iterate(Generate(func(yield func(V) bool) struct{} {
		for {
			if v, ok := src.Next(); !TryYield(yield, v, ok) {
				return struct{}{}
			}
			if v, ok := src.NextBack(); !TryYield(yield, v, ok) {
				return struct{}{}
			}
		}
	}))
}

// AlternateBy yields n items from the front, then n from the back,
// repeating. A failed extraction anywhere, including mid-block, ends the
// whole sequence. n <= 0 gives an iterator that is exhausted from the
// start.
func AlternateBy[V any](src DoubleEnded[V], n int) *Iterator[V, struct{}] {
	return Iterate(Generate(func(yield func(V) bool) struct{} {
		if n <= 0 {
			return struct{}{}
		}
		for {
			for range n {
				if v, ok := src.Next(); !TryYield(yield, v, ok) {
					return struct{}{}
				}
			}
			for range n {
				if v, ok := src.NextBack(); !TryYield(yield, v, ok) {
					return struct{}{}
				}
			}
		}
	}))
}

// Flatten yields every item of every inner sequence, in order, one
// nesting level deep. Both levels are consumed lazily: an inner sequence
// starts only after the previous one is exhausted, and the outer
// sequence is advanced only when a new inner one is needed.
func Flatten[V any](seqs iter.Seq[iter.Seq[V]]) *Iterator[V, struct{}] {
	return Iterate(Generate(func(yield func(V) bool) struct{} {
		for inner := range seqs {
			if !YieldAll(yield, inner) {
				return struct{}{}
			}
		}
		return struct{}{}
	}))
}

// Chain yields every item of each sequence in argument order.
func Chain[V any](seqs ...iter.Seq[V]) *Iterator[V, struct{}] {
	return Iterate(Generate(func(yield func(V) bool) struct{} {
		for _, seq := range seqs {
			if !YieldAll(yield, seq) {
				return struct{}{}
			}
		}
		return struct{}{}
	}))
}
