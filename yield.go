// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

import (
	"iter"
)

// TryYield yields v when ok is true and the consumer still wants items.
// It returns false when the item was absent or the consumer stopped; the
// surrounding body must return then. Inside a [Generate] body,
//
//	if v, ok := src.Next(); !TryYield(yield, v, ok) {
//		return
//	}
//
// terminates the whole computation on the first failed extraction, which
// is the behavior [Alternate] and friends are built on.
func TryYield[V any](yield func(V) bool, v V, ok bool) bool {
	return ok && yield(v)
}

// YieldFrom drains an inner computation into the surrounding body: every
// item the inner computation yields is yielded here, then control
// continues past the call. It returns the inner completion result and
// true, or zero and false if the consumer stopped before the inner
// computation finished — the body must return in that case.
func YieldFrom[V, R any](yield func(V) bool, c Coroutine[V, R]) (R, bool) {
	p := PinUnchecked[V, R](c)
	for {
		s := p.Resume()
		if r, ok := s.GetCompleted(); ok {
			return r, true
		}
		v, _ := s.GetYielded()
		if !yield(v) {
			var zero R
			return zero, false
		}
	}
}

// YieldAll yields every item of seq into the surrounding body. It returns
// false if the consumer stopped partway; the body must return then.
func YieldAll[V any](yield func(V) bool, seq iter.Seq[V]) bool {
	for v := range seq {
		if !yield(v) {
			return false
		}
	}
	return true
}
