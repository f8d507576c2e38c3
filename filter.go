// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

// filterNode yields only the inner items that satisfy pred.
type filterNode[V, R any] struct {
	Movable
	inner Pin[V, R]
	pred  func(V) bool
}

// Filter wraps a computation so that only items satisfying pred come
// through, in their original order. Completion results pass through
// unchanged.
//
// One external Resume may perform unbounded internal work: the node
// keeps resuming the inner computation until an item is accepted or it
// completes. Over an infinite computation whose items never satisfy
// pred, Resume does not return — bound the inner computation or supply
// an eventually-true predicate.
func Filter[V, R any](c Coroutine[V, R], pred func(V) bool) Coroutine[V, R] {
	return &filterNode[V, R]{inner: PinUnchecked[V, R](c), pred: pred}
}

func (n *filterNode[V, R]) Resume() Status[V, R] {
	for {
		s := n.inner.Resume()
		if s.IsCompleted() {
			return s
		}
		if v, _ := s.GetYielded(); n.pred(v) {
			return s
		}
	}
}

func (n *filterNode[V, R]) Stop() {
	n.inner.Stop()
}
