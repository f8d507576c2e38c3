// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

// transformNode applies f to every item the inner computation yields.
// Relocatable: the inner computation sits behind its pin's interface
// header, so moving the node never moves suspended state.
type transformNode[V, U, R any] struct {
	Movable
	inner Pin[V, R]
	f     func(V) U
}

// Transform wraps a computation so that every yielded item passes
// through f. Completion results pass through unchanged. f is applied
// exactly once per item, in yield order.
//
// The result is itself a suspendable computation, so transforms and
// filters nest arbitrarily deep.
func Transform[V, U, R any](c Coroutine[V, R], f func(V) U) Coroutine[U, R] {
	return &transformNode[V, U, R]{inner: PinUnchecked[V, R](c), f: f}
}

func (t *transformNode[V, U, R]) Resume() Status[U, R] {
	return MapYielded(t.inner.Resume(), t.f)
}

func (t *transformNode[V, U, R]) Stop() {
	t.inner.Stop()
}
