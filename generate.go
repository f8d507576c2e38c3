// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

import (
	"iter"
)

// generator adapts a sequential body with yield points to the one-step
// Resume contract. The pull closures capture the generator itself to
// deliver the body's return value, which is exactly the interior
// reference that makes the type non-relocatable; Generate therefore
// boxes it behind the interface before anything can copy it.
type generator[V, R any] struct {
	next      func() (V, bool)
	stop      func()
	result    R
	completed bool
}

// Generate builds a suspendable computation from a body containing yield
// points and ordinary control flow. The body runs only inside Resume
// calls: it starts on the first, proceeds to its next yield on each, and
// its return value becomes the completion result.
//
// The yield function returns false once the consumer has stopped; the
// body must return promptly after seeing false and must not call yield
// again. [TryYield], [YieldFrom] and [YieldAll] encapsulate that
// discipline.
//
// The returned computation implements [Stopper]: Stop abandons the body
// at its current suspension point and runs its deferred cleanup.
func Generate[V, R any](body func(yield func(V) bool) R) Coroutine[V, R] {
	g := &generator[V, R]{}
	g.next, g.stop = iter.Pull(func(yield func(V) bool) {
		g.result = body(yield)
	})
	return g
}

// Resume advances the body to its next yield or to its return.
// After completion it keeps reporting the same result.
func (g *generator[V, R]) Resume() Status[V, R] {
	if g.completed {
		return Completed[V, R](g.result)
	}
	v, ok := g.next()
	if !ok {
		g.completed = true
		return Completed[V, R](g.result)
	}
	return Yielded[R](v)
}

// Stop ends the body at its current suspension point. A body blocked at
// a yield observes false and unwinds; its deferred cleanup runs before
// Stop returns. Safe to call more than once.
func (g *generator[V, R]) Stop() {
	g.stop()
}
