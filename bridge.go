// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

import (
	"iter"
)

// seqCoroutine adapts a push-style sequence to the Resume contract
// through a pull pair. Relocatable: the pull closures reference shared
// coroutine state, not the struct's own fields, so a moved value keeps
// working.
type seqCoroutine[V any] struct {
	Movable
	next      func() (V, bool)
	stop      func()
	completed bool
}

// FromSeq converts a standard sequence into a suspendable computation
// completing with no result. The conversion is lazy: seq starts running
// on the first Resume and advances one item per call, so an infinite seq
// is fine.
//
// The inverse direction is [Iterator.Seq].
func FromSeq[V any](seq iter.Seq[V]) Coroutine[V, struct{}] {
	c := &seqCoroutine[V]{}
	c.next, c.stop = iter.Pull(seq)
	return c
}

func (c *seqCoroutine[V]) Resume() Status[V, struct{}] {
	if c.completed {
		return Completed[V, struct{}](struct{}{})
	}
	v, ok := c.next()
	if !ok {
		c.completed = true
		return Completed[V, struct{}](struct{}{})
	}
	return Yielded[struct{}](v)
}

func (c *seqCoroutine[V]) Stop() {
	c.stop()
}

// sourceCoroutine lifts a pull source to the Resume contract directly;
// no suspension machinery is involved because a source is already a
// one-item-per-call protocol.
type sourceCoroutine[V any] struct {
	Movable
	src Source[V]
}

// FromSource converts a pull source into a suspendable computation
// completing with no result. Each Resume pulls exactly one item, so the
// source's position stays observable from outside between steps.
func FromSource[V any](src Source[V]) Coroutine[V, struct{}] {
	return &sourceCoroutine[V]{src: src}
}

func (c *sourceCoroutine[V]) Resume() Status[V, struct{}] {
	v, ok := c.src.Next()
	if !ok {
		return Completed[V, struct{}](struct{}{})
	}
	return Yielded[struct{}](v)
}
