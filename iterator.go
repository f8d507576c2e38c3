// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

import (
	"iter"
)

// Iterator adapts a suspendable computation to pull-based consumption.
// It owns the computation through a pinned handle and moves between two
// states: Holding, with a computation ready to resume, and Empty, with
// nothing left. Exhaustion is idempotent — once Empty, Next returns
// false forever and the computation is never touched again.
//
// Next has the [Source] shape, so an Iterator feeds anything that pulls
// from a Source, such as [Slice] or [FilterWhile], and stays readable
// afterwards from wherever that consumer stopped.
//
// An Iterator is not safe for concurrent use.
type Iterator[V, R any] struct {
	pin    Pin[V, R]
	result R
	done   bool
}

// Iterate wraps a computation for pull-based consumption, pinning it
// once for its remaining lifetime. A nil computation gives an iterator
// that is exhausted from the start.
func Iterate[V, R any](c Coroutine[V, R]) *Iterator[V, R] {
	if c == nil {
		return &Iterator[V, R]{}
	}
	return &Iterator[V, R]{pin: PinUnchecked[V, R](c)}
}

// Next returns the next item, or zero and false when the computation has
// completed or been stopped.
//
// Each call takes the pinned computation out of the iterator, resumes it
// exactly once, and puts it back only if it yielded. A completed
// computation is simply discarded, never reinserted, so resuming after
// completion is not a state this type can reach.
func (it *Iterator[V, R]) Next() (V, bool) {
	if it.pin.c == nil {
		var zero V
		return zero, false
	}
	p := it.pin
	it.pin = Pin[V, R]{}
	s := p.Resume()
	if r, ok := s.GetCompleted(); ok {
		it.result = r
		it.done = true
		var zero V
		return zero, false
	}
	it.pin = p
	return s.GetYielded()
}

// Result returns the completion result and true once the computation has
// run to completion. Before that, and after [Iterator.Stop], it returns
// zero and false.
func (it *Iterator[V, R]) Result() (R, bool) {
	if it.done {
		return it.result, true
	}
	var zero R
	return zero, false
}

// Stop discards the computation at its current suspension point, running
// its deferred cleanup if it supports teardown. The iterator is Empty
// afterwards; no completion result is recorded. Stopping an exhausted or
// already-stopped iterator is a no-op.
func (it *Iterator[V, R]) Stop() {
	if it.pin.c == nil {
		return
	}
	p := it.pin
	it.pin = Pin[V, R]{}
	p.Stop()
}

// Seq exposes the remaining items as a standard sequence, usable with
// range and slices.Collect. Breaking out of the range leaves the
// iterator Holding, so consumption can resume later with Next or another
// Seq pass.
func (it *Iterator[V, R]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
