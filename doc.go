// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package genertools turns suspendable computations into lazy pull-based
// iterators in Go.
//
// A suspendable computation pauses mid-execution, hands a value to its
// caller, and later resumes exactly where it left off with all local
// state intact. [Generate] builds one from a sequential body with yield
// points; [Iterate] wraps it as an [Iterator] consumed one item at a
// time; [Transform] and [Filter] compose computations into new ones; and
// the constructors in this package assemble the common shapes (single
// values, repetition, alternation, flattening, slicing) from the same
// primitives.
//
// # Pinning and Relocation
//
// A suspended computation may hold references into its own state, so its
// memory must not be relocated while suspended. The package makes that
// discipline explicit at the type level rather than checking it at run
// time:
//
//   - [Relocatable]: marker for types whose values are safe to move,
//     provided by embedding [Movable]
//   - [Pin]: an immovable reference; the referent sits behind the
//     interface header and stays put however the Pin itself is copied
//   - [AsPin]: the safe pinning path, open only to [Pinnable] types
//   - [PinUnchecked]: the caller-certified path, used by internals for
//     computations already heap-boxed behind an interface
//   - [Pin.Reborrow]: derive a handle from a handle; the stability
//     certificate transfers without a new proof
//
// [Generate]-backed computations are not [Relocatable]: the suspension
// machinery writes back into their state while they are suspended.
//
// # Stepping
//
// One step of a pinned computation reports a [Status]: an item was
// yielded, or the computation completed with a final result. The result
// arm is distinct from the item stream and survives composition.
//
//   - [Pin.Resume]: the primitive step, reporting the full Status
//   - [Pin.Next]: item-or-done view of one step
//   - [Yielded], [Completed]: Status constructors
//   - [Status.IsYielded], [Status.IsCompleted], [Status.GetYielded],
//     [Status.GetCompleted]: accessors
//   - [MatchStatus]: pattern matching
//   - [MapYielded], [MapCompleted]: transform one arm, pass the other
//
// # One-Shot Consumption
//
// Resuming a computation that has already completed is a contract
// violation. [Iterator] makes it unreachable instead of checking for it:
// Next takes the computation out, resumes it exactly once, and puts it
// back only if it yielded. A completed computation is discarded, never
// reinserted, so exhaustion is idempotent by construction.
//
//   - [Iterate]: pin and wrap a computation
//   - [Iterator.Next]: pull one item
//   - [Iterator.Result]: the completion result, once seen
//   - [Iterator.Stop]: discard at the current suspension point; deferred
//     cleanup in a [Generate] body still runs
//   - [Iterator.Seq]: the remaining items as an iter.Seq, resumable
//     after a partial range
//
// # Combinators
//
// Combinator nodes are themselves suspendable computations wrapping an
// inner one, so they nest arbitrarily deep behind the one [Coroutine]
// contract:
//
//   - [Transform]: apply a function to every yielded item
//   - [Filter]: keep only items satisfying a predicate; one external
//     resume may consume any number of rejected inner items
//
// Both propagate completion results unchanged and propagate [Stopper]
// teardown to the inner computation.
//
// # Construction
//
// Bodies passed to [Generate] use ordinary control flow plus three
// short-circuiting helpers:
//
//   - [TryYield]: yield if present, otherwise tell the body to return
//   - [YieldFrom]: drain an inner computation, then continue with its
//     completion result
//   - [YieldAll]: drain a plain sequence, then continue
//
// The derived constructors: [Once], [Repeat], [RepeatN], [FilterWhile]
// (stop checking the predicate after its first failure, keep yielding),
// [Alternate] and [AlternateBy] (front/back interleaving over a
// [DoubleEnded] source), [Flatten], [Chain], and [Slice] (skip, then
// step, then take, in that fixed order).
//
// # Sources
//
// Externally-owned sequences enter through small pull interfaces, and
// constructors pull exactly the items they need, so the caller can keep
// reading a source from wherever a constructor left it:
//
//   - [Source]: Next() (V, bool)
//   - [DoubleEnded]: a Source with NextBack
//   - [SliceCursor], [Span]: cursors over a slice and an integer range
//   - [FromSeq], [FromSource]: lift sequences and sources into
//     computations
//
// # Concurrency
//
// Suspension here is purely a control-flow mechanism within a single
// logical thread: a computation advances only inside a Resume call, and
// items arrive strictly in resume order. Nothing blocks or runs in the
// background, and no type in this package is safe for concurrent use
// from multiple goroutines.
//
// # Example
//
//	fib := genertools.Iterate(genertools.Generate(func(yield func(int) bool) struct{} {
//		current, next := 0, 1
//		for {
//			current, next = next, current+next
//			if !yield(current) {
//				return struct{}{}
//			}
//		}
//	}))
//
//	first := genertools.Slice[int](fib, genertools.Bounds{Stop: genertools.Int(10)})
//	// first yields 1, 1, 2, 3, 5, 8, 13, 21, 34, 55
package genertools
