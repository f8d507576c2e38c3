// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

// Coroutine is the contract satisfied by every suspendable computation:
// Resume advances it one step and reports either a yielded item or the
// final result. Items are produced strictly in Resume-call order; nothing
// runs between calls.
//
// Resume must only be invoked through a [Pin] or an [Iterator], which
// certify that the computation's state stays at a stable address while
// suspended. Computations built by this package treat Resume after
// completion as idempotent, reporting the same completion again, but
// wrappers never rely on that: the [Iterator] take/replace discipline
// makes the call unreachable in the first place.
type Coroutine[V, R any] interface {
	Resume() Status[V, R]
}

// Stopper is implemented by computations that can release whatever they
// hold at the current suspension point without running to completion.
// Deferred cleanup between the start of the body and the last yield still
// runs. Wrappers discover it by structural assertion, the way io.Closer
// upgrades are discovered.
type Stopper interface {
	Stop()
}
