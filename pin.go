// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

// Relocatable marks computation types whose values may be copied to a
// new location without breaking them, because no reference into the
// value's own fields can exist. Combinator nodes are Relocatable:
// they hold their inner computation behind an interface header, so moving
// the node moves only the header. [Generate]-backed computations are not:
// their pull closures write back into the generator's own state, and a
// moved copy would desynchronize from the original.
//
// Implement it by embedding [Movable].
type Relocatable interface {
	relocatable()
}

// Movable provides [Relocatable] by embedding. It occupies no space.
type Movable struct{}

func (Movable) relocatable() {}

// Pinnable is satisfied by computations that are provably safe to pin:
// the type itself declares, via [Relocatable], that no interior reference
// can have formed, so certifying address stability costs nothing.
type Pinnable[V, R any] interface {
	Coroutine[V, R]
	Relocatable
}

// Pin is an immovable reference to a suspendable computation. The
// computation sits behind the interface header, so copying the Pin
// itself never relocates the referent. A Pin does not own the
// computation; ownership stays with whichever wrapper holds the
// longest-lived handle.
//
// The zero Pin holds nothing; resuming it panics.
type Pin[V, R any] struct {
	c Coroutine[V, R]
}

// AsPin pins a computation whose type certifies relocation safety.
// Total and side-effect-free; the proof is carried entirely by the
// [Pinnable] bound. Type arguments are written explicitly at call sites
// because Go does not infer them through an interface's method set.
func AsPin[V, R any](c Pinnable[V, R]) Pin[V, R] {
	return Pin[V, R]{c: c}
}

// PinUnchecked pins a computation without the [Relocatable] proof.
// The caller certifies that the computation already lives behind a stable
// allocation and is never copied out from behind it afterwards. Package
// internals use it for [Generate]-backed computations, which satisfy the
// promise by construction: they are heap-boxed before the first suspension
// and reachable only through the returned interface.
func PinUnchecked[V, R any](c Coroutine[V, R]) Pin[V, R] {
	return Pin[V, R]{c: c}
}

// Resume advances the pinned computation one step.
func (p Pin[V, R]) Resume() Status[V, R] {
	if p.c == nil {
		panic("genertools: empty pin resumed")
	}
	return p.c.Resume()
}

// Next advances the computation once and returns the yielded item, or
// zero and false if this step completed it. The completion result is
// discarded; use [Pin.Resume] or an [Iterator] to keep it.
func (p Pin[V, R]) Next() (V, bool) {
	s := p.Resume()
	return s.GetYielded()
}

// Stop ends the pinned computation at its current suspension point, if it
// supports that. Pins holding nothing, or computations without teardown,
// are no-ops.
func (p Pin[V, R]) Stop() {
	if s, ok := p.c.(Stopper); ok {
		s.Stop()
	}
}

// Reborrow derives a new handle to the same computation. The stability
// certificate transfers; no new proof is established. Both handles step
// the same underlying state, so callers interleave them at their own
// discretion.
func (p Pin[V, R]) Reborrow() Pin[V, R] {
	return p
}
