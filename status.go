// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genertools

// Status reports the outcome of advancing a computation one step:
// either an item of type V was yielded, or the computation completed
// with a final result of type R. The two arms are distinct because a
// completion result is not an item — it never appears in the yielded
// stream and is surfaced separately by [Iterator.Result].
type Status[V, R any] struct {
	completed bool
	value     V
	result    R
}

// Yielded creates a Status carrying one produced item.
func Yielded[R, V any](v V) Status[V, R] {
	return Status[V, R]{completed: false, value: v}
}

// Completed creates a Status carrying the final result.
func Completed[V, R any](r R) Status[V, R] {
	return Status[V, R]{completed: true, result: r}
}

// IsYielded returns true if this step produced an item.
func (s Status[V, R]) IsYielded() bool {
	return !s.completed
}

// IsCompleted returns true if this step finished the computation.
func (s Status[V, R]) IsCompleted() bool {
	return s.completed
}

// GetYielded returns the yielded item and true, or zero and false.
func (s Status[V, R]) GetYielded() (V, bool) {
	if !s.completed {
		return s.value, true
	}
	var zero V
	return zero, false
}

// GetCompleted returns the final result and true, or zero and false.
func (s Status[V, R]) GetCompleted() (R, bool) {
	if s.completed {
		return s.result, true
	}
	var zero R
	return zero, false
}

// MatchStatus pattern matches on the Status, calling onYielded or onCompleted.
func MatchStatus[V, R, T any](s Status[V, R], onYielded func(V) T, onCompleted func(R) T) T {
	if s.completed {
		return onCompleted(s.result)
	}
	return onYielded(s.value)
}

// MapYielded applies a function to the yielded item, passing completion
// through unchanged.
func MapYielded[V, U, R any](s Status[V, R], f func(V) U) Status[U, R] {
	if s.completed {
		return Completed[U, R](s.result)
	}
	return Yielded[R](f(s.value))
}

// MapCompleted applies a function to the final result, passing yielded
// items through unchanged.
func MapCompleted[V, R, S any](s Status[V, R], f func(R) S) Status[V, S] {
	if s.completed {
		return Completed[V](f(s.result))
	}
	return Yielded[S](s.value)
}
