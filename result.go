// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Result represents a value that is either a success carrying an A or a
// failure carrying an error. The two channels are mutually exclusive
// and exhaustive: IsOk and IsErr never agree.
type Result[A any] struct {
	ok  bool
	val A
	err error
}

// Ok creates a success Result.
func Ok[A any](v A) Result[A] {
	return Result[A]{ok: true, val: v}
}

// Fail creates a failure Result.
func Fail[A any](err error) Result[A] {
	return Result[A]{err: err}
}

// IsOk returns true if this is a success value.
func (r Result[A]) IsOk() bool {
	return r.ok
}

// IsErr returns true if this is a failure value.
func (r Result[A]) IsErr() bool {
	return !r.ok
}

// GetOk returns the success value and true, or zero and false.
func (r Result[A]) GetOk() (A, bool) {
	if r.ok {
		return r.val, true
	}
	var zero A
	return zero, false
}

// GetErr returns the error and true, or nil and false.
func (r Result[A]) GetErr() (error, bool) {
	if !r.ok {
		return r.err, true
	}
	return nil, false
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
// Exactly one of the two handlers runs.
func MatchResult[A, T any](r Result[A], onOk func(A) T, onErr func(error) T) T {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}

// MapResult applies a function to the success value, leaving a failure
// untouched.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.ok {
		return Ok(f(r.val))
	}
	return Fail[B](r.err)
}

// FlatMapResult sequences two Result computations.
func FlatMapResult[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.ok {
		return f(r.val)
	}
	return Fail[B](r.err)
}

// MapErrResult applies a function to the error, leaving a success
// untouched.
func MapErrResult[A any](r Result[A], f func(error) error) Result[A] {
	if r.ok {
		return r
	}
	return Fail[A](f(r.err))
}
