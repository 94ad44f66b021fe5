// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Later represents a deferred computation producing a value of type A.
//
// Run begins the (possibly asynchronous) work and MUST invoke k exactly
// once with the final value, on an execution context of the
// implementation's choosing. Run returns nothing: registration is
// fire-and-forget, and the continuation call is the only observable
// effect.
//
// A Later value is immutable and carries no in-flight state. Calling Run
// again re-executes the whole composed chain from scratch; there is no
// caching and no sharing of work between invocations, so concurrent Run
// calls on the same value are independent.
type Later[A any] interface {
	Run(k func(A))
}

// Func adapts a plain CPS function to a Later.
// This is the primitive constructor for computations that need direct
// access to the continuation.
type Func[A any] func(k func(A))

// Run implements Later by calling the underlying function.
func (f Func[A]) Run(k func(A)) { f(k) }

// Just lifts a value into a deferred computation.
// The resulting computation delivers v synchronously on the caller's
// goroutine each time it is run.
func Just[A any](v A) Later[A] {
	return Func[A](func(k func(A)) {
		k(v)
	})
}

// Defer lifts a lazily evaluated value into a deferred computation.
// produce is called once per Run, at Run time, then its result is
// delivered synchronously on the caller's goroutine.
func Defer[A any](produce func() A) Later[A] {
	return Func[A](func(k func(A)) {
		k(produce())
	})
}
