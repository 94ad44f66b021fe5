// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Composition combinators for deferred computations.
//
// Each combinator returns a new node value that owns its upstream
// computation and transformation exclusively; nodes are never shared or
// mutated after construction, so the composition graph is always a
// chain built strictly upstream-to-downstream.

// mapNode applies a pure function to the upstream result.
type mapNode[A, B any] struct {
	up Later[A]
	f  func(A) B
}

func (n mapNode[A, B]) Run(k func(B)) {
	n.up.Run(func(a A) {
		k(n.f(a))
	})
}

// Map applies a pure function to the result of a computation.
// f runs on whatever execution context delivers the upstream value; the
// transformed value is forwarded on that same context.
func Map[A, B any](m Later[A], f func(A) B) Later[B] {
	return mapNode[A, B]{up: m, f: f}
}

// tapNode runs a side effect on the upstream result, then forwards the
// value unchanged.
type tapNode[A any] struct {
	up Later[A]
	f  func(A)
}

func (n tapNode[A]) Run(k func(A)) {
	n.up.Run(func(a A) {
		n.f(a)
		k(a)
	})
}

// Tap observes the result of a computation without changing it.
// f runs exactly once per upstream firing, synchronously, strictly
// before the value reaches the next stage.
func Tap[A any](m Later[A], f func(A)) Later[A] {
	return tapNode[A]{up: m, f: f}
}

// bindNode sequences two deferred computations.
type bindNode[A, B any] struct {
	up Later[A]
	f  func(A) Later[B]
}

func (n bindNode[A, B]) Run(k func(B)) {
	n.up.Run(func(a A) {
		n.f(a).Run(k)
	})
}

// Bind chains a computation into a second one produced from its result
// (monadic bind). The second computation starts only after the first
// delivers, so the two stages run strictly in series: total latency is
// the sum of both, and Bind is the only combinator that introduces a
// second suspension point per application.
func Bind[A, B any](m Later[A], f func(A) Later[B]) Later[B] {
	return bindNode[A, B]{up: m, f: f}
}
