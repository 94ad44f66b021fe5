// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Any is a type-erased deferred computation. It hides the concrete
// composition-node type behind a stored run function, so arbitrarily
// nested compositions can be stored, passed, and returned under one
// name instead of an ever-growing generic signature.
type Any[A any] struct {
	run func(k func(A))
}

// Run implements Later by invoking the stored run behavior.
func (a Any[A]) Run(k func(A)) { a.run(k) }

// Erase wraps any computation in the type-erased container. Erasure
// changes nothing observable: the erased value re-executes from scratch
// on every Run, exactly like the original.
func Erase[A any](m Later[A]) Any[A] {
	return Any[A]{run: m.Run}
}

// Bridge constructors for legacy callback-style APIs.
//
// Each adapts a function whose last parameter is a completion callback
// into a deferred computation: Run invokes start once, and whatever the
// callback receives is forwarded downstream, tupled in argument order
// when the callback takes more than one argument. A fresh one-shot
// guard per Run enforces the exactly-once contract (see Affine); a
// legacy API that fires its callback twice within one Run panics.

// Callback0 bridges a zero-argument callback API. Completion delivers
// struct{}{}.
func Callback0(start func(done func())) Any[struct{}] {
	return Any[struct{}]{run: func(k func(struct{})) {
		g := Once(k)
		start(func() {
			g.Deliver(struct{}{})
		})
	}}
}

// Callback bridges a one-argument callback API.
func Callback[A any](start func(done func(A))) Any[A] {
	return Any[A]{run: func(k func(A)) {
		g := Once(k)
		start(func(a A) {
			g.Deliver(a)
		})
	}}
}

// Callback2 bridges a two-argument callback API. The two arguments are
// delivered as one Pair, first argument first.
func Callback2[A, B any](start func(done func(A, B))) Any[Pair[A, B]] {
	return Any[Pair[A, B]]{run: func(k func(Pair[A, B])) {
		g := Once(k)
		start(func(a A, b B) {
			g.Deliver(Pair[A, B]{First: a, Second: b})
		})
	}}
}

// Callback3 bridges a three-argument callback API. The three arguments
// are delivered as one Triple in argument order.
func Callback3[A, B, C any](start func(done func(A, B, C))) Any[Triple[A, B, C]] {
	return Any[Triple[A, B, C]]{run: func(k func(Triple[A, B, C])) {
		g := Once(k)
		start(func(a A, b B, c C) {
			g.Deliver(Triple[A, B, C]{First: a, Second: b, Third: c})
		})
	}}
}
