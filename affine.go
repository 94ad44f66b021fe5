// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

import (
	"sync/atomic"
)

// Affine wraps a continuation with one-shot enforcement.
// The continuation can be delivered to at most once; subsequent
// attempts panic (Deliver) or return false (TryDeliver).
//
// The bridge constructors use Affine to hold legacy callback APIs to
// the exactly-once contract: an API that fires its callback twice
// within one Run fails loudly instead of double-delivering downstream.
type Affine[A any] struct {
	used   atomic.Uintptr
	accept func(A)
}

// Once creates an affine continuation from a regular continuation.
// The returned Affine accepts at most one delivery.
func Once[A any](k func(A)) *Affine[A] {
	return &Affine[A]{accept: k}
}

// Deliver invokes the continuation with the given value.
// Panics if a value has already been delivered.
func (a *Affine[A]) Deliver(v A) {
	if a.used.Add(1) != 1 {
		panic("later: continuation delivered twice")
	}
	a.accept(v)
}

// TryDeliver attempts to invoke the continuation.
// Returns true on success, or false if a value was already delivered.
func (a *Affine[A]) TryDeliver(v A) bool {
	if a.used.Add(1) != 1 {
		return false
	}
	a.accept(v)
	return true
}

// Discard marks the continuation as used without invoking it.
// This is useful for explicitly dropping a continuation that will not
// be delivered to.
func (a *Affine[A]) Discard() {
	a.used.Store(1)
}
