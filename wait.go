// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Wait runs a computation and blocks the calling goroutine until the
// result is delivered, then returns it.
//
// Do not call Wait from the executor that will deliver the result (for
// example, from inside a function already running on the same
// SerialQueue): the delivery would be queued behind the blocked caller.
func Wait[A any](m Later[A]) A {
	ch := make(chan A, 1)
	m.Run(func(a A) {
		ch <- a
	})
	return <-ch
}
