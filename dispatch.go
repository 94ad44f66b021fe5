// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// onNode re-delivers the upstream result on a target executor.
type onNode[A any] struct {
	up Later[A]
	on Executor
}

func (n onNode[A]) Run(k func(A)) {
	n.up.Run(func(a A) {
		n.on.Execute(func() {
			k(a)
		})
	})
}

// On hops the continuation to a different execution context: upstream
// runs wherever it runs, and when it delivers, k is re-invoked on e
// instead of the delivering context.
func On[A any](m Later[A], e Executor) Later[A] {
	return onNode[A]{up: m, on: e}
}

// OnMain dispatches delivery to the Main context.
func OnMain[A any](m Later[A]) Later[A] {
	return On(m, Main)
}
