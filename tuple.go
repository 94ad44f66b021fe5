// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Pair is an ordered two-element tuple. The bridge constructors use it
// to carry both arguments of a two-argument legacy callback as one
// value, preserving argument order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is an ordered three-element tuple, used for three-argument
// legacy callbacks.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}
