// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Execution-context tagging.
//
// A tag is a zero-size marker type bound 1:1 to a concrete executor.
// The tag lives only in the static type of a Tagged value: at runtime
// the value stores nothing beyond the run behavior, but the type system
// records which executor the computation is guaranteed to complete on.

// ExecutorTag associates a marker type with a concrete executor.
// Implementations are empty structs whose TagExecutor method returns
// the same executor for every value.
type ExecutorTag interface {
	TagExecutor() Executor
}

// MainTag is the distinguished tag for the Main context.
type MainTag struct{}

// TagExecutor implements ExecutorTag.
func (MainTag) TagExecutor() Executor { return Main }

// Tagged is a type-erased deferred computation statically known to
// complete on the executor identified by T. It is produced only by the
// fused dispatch-then-erase operations EraseOn and EraseOnMain; erasing
// a Tagged value again yields the plain untagged Any, so the tag is
// never preserved transitively.
type Tagged[T ExecutorTag, A any] struct {
	run func(k func(A))
}

// Run implements Later by invoking the stored run behavior. Delivery
// happens on T's executor.
func (t Tagged[T, A]) Run(k func(A)) { t.run(k) }

// Erase drops the tag, degrading to the untagged erased type.
func (t Tagged[T, A]) Erase() Any[A] {
	return Any[A]{run: t.run}
}

// EraseOn dispatches delivery to T's executor and erases in one step,
// producing the tagged erased type. The dispatch hop is part of the
// returned computation; the tag cannot be produced without it.
func EraseOn[T ExecutorTag, A any](m Later[A]) Tagged[T, A] {
	var tag T
	hopped := On(m, tag.TagExecutor())
	return Tagged[T, A]{run: hopped.Run}
}

// EraseOnMain dispatches delivery to Main and erases, producing a
// MainTag-tagged computation.
func EraseOnMain[A any](m Later[A]) Tagged[MainTag, A] {
	return EraseOn[MainTag, A](m)
}
