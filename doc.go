// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package later provides a lazy, reusable deferred-computation algebra
// over callback-based asynchronous work.
//
// The core type [Later] is a capability with a single operation: given
// a continuation, eventually invoke it exactly once with the result.
// Everything else is pure composition over that contract — no caching,
// no cancellation, no built-in thread pool. Calling Run again on any
// value, composed or not, re-executes the entire chain from scratch;
// independent runs never share in-flight work.
//
// # Core Operations
//
//   - [Just], [Defer]: Lift a value (eager or lazy) into a computation
//   - [Func]: The primitive CPS constructor
//   - [Map]: Transform the result with a pure function
//   - [Tap]: Observe the result without changing it
//   - [Bind]: Chain into a second computation, strictly in series
//   - [Wait]: Run and block until delivery
//
// Within one Run, stages execute in strict upstream-to-downstream
// order; a [Tap] side effect happens before the value reaches later
// stages. Across independent Run calls there is no ordering guarantee.
//
// # Error Channel
//
// Failures enter a chain only through [Try], which applies a fallible
// func(A) (B, error) and produces a [Result] union: success and error
// are mutually exclusive and exhaustive. Downstream stages handle the
// channels explicitly:
//
//   - [Recover]: Substitute a fallback on error, collapsing the union
//   - [Fold]: Unify both channels into one output type
//   - [MapOk]: Transform the success channel, keeping the union
//
// A panic inside a plain Map/Tap/Bind function is not recovered; it
// unwinds on whatever goroutine delivers the upstream value. Route
// expected failures through [Try].
//
// # Execution Contexts
//
// An [Executor] is somewhere a function can run. [Sync] runs inline,
// [Go] spawns a goroutine per function, and [SerialQueue] runs FIFO on
// a single worker. [Main] is the package-wide default serial context.
//
//   - [After], [AfterFunc]: Timer leaves delivering on an executor,
//     through the external [Scheduler] collaborator ([System] is the
//     time.AfterFunc-backed implementation)
//   - [On], [OnMain]: Re-deliver downstream on a target executor
//
// # Type Erasure and Tagging
//
// [Any] stores only the run behavior of a computation, hiding the
// concrete composition type. [Erase] produces it from any computation.
//
// [Tagged] additionally records, in its static type, the executor the
// computation completes on. It is produced only by the fused
// dispatch-then-erase operations [EraseOn] and [EraseOnMain]; erasing a
// Tagged value again yields the untagged [Any], so tags never survive
// a second erasure. Tags are zero-size marker types implementing
// [ExecutorTag]; [MainTag] identifies [Main].
//
// # Bridging Callback APIs
//
// [Callback0], [Callback], [Callback2], and [Callback3] adapt an
// existing function whose last parameter is a completion callback.
// Multi-argument callbacks are delivered as one [Pair] or [Triple]
// preserving argument order. Each Run wraps the continuation in a fresh
// one-shot [Affine] guard, so a legacy API that completes twice within
// one Run panics instead of double-delivering.
//
// # External Schedulers
//
// [Job] adapts a computation into one unit of schedulable work for a
// dependency-ordered task scheduler: Start performs exactly one Run and
// reports completion through a callback. The scheduler's own dependency
// resolution and parallelism stay external.
package later
