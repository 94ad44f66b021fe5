// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Bridge to external dependency-ordered task schedulers.
//
// A scheduler that resolves dependencies between units of work can
// treat a deferred computation as one such unit: the unit's work is
// exactly one Run, and the scheduler learns of completion through the
// done callback. Dependency resolution, parallelism, and priority stay
// entirely on the scheduler's side.

// Job is one schedulable unit of work with completion notification.
type Job struct {
	start func(done func())
}

// Start performs the unit of work and calls done exactly once when the
// wrapped computation delivers. done runs on whatever context delivers
// the result.
func (j Job) Start(done func()) {
	j.start(done)
}

// NewJob adapts a computation into a Job. deliver receives the result
// before done fires; a nil deliver discards the result.
func NewJob[A any](m Later[A], deliver func(A)) Job {
	return Job{start: func(done func()) {
		m.Run(func(a A) {
			if deliver != nil {
				deliver(a)
			}
			done()
		})
	}}
}
