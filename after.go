// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

import "time"

// Scheduler is the external timer collaborator: it must run fn on the
// given executor at or after d has elapsed, exactly once per call.
// After and AfterFunc are the only parts of the library that touch it.
type Scheduler interface {
	Schedule(d time.Duration, on Executor, fn func())
}

// systemScheduler schedules through the runtime timer.
type systemScheduler struct{}

func (systemScheduler) Schedule(d time.Duration, on Executor, fn func()) {
	time.AfterFunc(d, func() {
		on.Execute(fn)
	})
}

// System is the wall-clock Scheduler backed by time.AfterFunc.
var System Scheduler = systemScheduler{}

// After returns a computation that delivers v on executor on, at or
// after d has elapsed from the Run call. The value is captured eagerly
// at construction time. Each Run schedules anew; runs never share a
// timer.
func After[A any](s Scheduler, d time.Duration, on Executor, v A) Later[A] {
	return Func[A](func(k func(A)) {
		s.Schedule(d, on, func() {
			k(v)
		})
	})
}

// AfterFunc is After with a lazily evaluated value: produce is called
// once per Run, on the target executor, when the delay expires.
func AfterFunc[A any](s Scheduler, d time.Duration, on Executor, produce func() A) Later[A] {
	return Func[A](func(k func(A)) {
		s.Schedule(d, on, func() {
			k(produce())
		})
	})
}
