// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

import (
	"sync"

	"github.com/eapache/queue"
)

// Executor is an execution context: somewhere a function can be made to
// run. The core owns no threads of its own; all concurrency comes from
// the executor a leaf producer or dispatch combinator was given.
type Executor interface {
	Execute(fn func())
}

// Sync runs functions inline on the caller's goroutine.
type Sync struct{}

// Execute implements Executor by calling fn directly.
func (Sync) Execute(fn func()) { fn() }

// Go runs each function on its own new goroutine.
type Go struct{}

// Execute implements Executor by spawning a goroutine for fn.
func (Go) Execute(fn func()) { go fn() }

// SerialQueue runs functions one at a time in submission order on a
// single worker goroutine. The worker is spun up lazily on the first
// Execute and exits when the queue drains; Execute is safe for
// concurrent use.
type SerialQueue struct {
	mu      sync.Mutex
	pending *queue.Queue
	running bool
}

// NewSerialQueue creates an empty serial execution context.
func NewSerialQueue() *SerialQueue {
	return &SerialQueue{pending: queue.New()}
}

// Execute implements Executor. fn runs after every previously submitted
// function has returned, in FIFO order.
func (q *SerialQueue) Execute(fn func()) {
	q.mu.Lock()
	q.pending.Add(fn)
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.mu.Unlock()
	go q.drain()
}

func (q *SerialQueue) drain() {
	for {
		q.mu.Lock()
		if q.pending.Length() == 0 {
			q.running = false
			q.mu.Unlock()
			return
		}
		fn := q.pending.Remove().(func())
		q.mu.Unlock()
		fn()
	}
}

// Main is the distinguished default serial context: a stable,
// package-wide SerialQueue. OnMain and MainTag refer to it.
var Main = NewSerialQueue()
