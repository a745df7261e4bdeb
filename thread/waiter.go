// File: thread/waiter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Parked-caller bookkeeping shared by the condition variable backends and
// the internal counting semaphore. Waiters queue up in FIFO order; a waiter
// that times out marks itself abandoned and is lazily discarded the next
// time the queue is popped, so no mid-queue removal is ever needed.

package thread

import (
	"sync/atomic"

	"github.com/eapache/queue"
)

const (
	waiterIdle int32 = iota
	waiterSignaled
	waiterAbandoned
)

// waiter is one parked caller.
type waiter struct {
	ready chan struct{}
	state int32
}

func newWaiter() *waiter {
	return &waiter{ready: make(chan struct{})}
}

// signal wakes the waiter. Returns false if the waiter already timed out,
// in which case the wakeup must go to someone else.
func (w *waiter) signal() bool {
	if atomic.CompareAndSwapInt32(&w.state, waiterIdle, waiterSignaled) {
		close(w.ready)
		return true
	}
	return false
}

// abandon marks a timed-out waiter. Returns false if a signal won the race;
// the waiter then consumed that wakeup and reports a normal return.
func (w *waiter) abandon() bool {
	return atomic.CompareAndSwapInt32(&w.state, waiterIdle, waiterAbandoned)
}

// waitq is a FIFO of parked callers. Not self-synchronized: the owner
// guards it with its own lock.
type waitq struct {
	q *queue.Queue
}

func newWaitq() *waitq {
	return &waitq{q: queue.New()}
}

func (wq *waitq) push(w *waiter) {
	wq.q.Add(w)
}

// pop returns the oldest non-abandoned waiter, discarding abandoned entries
// on the way, or nil when the queue is drained.
func (wq *waitq) pop() *waiter {
	for wq.q.Length() > 0 {
		w := wq.q.Remove().(*waiter)
		if atomic.LoadInt32(&w.state) == waiterAbandoned {
			continue
		}
		return w
	}
	return nil
}
