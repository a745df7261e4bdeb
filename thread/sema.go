// File: thread/sema.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Internal counting semaphore backing the emulated condition variable.
// Deliberately not exported: the facade offers no public semaphore.
//
// Permits posted with no waiter present accumulate and release future
// acquirers immediately. The emulated condition variable depends on exactly
// this behavior, so it must not be "improved" away.

package thread

import (
	"errors"
	"sync"
	"time"
)

var (
	errSemTimeout = errors.New("semaphore: acquire timed out")
	errSemClosed  = errors.New("semaphore: closed")
)

type semaphore struct {
	mu      sync.Mutex
	permits int
	waiters *waitq
	closed  bool
}

func newSemaphore(initial int) *semaphore {
	return &semaphore{
		permits: initial,
		waiters: newWaitq(),
	}
}

// post releases one permit, waking the oldest live waiter if any is parked.
// Returns false once the semaphore is closed.
func (s *semaphore) post() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	for {
		w := s.waiters.pop()
		if w == nil {
			s.permits++
			return true
		}
		if w.signal() {
			return true
		}
	}
}

// acquire takes one permit, blocking up to d when none is available.
// A negative d blocks without bound. Returns errSemTimeout when the bound
// elapses and errSemClosed when the semaphore is closed.
func (s *semaphore) acquire(d time.Duration) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errSemClosed
	}
	if s.permits > 0 {
		s.permits--
		s.mu.Unlock()
		return nil
	}
	w := newWaiter()
	s.waiters.push(w)
	s.mu.Unlock()

	if d < 0 {
		<-w.ready
		return s.wakeResult()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-w.ready:
		return s.wakeResult()
	case <-t.C:
		if !w.abandon() {
			// a post raced the timeout; we own that permit
			return s.wakeResult()
		}
		return errSemTimeout
	}
}

// wakeResult distinguishes a genuine wakeup from the close() drain.
func (s *semaphore) wakeResult() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSemClosed
	}
	return nil
}

// close invalidates the semaphore and wakes every parked waiter.
func (s *semaphore) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for {
		w := s.waiters.pop()
		if w == nil {
			return
		}
		w.signal()
	}
}

// available reports the number of unclaimed permits.
func (s *semaphore) available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permits
}
