//go:build !threadglue_emulated
// +build !threadglue_emulated

// File: thread/cond_mesa.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native-semantics condition variable backend. The waiter registers in the
// FIFO before releasing the caller's lock, so a signaler that checks the
// shared predicate under the same lock can never miss a parked waiter.
// A signal with no waiter present is dropped, as with pthread_cond_signal.

package thread

import (
	"sync"
	"time"

	"github.com/momentics/threadglue/api"
)

// Cond is a wait/notify primitive always paired with a held lock. Wakeups
// follow mesa discipline: a returning waiter must recheck its predicate.
type Cond struct {
	mu        sync.Mutex
	waiters   *waitq
	destroyed bool
}

var _ api.CondVar = (*Cond)(nil)

// Init prepares the condition variable for use. The zero value is also
// usable; Init exists for the uniform init/destroy discipline.
func (c *Cond) Init() {
	c.mu.Lock()
	c.waiters = newWaitq()
	c.destroyed = false
	c.mu.Unlock()
}

// Destroy invalidates the condition variable and releases any parked
// waiters with ErrCondDestroyed. Destroying while waiters are blocked is
// undefined; the wakeup only keeps their goroutines from leaking.
func (c *Cond) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyed = true
	if c.waiters == nil {
		return
	}
	for {
		w := c.waiters.pop()
		if w == nil {
			break
		}
		w.signal()
	}
	c.waiters = nil
}

// Signal wakes the oldest live waiter. With no waiter parked the signal is
// dropped, not stored.
func (c *Cond) Signal() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return api.ErrCondDestroyed
	}
	c.ensure()
	for {
		w := c.waiters.pop()
		if w == nil {
			return nil
		}
		if w.signal() {
			return nil
		}
	}
}

// Wait atomically releases l, blocks until signaled, then reacquires l
// before returning.
func (c *Cond) Wait(l sync.Locker) error {
	return c.waitInternal(l, -1)
}

// WaitTimeout is Wait bounded by d, measured from call entry. Both a
// delivered signal and an elapsed timeout return nil; the caller cannot
// tell them apart and must recheck its predicate. A non-nil error is only
// returned for a destroyed condition variable.
func (c *Cond) WaitTimeout(l sync.Locker, d time.Duration) error {
	if d < 0 {
		d = 0
	}
	return c.waitInternal(l, d)
}

func (c *Cond) waitInternal(l sync.Locker, d time.Duration) error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return api.ErrCondDestroyed
	}
	c.ensure()
	w := newWaiter()
	// registered before l is released: no missed wakeup for signalers that
	// flip the predicate under l
	c.waiters.push(w)
	c.mu.Unlock()

	l.Unlock()
	defer l.Lock()

	if d < 0 {
		<-w.ready
		return c.wakeResult()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-w.ready:
		return c.wakeResult()
	case <-t.C:
		if !w.abandon() {
			// signal raced the timeout; counts as a normal wakeup
			return c.wakeResult()
		}
		return nil
	}
}

// wakeResult distinguishes a signal from the Destroy drain.
func (c *Cond) wakeResult() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return api.ErrCondDestroyed
	}
	return nil
}

// ensure lazily initializes the waiter queue so the zero value works.
func (c *Cond) ensure() {
	if c.waiters == nil {
		c.waiters = newWaitq()
	}
}
