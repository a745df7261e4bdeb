//go:build threadglue_emulated
// +build threadglue_emulated

// File: thread/cond_sema.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counting-semaphore condition variable backend. Wait releases the lock,
// blocks on the semaphore, then reacquires the lock; Signal posts one
// permit. Two documented approximations are preserved on purpose:
//
//   - release-and-block is not atomic, and
//   - a signal with no waiter parked accumulates a permit that releases a
//     future waiter immediately.
//
// Dependents already tolerate spurious wakeups, so both backends stay
// interchangeable as long as callers recheck their predicates.

package thread

import (
	"errors"
	"sync"
	"time"

	"github.com/momentics/threadglue/api"
)

// Cond is a wait/notify primitive always paired with a held lock. Wakeups
// follow mesa discipline: a returning waiter must recheck its predicate.
type Cond struct {
	mu        sync.Mutex
	sem       *semaphore
	destroyed bool
}

var _ api.CondVar = (*Cond)(nil)

// Init prepares the condition variable for use. The zero value is also
// usable; Init exists for the uniform init/destroy discipline.
func (c *Cond) Init() {
	c.mu.Lock()
	c.sem = newSemaphore(0)
	c.destroyed = false
	c.mu.Unlock()
}

// Destroy invalidates the condition variable. Parked waiters are released
// with ErrCondDestroyed so their goroutines do not leak; destroying with
// waiters blocked remains undefined behavior.
func (c *Cond) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyed = true
	if c.sem != nil {
		c.sem.close()
		c.sem = nil
	}
}

// Signal posts one permit. With no waiter parked the permit accumulates.
func (c *Cond) Signal() error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return api.ErrCondDestroyed
	}
	c.ensure()
	s := c.sem
	c.mu.Unlock()
	if !s.post() {
		return api.ErrCondDestroyed
	}
	return nil
}

// Wait releases l, blocks on the semaphore, then reacquires l.
func (c *Cond) Wait(l sync.Locker) error {
	return c.waitInternal(l, -1)
}

// WaitTimeout is Wait bounded by d, measured from call entry. Both a
// delivered permit and an elapsed timeout return nil; the caller must
// recheck its predicate. A non-nil error is only returned for a destroyed
// condition variable.
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
	s := c.sem
	c.mu.Unlock()

	// not atomic with the block below; preserved from the emulation
	l.Unlock()
	defer l.Lock()

	err := s.acquire(d)
	switch {
	case err == nil, errors.Is(err, errSemTimeout):
		return nil
	default:
		return api.ErrCondDestroyed
	}
}

// ensure lazily initializes the semaphore so the zero value works.
func (c *Cond) ensure() {
	if c.sem == nil {
		c.sem = newSemaphore(0)
	}
}
