// File: api/interfaces.go
// Package api defines the primitive contracts of the threadglue facade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"sync"
	"time"
)

// Thread is the lifecycle contract of one OS-scheduled execution context.
// A handle is owned by its creator until reclaimed exactly once, either by
// Join (blocking) or by Detach followed by Free (non-blocking). Using a
// handle after reclaim is undefined.
type Thread interface {
	// ID returns the process-unique identifier of the thread.
	ID() uint64

	// Join blocks until the entry function returns and reclaims the thread.
	Join() error

	// Detach marks the thread so its resources are reclaimed on exit.
	// The handle becomes unusable for Join afterward.
	Detach()

	// Free releases host-side bookkeeping not reclaimed automatically.
	Free()

	// Alive is a non-blocking, best-effort liveness probe.
	// A nil or reclaimed handle reports false without error.
	Alive() bool

	// Cancel requests cooperative termination. Threads created without a
	// cancellation path report ErrNotSupported unconditionally.
	Cancel() error
}

// OnceGuard runs a supplied initializer exactly once across any number of
// competing callers. Callers that lose the race block until the winning
// initializer has returned.
type OnceGuard interface {
	Do(fn func())
}

// CondVar is a wait/notify primitive always paired with a held lock.
type CondVar interface {
	// Signal wakes at least one waiter, if any is present.
	Signal() error

	// Wait atomically releases l, blocks until signaled, then reacquires l.
	Wait(l sync.Locker) error

	// WaitTimeout is Wait with a bounded block. Both a delivered signal and
	// an elapsed timeout return nil; callers must recheck their predicate.
	WaitTimeout(l sync.Locker, d time.Duration) error

	// Destroy invalidates the condition variable. Destroying while waiters
	// are blocked is undefined.
	Destroy()
}
