// File: thread/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

import "sync"

// Mutex is a non-reentrant mutual exclusion lock. Lock and Unlock carry no
// status; a thread that self-deadlocks or unlocks a mutex it does not hold
// gets the native runtime behavior, undetected by this layer.
//
// Init and Destroy mark the lifecycle boundary of the C-style contract.
// Native Go mutexes need no setup or teardown, so both are no-ops; they are
// kept so callers can keep a uniform init/destroy discipline across
// primitives. Destroy must not be called while the lock is held or waited on.
type Mutex struct {
	mu sync.Mutex
}

var _ sync.Locker = (*Mutex)(nil)

// Init prepares the mutex for use.
func (m *Mutex) Init() {}

// Destroy ends the mutex lifecycle. Use after Destroy is undefined.
func (m *Mutex) Destroy() {}

// Lock blocks until the mutex is acquired.
func (m *Mutex) Lock() { m.mu.Lock() }

// Unlock releases the mutex.
func (m *Mutex) Unlock() { m.mu.Unlock() }
