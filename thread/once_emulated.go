//go:build threadglue_emulated
// +build threadglue_emulated

// File: thread/once_emulated.go
// Author: momentics <momentics@gmail.com>
//
// Emulated once-guard backend: an interlocked busy/free lock word guarding
// the 0 -> 1 transition of the state word. Losing racers spin with 1ms
// sleep yields until the lock is free. Not wait-free, not fair, correct.

package thread

import (
	"sync/atomic"
	"time"

	"github.com/momentics/threadglue/api"
)

// Once guards one-time initialization. The zero value is ready to use and
// marks "not yet run"; there is no teardown path.
type Once struct {
	lock  int32
	state int32 // only touched while holding lock
}

var _ api.OnceGuard = (*Once)(nil)

// Do runs fn exactly once across all callers of this guard.
func (o *Once) Do(fn func()) {
	for atomic.SwapInt32(&o.lock, 1) != 0 {
		time.Sleep(time.Millisecond)
	}
	defer atomic.SwapInt32(&o.lock, 0)
	if o.state == 0 {
		o.state = 1
		fn()
	}
}
