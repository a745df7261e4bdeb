//go:build !threadglue_emulated
// +build !threadglue_emulated

// File: thread/once_native.go
// Author: momentics <momentics@gmail.com>
//
// Native once-guard backend on top of sync.Once.

package thread

import (
	"sync"

	"github.com/momentics/threadglue/api"
)

// Once guards one-time initialization. The zero value is ready to use and
// marks "not yet run"; there is no teardown path.
type Once struct {
	once sync.Once
}

var _ api.OnceGuard = (*Once)(nil)

// Do runs fn exactly once across all callers of this guard. Losing racers
// block until the winning fn has returned, then return without re-running it.
func (o *Once) Do(fn func()) {
	o.once.Do(fn)
}
