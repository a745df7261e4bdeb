//go:build linux
// +build linux

// File: thread/probe_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux liveness probe for OS-pinned threads: tgkill with signal 0, the
// no-op-signal probe. Accuracy is race-dependent; the thread id may be
// recycled by the kernel after exit, so callers check the handle's own
// termination state first.

package thread

import "golang.org/x/sys/unix"

// currentThreadID returns the native id of the calling thread.
func currentThreadID() uint64 {
	return uint64(unix.Gettid())
}

// probeThreadAlive reports whether the native thread tid still exists.
// ok is false when the probe result is unusable.
func probeThreadAlive(tid uint64) (alive bool, ok bool) {
	err := unix.Tgkill(unix.Getpid(), int(tid), 0)
	if err == nil {
		return true, true
	}
	if err == unix.ESRCH {
		return false, true
	}
	return false, false
}
