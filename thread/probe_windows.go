//go:build windows
// +build windows

// File: thread/probe_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows liveness probe for OS-pinned threads: a zero-timeout wait on the
// thread handle, still pending means still running.

package thread

import "golang.org/x/sys/windows"

// currentThreadID returns the native id of the calling thread.
func currentThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}

// probeThreadAlive reports whether the native thread tid still exists.
// ok is false when the probe result is unusable.
func probeThreadAlive(tid uint64) (alive bool, ok bool) {
	h, err := windows.OpenThread(windows.SYNCHRONIZE, false, uint32(tid))
	if err != nil {
		// thread object no longer exists
		return false, true
	}
	defer windows.CloseHandle(h)
	ev, err := windows.WaitForSingleObject(h, 0)
	if err != nil {
		return false, false
	}
	return ev == uint32(windows.WAIT_TIMEOUT), true
}
