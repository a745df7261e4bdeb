//go:build !linux && !windows
// +build !linux,!windows

// File: thread/probe_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub probe for platforms without a native liveness check; Alive falls
// back to the handle's own termination state.

package thread

func currentThreadID() uint64 { return 0 }

func probeThreadAlive(uint64) (alive bool, ok bool) { return false, false }
