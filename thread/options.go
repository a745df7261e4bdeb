// File: thread/options.go
// Package thread defines functional options for thread creation.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

// Option customizes thread creation.
type Option func(*Handle)

// WithOSThread pins the entry to a dedicated OS thread for its whole
// lifetime and records the native thread id, enabling the no-op-signal
// liveness probe in Alive on platforms that support it.
func WithOSThread() Option {
	return func(h *Handle) {
		h.pinned = true
	}
}

// WithName attaches a diagnostic name to the handle.
func WithName(name string) Option {
	return func(h *Handle) {
		h.name = name
	}
}
