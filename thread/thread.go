// File: thread/thread.go
// Package thread implements the thread lifecycle family of the facade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/momentics/threadglue/api"
)

// EntryFunc is the body of a thread.
type EntryFunc func(arg any)

// CtxEntryFunc is a cancellation-aware thread body. The context is canceled
// when Cancel is called on the handle; the body decides when to observe it.
type CtxEntryFunc func(ctx context.Context, arg any)

// Handle identifies one scheduled execution context. The creator owns the
// handle until it is reclaimed exactly once: Join blocks and reclaims,
// Detach plus Free reclaims without blocking. Use after reclaim is undefined.
type Handle struct {
	id   uint64
	name string

	done     chan struct{}
	joined   int32 // CAS-guarded: only one Join may reclaim
	detached int32
	freed    int32

	// cancel is non-nil only for CreateWithContext threads; it is invoked
	// on Cancel and again after the entry returns to release the context.
	cancel context.CancelFunc

	pinned bool
	tid    atomic.Uint64 // native thread id while pinned and running

	exitPanic any // recovered entry panic, written before done closes
}

// Ensure compliance with the api.Thread contract.
var _ api.Thread = (*Handle)(nil)

// Create starts a new execution context running entry(arg) and returns its
// handle. The entry has no cancellation path; Cancel on the returned handle
// reports ErrNotSupported.
func Create(entry EntryFunc, arg any, opts ...Option) (*Handle, error) {
	if entry == nil {
		return nil, api.ErrInvalidArgument
	}
	h := newHandle(opts)
	go h.run(func() { entry(arg) })
	return h, nil
}

// CreateWithContext starts a thread whose entry receives a context that is
// canceled by Cancel. This is the cooperative-cancellation path; plain
// Create threads cannot be canceled at all.
func CreateWithContext(entry CtxEntryFunc, arg any, opts ...Option) (*Handle, error) {
	if entry == nil {
		return nil, api.ErrInvalidArgument
	}
	h := newHandle(opts)
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go h.run(func() { entry(ctx, arg) })
	return h, nil
}

func newHandle(opts []Option) *Handle {
	h := &Handle{
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.id = reg.add(h)
	return h
}

// run executes the body on its own goroutine, containing panics so an
// abnormal exit is reported by Join instead of crashing the process.
func (h *Handle) run(body func()) {
	defer h.finish()
	defer func() {
		if r := recover(); r != nil {
			h.exitPanic = r
		}
	}()
	if h.pinned {
		runtime.LockOSThread()
		h.tid.Store(currentThreadID())
	}
	body()
}

// finish runs after the entry (and any panic recovery) and publishes
// termination. Closing done is the happens-before edge Join relies on.
func (h *Handle) finish() {
	h.tid.Store(0)
	if h.cancel != nil {
		h.cancel()
	}
	close(h.done)
	// checked after the close so a concurrent Detach either sees done
	// closed and reclaims, or is seen here; drop is idempotent
	if atomic.LoadInt32(&h.detached) == 1 {
		reg.drop(h.id)
	}
}

// ID returns the process-unique identifier of the thread.
func (h *Handle) ID() uint64 {
	if h == nil {
		return 0
	}
	return h.id
}

// Name returns the diagnostic name set via WithName, or "".
func (h *Handle) Name() string {
	if h == nil {
		return ""
	}
	return h.name
}

// Join blocks until the entry function has returned and reclaims the
// thread. Only one Join may succeed; a second one reports ErrAlreadyJoined,
// and joining a detached handle reports ErrDetached. If the entry exited by
// panic, Join returns a structured error carrying the panic value.
func (h *Handle) Join() error {
	if h == nil {
		return api.ErrInvalidArgument
	}
	if atomic.LoadInt32(&h.detached) == 1 {
		return api.ErrDetached
	}
	if !atomic.CompareAndSwapInt32(&h.joined, 0, 1) {
		return api.ErrAlreadyJoined
	}
	<-h.done
	reg.drop(h.id)
	if h.exitPanic != nil {
		return api.NewError(api.ErrCodePanicExit, "thread entry panicked").
			WithContext("panic", h.exitPanic)
	}
	return nil
}

// Detach marks the thread so its bookkeeping is dropped when the entry
// returns. The handle becomes unusable for Join.
func (h *Handle) Detach() {
	if h == nil {
		return
	}
	atomic.StoreInt32(&h.detached, 1)
	select {
	case <-h.done:
		// already exited; reclaim now
		reg.drop(h.id)
	default:
	}
}

// Free releases host-side bookkeeping associated with the handle. The
// running thread, if any, is unaffected. Free of an already-freed handle is
// a no-op.
func (h *Handle) Free() {
	if h == nil {
		return
	}
	if atomic.CompareAndSwapInt32(&h.freed, 0, 1) {
		reg.drop(h.id)
	}
}

// Alive reports whether the thread is still running. Nil handles report
// false without error. For OS-pinned threads a native no-op-signal probe
// confirms the result; the probe is best-effort and race-tolerant, so the
// thread may exit immediately after Alive returns true.
func (h *Handle) Alive() bool {
	if h == nil {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
	}
	if tid := h.tid.Load(); tid != 0 {
		if alive, ok := probeThreadAlive(tid); ok {
			return alive
		}
	}
	return true
}

// Cancel requests cooperative termination. Threads started with
// CreateWithContext get their context canceled and nil is returned; plain
// threads report ErrNotSupported unconditionally. Cancellation is
// best-effort: delivery and timeliness depend entirely on the entry
// observing its context.
func (h *Handle) Cancel() error {
	if h == nil {
		return api.ErrInvalidArgument
	}
	if h.cancel == nil {
		return api.ErrNotSupported
	}
	h.cancel()
	return nil
}
