// File: thread/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package thread is a cross-platform concurrency primitives facade:
// thread lifecycle (create/detach/free/join/alive/cancel), mutexes,
// once-guards, and condition variables with timed wait.
//
// Backends are selected at build time, not runtime. The default build uses
// native-semantics primitives; the threadglue_emulated tag selects the
// interlocked spin once-guard and the counting-semaphore condition variable,
// which intentionally preserve the looser semantics of their originals
// (a signal with no waiter accumulates a permit instead of being dropped).
package thread
