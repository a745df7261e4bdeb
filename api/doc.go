// Package api
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral contracts for the threadglue concurrency facade.
// Defines the capability set {thread, once-guard, condition variable}
// as interfaces plus the shared error vocabulary. Concrete backends
// live in the thread package and are selected at build time.
package api
