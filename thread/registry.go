// File: thread/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide registry of live thread handles. Entries are dropped on
// reclaim (Join, Free, or exit of a detached thread); handles that are never
// reclaimed stay registered, which makes leaked handles visible via Count.

package thread

import "sync"

type registry struct {
	mu      sync.RWMutex
	handles map[uint64]*Handle
	nextID  uint64
}

var reg = &registry{handles: make(map[uint64]*Handle)}

func (r *registry) add(h *Handle) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.handles[id] = h
	return id
}

func (r *registry) drop(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handles, id)
}

// Count returns the number of live (unreclaimed) thread handles.
func Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.handles)
}

// Lookup returns the live handle with the given id, or nil.
func Lookup(id uint64) *Handle {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.handles[id]
}
