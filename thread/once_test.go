// File: thread/once_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread_test

import (
	"sync/atomic"
	"testing"

	"github.com/momentics/threadglue/thread"
)

// K concurrent racers through one guard must run the initializer exactly
// once, and every racer must observe it finished before returning.
func TestOnceConcurrentRacers(t *testing.T) {
	for _, k := range []int{1, 2, 8, 32} {
		var guard thread.Once
		var counter int64
		var finished int64

		handles := make([]*thread.Handle, 0, k)
		for i := 0; i < k; i++ {
			h, err := thread.Create(func(any) {
				guard.Do(func() {
					atomic.AddInt64(&counter, 1)
					atomic.AddInt64(&finished, 1)
				})
				if atomic.LoadInt64(&finished) != 1 {
					t.Error("Do returned before the initializer finished")
				}
			}, nil)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			handles = append(handles, h)
		}
		for _, h := range handles {
			if err := h.Join(); err != nil {
				t.Errorf("Join failed: %v", err)
			}
		}
		if got := atomic.LoadInt64(&counter); got != 1 {
			t.Errorf("k=%d: initializer ran %d times", k, got)
		}
	}
}

func TestOnceSubsequentCallsSkip(t *testing.T) {
	var guard thread.Once
	runs := 0
	guard.Do(func() { runs++ })
	guard.Do(func() { runs++ })
	guard.Do(func() { t.Error("late initializer must not run") })
	if runs != 1 {
		t.Errorf("initializer ran %d times", runs)
	}
}
