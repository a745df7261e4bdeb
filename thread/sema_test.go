// File: thread/sema_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package thread

import (
	"testing"
	"time"
)

// A post with no waiter parked accumulates a permit instead of being lost.
// The emulated condition variable is built on exactly this behavior; if it
// ever changes, the backends stop being interchangeable.
func TestSemaphorePermitAccumulation(t *testing.T) {
	s := newSemaphore(0)
	if !s.post() {
		t.Fatal("post failed")
	}
	if !s.post() {
		t.Fatal("post failed")
	}
	if got := s.available(); got != 2 {
		t.Fatalf("expected 2 accumulated permits, got %d", got)
	}
	for i := 0; i < 2; i++ {
		start := time.Now()
		if err := s.acquire(10 * time.Second); err != nil {
			t.Fatalf("acquire failed: %v", err)
		}
		if time.Since(start) > time.Second {
			t.Error("accumulated permit did not release the acquirer immediately")
		}
	}
	if got := s.available(); got != 0 {
		t.Errorf("expected 0 permits left, got %d", got)
	}
}

func TestSemaphoreAcquireTimesOut(t *testing.T) {
	s := newSemaphore(0)
	start := time.Now()
	err := s.acquire(50 * time.Millisecond)
	if err != errSemTimeout {
		t.Errorf("expected errSemTimeout, got %v", err)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Error("acquire returned before the timeout elapsed")
	}
}

func TestSemaphorePostWakesWaiter(t *testing.T) {
	s := newSemaphore(0)
	acquired := make(chan error, 1)
	go func() {
		acquired <- s.acquire(-1)
	}()
	time.Sleep(20 * time.Millisecond) // let the acquirer park
	if !s.post() {
		t.Fatal("post failed")
	}
	select {
	case err := <-acquired:
		if err != nil {
			t.Errorf("acquire failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("post did not wake the parked acquirer")
	}
	if got := s.available(); got != 0 {
		t.Errorf("handed-off permit must not accumulate, got %d", got)
	}
}

func TestSemaphoreClose(t *testing.T) {
	s := newSemaphore(0)
	acquired := make(chan error, 1)
	go func() {
		acquired <- s.acquire(-1)
	}()
	time.Sleep(20 * time.Millisecond)
	s.close()
	select {
	case err := <-acquired:
		if err != errSemClosed {
			t.Errorf("expected errSemClosed, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("close did not release the parked acquirer")
	}
	if s.post() {
		t.Error("post on a closed semaphore must fail")
	}
	if err := s.acquire(0); err != errSemClosed {
		t.Errorf("expected errSemClosed, got %v", err)
	}
}

// Timed-out waiters are lazily discarded so a later post reaches a live one.
func TestSemaphoreAbandonedWaiterSkipped(t *testing.T) {
	s := newSemaphore(0)
	if err := s.acquire(20 * time.Millisecond); err != errSemTimeout {
		t.Fatalf("expected errSemTimeout, got %v", err)
	}
	acquired := make(chan error, 1)
	go func() {
		acquired <- s.acquire(-1)
	}()
	time.Sleep(20 * time.Millisecond)
	if !s.post() {
		t.Fatal("post failed")
	}
	select {
	case err := <-acquired:
		if err != nil {
			t.Errorf("acquire failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("post was swallowed by an abandoned waiter")
	}
}
