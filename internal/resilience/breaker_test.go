package resilience

import (
	"errors"
	"sync"
	"testing"
	"time"
)

var errAPIDown = errors.New("market api unreachable")

func TestBreakerStartsClosed(t *testing.T) {
	b := New(FastConfig())
	if b.State() != Closed {
		t.Errorf("initial state = %v, want Closed", b.State())
	}
}

func TestBreakerOpensAfterRepeatedFetchFailures(t *testing.T) {
	b := New(Config{Threshold: 3, ResetTimeout: time.Hour, HalfOpenSuccesses: 2})

	for i := 0; i < 3; i++ {
		if err := b.Execute(func() error { return errAPIDown }); err != errAPIDown {
			t.Fatalf("Execute = %v, want upstream error while closed", err)
		}
	}

	if b.State() != Open {
		t.Errorf("state = %v, want Open after %d failures", b.State(), 3)
	}
	if err := b.Execute(func() error { return nil }); err != ErrOpen {
		t.Errorf("Execute while open = %v, want ErrOpen without calling fn", err)
	}
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	b := New(Config{Threshold: 1, ResetTimeout: time.Millisecond, HalfOpenSuccesses: 2})
	b.Failure()

	time.Sleep(5 * time.Millisecond)

	if err := b.Allow(); err != nil {
		t.Fatalf("Allow() after reset timeout = %v, want trial request allowed", err)
	}
	if b.State() != HalfOpen {
		t.Fatalf("state = %v, want HalfOpen", b.State())
	}

	b.Success()
	b.Success()
	if b.State() != Closed {
		t.Errorf("state = %v, want Closed after recovery successes", b.State())
	}
}

func TestBreakerReopensOnHalfOpenFailure(t *testing.T) {
	b := New(Config{Threshold: 1, ResetTimeout: time.Millisecond, HalfOpenSuccesses: 3})
	b.Failure()

	time.Sleep(5 * time.Millisecond)
	_ = b.Allow()

	b.Failure()
	if b.State() != Open {
		t.Errorf("state = %v, want Open after failed trial request", b.State())
	}
}

func TestBreakerReset(t *testing.T) {
	b := New(Config{Threshold: 1, ResetTimeout: time.Hour, HalfOpenSuccesses: 1})
	b.Failure()
	if b.State() != Open {
		t.Fatal("expected open state")
	}

	b.Reset()
	if b.State() != Closed {
		t.Errorf("state = %v, want Closed after Reset", b.State())
	}
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := New(Config{Threshold: 3, ResetTimeout: time.Hour, HalfOpenSuccesses: 1})

	b.Failure()
	b.Failure()
	b.Success()
	b.Failure()
	b.Failure()

	if b.State() != Closed {
		t.Errorf("state = %v, want Closed while failures stay under threshold", b.State())
	}
}

func TestBreakerConcurrentSafety(t *testing.T) {
	b := New(Config{Threshold: 100, ResetTimeout: time.Second, HalfOpenSuccesses: 10})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = b.Execute(func() error { return nil })
			} else {
				_ = b.Execute(func() error { return errAPIDown })
			}
		}()
	}
	wg.Wait()

	_ = b.State()
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Closed, "closed"},
		{Open, "open"},
		{HalfOpen, "half-open"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	if cfg.Threshold != DefaultThreshold {
		t.Errorf("Threshold = %d, want %d", cfg.Threshold, DefaultThreshold)
	}
	if cfg.ResetTimeout != DefaultResetTimeout {
		t.Errorf("ResetTimeout = %v, want %v", cfg.ResetTimeout, DefaultResetTimeout)
	}
	if cfg.HalfOpenSuccesses != DefaultHalfOpenSuccesses {
		t.Errorf("HalfOpenSuccesses = %d, want %d", cfg.HalfOpenSuccesses, DefaultHalfOpenSuccesses)
	}
}
