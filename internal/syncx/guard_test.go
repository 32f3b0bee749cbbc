package syncx

import (
	"bytes"
	"sync"
	"testing"
)

func TestGuardGetSet(t *testing.T) {
	g := NewGuard[[]byte](nil)

	if got := g.Get(); got != nil {
		t.Errorf("Get() = %v, want nil before any capture", got)
	}

	g.Set([]byte("frame-1"))
	if got := g.Get(); !bytes.Equal(got, []byte("frame-1")) {
		t.Errorf("Get() = %q", got)
	}

	g.Set([]byte("frame-2"))
	if got := g.Get(); !bytes.Equal(got, []byte("frame-2")) {
		t.Errorf("Get() after overwrite = %q", got)
	}
}

func TestGuardUpdate(t *testing.T) {
	g := NewGuard(10)

	old := g.Update(func(v *int) any {
		prev := *v
		*v = 20
		return prev
	})

	if old != 10 {
		t.Errorf("Update returned %v, want previous value 10", old)
	}
	if got := g.Get(); got != 20 {
		t.Errorf("Get() = %d, want 20", got)
	}
}

func TestGuardConcurrentSafety(t *testing.T) {
	g := NewGuard(0)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Update(func(v *int) any {
				*v++
				return nil
			})
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Get()
		}()
	}
	wg.Wait()

	if got := g.Get(); got != 100 {
		t.Errorf("Get() = %d, want 100 after concurrent updates", got)
	}
}
