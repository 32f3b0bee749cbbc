// Package syncx provides small synchronization helpers
package syncx

import "sync"

// RWGuard is an RWMutex-protected value. The pipeline uses it for shared
// snapshots such as the latest captured frame bytes.
type RWGuard[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewGuard creates a guarded value.
func NewGuard[T any](initial T) *RWGuard[T] {
	return &RWGuard[T]{value: initial}
}

// Get returns the current value under a read lock. T should be a value
// type or treated as immutable by callers.
func (g *RWGuard[T]) Get() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.value
}

// Set replaces the value.
func (g *RWGuard[T]) Set(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = v
}

// Update runs fn with a pointer to the value under the write lock and
// returns fn's result.
func (g *RWGuard[T]) Update(fn func(*T) any) any {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(&g.value)
}
