// Package history keeps a bounded in-memory record of recent valuations
package history

import (
	"sync"
	"time"
)

// Item is one valued reward slot. Slot is the zero-based on-screen
// position, which can be sparse when some slots fail to recognize.
type Item struct {
	Slot       int     `json:"slot"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Platinum   float64 `json:"platinum"`
	Ducats     int     `json:"ducats"`
	Owned      int     `json:"owned"`
	Similarity float64 `json:"similarity"`
	Vaulted    bool    `json:"vaulted"`
	Stale      bool    `json:"stale"`
}

// Valuation is one completed pipeline pass over a recognized screen.
type Valuation struct {
	Seq          uint64    `json:"seq"`
	CapturedAt   time.Time `json:"captured_at"`
	Screen       string    `json:"screen"`
	TimerSeconds int       `json:"timer_seconds"`
	Items        []Item    `json:"items"`
}

// Store is an in-memory ring of recent valuations with an event channel
// for live consumers.
type Store struct {
	mu       sync.RWMutex
	entries  []Valuation
	maxSize  int
	eventsCh chan Valuation
}

// NewStore creates a store holding at most maxEntries valuations.
func NewStore(maxEntries, eventBuffer int) *Store {
	return &Store{
		entries:  make([]Valuation, 0, maxEntries),
		maxSize:  maxEntries,
		eventsCh: make(chan Valuation, eventBuffer),
	}
}

// Add records a valuation, evicting the oldest past capacity.
func (s *Store) Add(v Valuation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, v)
	if len(s.entries) > s.maxSize {
		s.entries = s.entries[len(s.entries)-s.maxSize:]
	}
}

// Latest returns the most recent valuation.
func (s *Store) Latest() (Valuation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return Valuation{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Recent returns up to n valuations, newest first.
func (s *Store) Recent(n int) []Valuation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Valuation, n)
	for i := 0; i < n; i++ {
		out[i] = s.entries[len(s.entries)-1-i]
	}
	return out
}

// Len reports the number of stored valuations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Events returns the channel of emitted valuations.
func (s *Store) Events() <-chan Valuation {
	return s.eventsCh
}

// Emit queues a valuation for consumers without blocking the pipeline.
// When the buffer is full the oldest pending valuation is dropped so
// consumers always converge on the newest results.
func (s *Store) Emit(v Valuation) {
	for {
		select {
		case s.eventsCh <- v:
			return
		default:
			select {
			case <-s.eventsCh:
			default:
			}
		}
	}
}
