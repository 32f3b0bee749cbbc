package price

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/relicscope/platform/internal/resilience"
)

const warmConcurrency = 4

// Resolver caches quotes with a TTL. Concurrent resolves of the same item
// collapse into one upstream fetch; when a refresh fails, the last known
// entry is served marked stale.
type Resolver struct {
	source   Source
	ttl      time.Duration
	capacity int
	retry    resilience.RetryConfig
	breaker  *resilience.Breaker
	group    singleflight.Group

	mu    sync.RWMutex
	cache map[string]Entry
}

// NewResolver builds a resolver over source. capacity bounds the cache;
// entries past ttl are refreshed on access.
func NewResolver(source Source, ttl time.Duration, capacity int) *Resolver {
	return &Resolver{
		source:   source,
		ttl:      ttl,
		capacity: capacity,
		retry:    resilience.PriceRetryConfig(),
		breaker:  resilience.New(resilience.FastConfig()),
		cache:    make(map[string]Entry),
	}
}

// Resolve returns the valuation for item, from cache when fresh.
func (r *Resolver) Resolve(ctx context.Context, item string) (Entry, error) {
	if e, ok := r.cached(item); ok && !r.expired(e) {
		return e, nil
	}

	v, err, _ := r.group.Do(item, func() (any, error) {
		// Another flight may have refreshed while we waited on the lock.
		if e, ok := r.cached(item); ok && !r.expired(e) {
			return e, nil
		}

		var entry Entry
		fetchErr := r.breaker.Execute(func() error {
			return resilience.Retry(ctx, r.retry, func() error {
				e, err := r.source.Quote(ctx, item)
				if err != nil {
					return err
				}
				entry = e
				return nil
			})
		})
		if fetchErr != nil {
			if stale, ok := r.cached(item); ok {
				stale.Stale = true
				slog.Warn("serving stale price", "item", item, "error", fetchErr)
				return stale, nil
			}
			return nil, fetchErr
		}

		r.store(entry)
		return entry, nil
	})
	if err != nil {
		return Entry{}, err
	}
	return v.(Entry), nil
}

// Warm pre-fetches quotes for items in bounded batches. Individual failures
// are logged, not fatal.
func (r *Resolver) Warm(ctx context.Context, items []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)
	for _, item := range items {
		g.Go(func() error {
			if _, err := r.Resolve(ctx, item); err != nil {
				slog.Warn("warm fetch failed", "item", item, "error", err)
			}
			return nil
		})
	}
	g.Wait()
}

// Len reports the number of cached entries.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

func (r *Resolver) cached(item string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.cache[item]
	return e, ok
}

func (r *Resolver) expired(e Entry) bool {
	return time.Since(e.FetchedAt) >= r.ttl
}

// store inserts an entry, sweeping expired ones and enforcing the capacity
// bound by evicting the oldest entries.
func (r *Resolver) store(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, v := range r.cache {
		if time.Since(v.FetchedAt) >= r.ttl {
			delete(r.cache, k)
		}
	}
	for len(r.cache) >= r.capacity && r.capacity > 0 {
		oldestKey := ""
		var oldest time.Time
		for k, v := range r.cache {
			if oldestKey == "" || v.FetchedAt.Before(oldest) {
				oldestKey = k
				oldest = v.FetchedAt
			}
		}
		delete(r.cache, oldestKey)
	}
	r.cache[e.Item] = e
}
