package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Store tracks per-key request counts inside a fixed UTC-day window.
type Store interface {
	// Incr increments the counter for key within the window that contains
	// now and returns the count after the increment.
	Incr(ctx context.Context, key string, now time.Time) (int64, error)
}

// Decision is the outcome of a quota check, including the header values
// the HTTP layer exposes to callers.
type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// Limiter enforces a daily request quota per API key. Windows are UTC
// calendar days, so every caller's quota resets at 00:00 UTC.
type Limiter struct {
	store Store
	limit int64
	now   func() time.Time
}

func NewLimiter(store Store, dailyLimit int64) (*Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("ratelimit store is required")
	}
	if dailyLimit < 1 {
		return nil, fmt.Errorf("daily limit must be positive, got %d", dailyLimit)
	}

	return &Limiter{
		store: store,
		limit: dailyLimit,
		now:   time.Now,
	}, nil
}

func (l *Limiter) Check(ctx context.Context, key string) (Decision, error) {
	now := l.now().UTC()
	count, err := l.store.Incr(ctx, key, now)
	if err != nil {
		return Decision{}, fmt.Errorf("increment quota for key: %w", err)
	}

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   windowStart(now).Add(24 * time.Hour),
	}, nil
}

func windowStart(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WindowKey namespaces a caller key by its UTC-day window so stale
// buckets never bleed into the next day.
func WindowKey(key string, now time.Time) string {
	return key + ":" + windowStart(now).Format("2006-01-02")
}

type memoryBucket struct {
	window time.Time
	count  int64
}

// MemoryStore keeps quota counters in process memory. It is the default
// store and the fallback when no Redis URL is configured.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]memoryBucket
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]memoryBucket)}
}

func (s *MemoryStore) Incr(_ context.Context, key string, now time.Time) (int64, error) {
	window := windowStart(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok || !b.window.Equal(window) {
		b = memoryBucket{window: window}
	}
	b.count++
	s.buckets[key] = b

	return b.count, nil
}
