// Package ratelimit implements the fixed-window rate limiter used by the
// contact gateway: at most N requests per client identifier inside a rolling
// 15-minute window (both configurable).
//
// The record store is an injected interface rather than a package-level map,
// so tests can use the in-memory implementation directly and a deployment
// that scales horizontally can substitute a shared store without touching
// the limiter logic. The in-memory store is mutex-guarded and safe for
// genuinely parallel callers.
package ratelimit

import (
	"sync"
	"time"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// Store is the persistence contract for per-client window records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the record for key and whether one exists.
	Get(key string) (domain.RateLimitRecord, bool)
	// Set stores the record for key.
	Set(key string, rec domain.RateLimitRecord)
}

// MemoryStore is a process-local Store backed by a mutex-guarded map.
// Entries whose window has expired are evicted opportunistically during
// writes to keep memory bounded.
type MemoryStore struct {
	mu         sync.Mutex
	records    map[string]domain.RateLimitRecord
	writes     int
	now        func() time.Time
	sweepEvery int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:    make(map[string]domain.RateLimitRecord),
		now:        time.Now,
		sweepEvery: 1000,
	}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (domain.RateLimitRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key]
	return rec, ok
}

// Set implements Store. Every sweepEvery writes it drops records whose
// window already expired.
func (s *MemoryStore) Set(key string, rec domain.RateLimitRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes++
	if s.writes >= s.sweepEvery {
		cutoff := s.now()
		for k, r := range s.records {
			if !r.ResetTime.After(cutoff) {
				delete(s.records, k)
			}
		}
		s.writes = 0
	}
	s.records[key] = rec
}

// Len reports the number of stored records (expired ones included until the
// next sweep).
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Limiter enforces the fixed window over an injected Store.
//
// Per-key state machine: no record (or an expired one) means unthrottled —
// the next request opens a fresh window with count 1. While the window is
// live, each request increments the count. Once the count reaches Max the
// key is blocked until the window expires; blocked requests do not mutate
// the record further.
type Limiter struct {
	mu     sync.Mutex
	store  Store
	max    int
	window time.Duration

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// NewLimiter creates a Limiter allowing max requests per window per key.
func NewLimiter(store Store, max int, window time.Duration) *Limiter {
	if max < 1 {
		max = 1
	}
	return &Limiter{store: store, max: max, window: window, Now: time.Now}
}

// Allow records a request for key and reports whether it may proceed.
// The second return value is the time the current window resets, which
// callers surface in Retry-After style hints.
func (l *Limiter) Allow(key string) (bool, time.Time) {
	// The read-modify-write below must be atomic per call, not just per
	// store operation, or parallel requests lose increments.
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.Now()

	rec, ok := l.store.Get(key)
	if !ok || !rec.ResetTime.After(now) {
		rec = domain.RateLimitRecord{Count: 1, ResetTime: now.Add(l.window)}
		l.store.Set(key, rec)
		return true, rec.ResetTime
	}

	if rec.Count >= l.max {
		return false, rec.ResetTime
	}

	rec.Count++
	l.store.Set(key, rec)
	return true, rec.ResetTime
}
