// Package cache holds the in-process read cache and its optional redis level.
package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/football-stats/internal/platform/resilience"
)

var errNoLoader = errors.New("cache: loader is required")

type entry struct {
	value   any
	expires time.Time // zero when the store has no ttl
}

// Stats counts store activity since creation.
type Stats struct {
	Hits      int64
	Misses    int64
	Loads     int64
	Evictions int64
}

// Store is an in-process TTL cache, optionally bounded. Concurrent loads of
// one key share a single loader call.
type Store struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	flight     resilience.Flight[any]

	mu      sync.RWMutex
	entries map[string]entry

	hits, misses, loads, evictions atomic.Int64
}

type Option func(*Store)

// WithClock swaps the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxEntries bounds the store. When full, expired entries go first, then
// the one closest to expiry. n <= 0 means unbounded.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		s.maxEntries = max(n, 0)
	}
}

// NewStore returns a store whose entries live for ttl; ttl <= 0 keeps them
// until deleted or evicted.
func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) expired(e entry, now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok && s.expired(e, s.now()) {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, still := s.entries[key]; still && s.expired(current, s.now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		ok = false
	}

	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	now := s.now()
	e := entry{value: value}
	if s.ttl > 0 {
		e.expires = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.makeRoomLocked(now)
	}
	s.entries[key] = e
}

// makeRoomLocked frees at least one slot. Callers hold mu.
func (s *Store) makeRoomLocked(now time.Time) {
	var (
		victim     string
		victimTime time.Time
		found      bool
	)
	for key, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, key)
			s.evictions.Add(1)
			continue
		}
		if !found || e.expires.Before(victimTime) {
			victim, victimTime, found = key, e.expires, true
		}
	}
	if len(s.entries) >= s.maxEntries && found {
		delete(s.entries, victim)
		s.evictions.Add(1)
	}
}

func (s *Store) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// DeletePrefix drops every key starting with prefix and reports how many.
func (s *Store) DeletePrefix(_ context.Context, prefix string) int {
	if prefix == "" {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

func (s *Store) Purge() {
	s.mu.Lock()
	clear(s.entries)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) Stats() Stats {
	return Stats{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Loads:     s.loads.Load(),
		Evictions: s.evictions.Load(),
	}
}

// GetOrLoad returns the cached value for key or stores what loader returns.
// Errors are not cached. An empty key bypasses the cache.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, errNoLoader
	}
	if key == "" {
		return loader(ctx)
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, _, err := s.flight.Do(key, func() (any, error) {
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}
		s.loads.Add(1)
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, value)
		return value, nil
	})
	return value, err
}

// Load is the typed form of GetOrLoad. A nil store calls loader directly, and
// a cached value of another type is dropped and reloaded.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	if s == nil {
		return loader(ctx)
	}

	value, err := s.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if typed, ok := value.(T); ok {
		return typed, nil
	}
	s.Delete(ctx, key)
	return loader(ctx)
}
