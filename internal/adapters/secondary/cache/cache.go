// Package cache provides a generic in-memory store with per-entry TTL.
//
// Entries are never evicted: staleness is a read-time check against the
// entry's own timestamp and TTL, which suits the bounded key space of the
// feed (one user-list entry plus one entry per observed user or post).
package cache

import (
	"sync"
	"time"
)

// entry holds one cached value together with the moment it was stored and
// the TTL under which it was stored.
type entry[V any] struct {
	data      V
	fetchedAt time.Time
	ttl       time.Duration
}

func (e entry[V]) valid(now time.Time) bool {
	return now.Sub(e.fetchedAt) < e.ttl
}

// Store is a thread-safe map of keys to expiring values. The zero value is
// not usable; create instances with New.
type Store[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]entry[V]
	now     func() time.Time
}

// Option configures a Store.
type Option[K comparable, V any] func(*Store[K, V])

// WithClock overrides the time source, for deterministic expiry tests.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(s *Store[K, V]) {
		s.now = now
	}
}

// New creates an empty store.
func New[K comparable, V any](opts ...Option[K, V]) *Store[K, V] {
	s := &Store[K, V]{
		entries: make(map[K]entry[V]),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the value stored under key if it exists and has not expired.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !e.valid(s.now()) {
		var zero V

		return zero, false
	}

	return e.data, true
}

// Put stores value under key with the given TTL, fully replacing any prior
// entry and its timestamp.
func (s *Store[K, V]) Put(key K, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry[V]{
		data:      value,
		fetchedAt: s.now(),
		ttl:       ttl,
	}
}

// Valid reports whether key holds a fresh entry.
func (s *Store[K, V]) Valid(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]

	return ok && e.valid(s.now())
}
