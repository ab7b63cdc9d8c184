// Package ratelimit implements fixed-window request counting keyed by client
// IP. A bucket is valid only while now <= resetAt; once its window elapses it
// is replaced rather than incremented. Denied requests still count, so a
// client cannot reset its own window by spamming past the limit.
//
// Stores are purely in-memory and provide no cross-process consistency; this
// is an accepted limitation of a single-instance deployment.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// GlobalKey is the bucket key used by stores that track a single shared
// budget rather than per-client counts.
const GlobalKey = "global"

// bucket is a fixed-window counter for one key.
type bucket struct {
	count   int
	resetAt time.Time
}

// Store is a fixed-window rate limiter over string keys.
type Store struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	window  time.Duration
	max     int
	now     func() time.Time
}

// New creates a store allowing max observations per key per window.
func New(window time.Duration, max int) *Store {
	return &Store{
		buckets: make(map[string]*bucket),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// NewWithClock creates a store with an injectable clock for tests.
func NewWithClock(window time.Duration, max int, now func() time.Time) *Store {
	s := New(window, max)
	s.now = now
	return s
}

// Allow records one observation for key and reports whether it is within the
// window's budget. A fresh or expired window always resets the count to 1 and
// allows.
func (s *Store) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok || now.After(b.resetAt) {
		s.buckets[key] = &bucket{count: 1, resetAt: now.Add(s.window)}
		return true
	}

	b.count++
	return b.count <= s.max
}

// Sweep deletes every bucket whose window has elapsed, bounding memory to the
// number of distinct active keys.
func (s *Store) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, b := range s.buckets {
		if now.After(b.resetAt) {
			delete(s.buckets, key)
		}
	}
}

// Len reports the current number of tracked buckets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// StartSweeper sweeps the given stores on a fixed interval until ctx is
// canceled. The sweep runs independently of request traffic.
func StartSweeper(ctx context.Context, interval time.Duration, stores ...*Store) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for _, s := range stores {
					s.Sweep()
				}
			}
		}
	}()
}
