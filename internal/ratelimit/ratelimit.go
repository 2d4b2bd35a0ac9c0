package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindow tracks request timestamps per client identifier and admits
// at most limit requests within a trailing window. Timestamps older than
// the window are pruned lazily on access.
//
// All state is guarded by a single mutex so concurrent prune+append
// sequences for the same client never lose or double-count entries.
// Client keys are never evicted; unbounded key cardinality is a known
// scaling limit of the in-process design.
type SlidingWindow struct {
	mu     sync.Mutex
	window time.Duration
	limit  int
	hits   map[string][]time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewSlidingWindow creates a limiter admitting at most limit requests per
// client within the given window.
func NewSlidingWindow(window time.Duration, limit int) *SlidingWindow {
	return &SlidingWindow{
		window: window,
		limit:  limit,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether a request from the given client may proceed.
// When admitted, the request is recorded against the client's window;
// a rejected request is not recorded and does not extend the window.
func (s *SlidingWindow) Allow(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-s.window)

	recent := s.hits[clientID][:0]
	for _, ts := range s.hits[clientID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= s.limit {
		s.hits[clientID] = recent
		return false
	}

	s.hits[clientID] = append(recent, now)
	return true
}
