package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a fixed-window request counter keyed by (endpoint, user).
// Windows reset lazily by wall-clock comparison on access; there is no
// background sweeper. The increment-and-compare runs under one mutex so
// concurrent dispatch attempts for the same user cannot race past the cap.
type Limiter struct {
	mu      sync.Mutex
	windows map[key]*window
	clock   func() time.Time
}

type key struct {
	endpoint string
	userID   string
}

type window struct {
	start time.Time
	count int
}

// New creates an empty Limiter.
func New() *Limiter {
	return &Limiter{
		windows: make(map[key]*window),
		clock:   time.Now,
	}
}

// Allow records one attempt for (endpoint, userID) and reports whether it
// fits within maxRequests per windowSize. The first call past an expired
// window reopens it, so a user is never locked out beyond one window.
func (l *Limiter) Allow(endpoint, userID string, maxRequests int, windowSize time.Duration) bool {
	if maxRequests <= 0 {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	k := key{endpoint: endpoint, userID: userID}

	w, ok := l.windows[k]
	if !ok || now.Sub(w.start) > windowSize {
		w = &window{start: now}
		l.windows[k] = w
	}

	w.count++
	return w.count <= maxRequests
}

// Stats reports the number of currently tracked windows.
type Stats struct {
	TrackedWindows int `json:"tracked_windows"`
}

// GetStats returns limiter statistics.
func (l *Limiter) GetStats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{TrackedWindows: len(l.windows)}
}
