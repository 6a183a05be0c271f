package dispatch

import (
	"sync"
	"time"

	"secops-console/internal/model"
)

// Config tunes the dispatcher's rate limit and retry behavior.
type Config struct {
	// MaxPerWindow and Window bound how many dispatches a single user may
	// receive per fixed window.
	MaxPerWindow int
	Window       time.Duration

	// PerSendTimeout caps each push or email attempt. OverallTimeout caps
	// the whole fan-out; sends still pending at that point settle as
	// timed out.
	PerSendTimeout time.Duration
	OverallTimeout time.Duration

	// RetryBackoff holds the wait before each retry of a failed push or
	// email send. Its length is the retry count.
	RetryBackoff []time.Duration
}

// DefaultConfig returns the production dispatch tuning.
func DefaultConfig() Config {
	return Config{
		MaxPerWindow:   60,
		Window:         time.Minute,
		PerSendTimeout: 5 * time.Second,
		OverallTimeout: 30 * time.Second,
		RetryBackoff:   []time.Duration{200 * time.Millisecond, 800 * time.Millisecond},
	}
}

// Report collects the settled outcome of every (recipient, channel) pair
// of one dispatch. Safe for concurrent recording.
type Report struct {
	mu      sync.Mutex
	results map[string]map[model.Channel]model.DeliveryStatus
}

// NewReport returns an empty report ready for concurrent recording.
func NewReport() *Report {
	return &Report{results: make(map[string]map[model.Channel]model.DeliveryStatus)}
}

// Record stores the settled status of one (user, channel) pair.
func (r *Report) Record(userID string, ch model.Channel, status model.DeliveryStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.results[userID] == nil {
		r.results[userID] = make(map[model.Channel]model.DeliveryStatus)
	}
	r.results[userID][ch] = status
}

// StatusFor returns the per-channel outcomes recorded for a user.
func (r *Report) StatusFor(userID string) map[model.Channel]model.DeliveryStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[model.Channel]model.DeliveryStatus, len(r.results[userID]))
	for ch, st := range r.results[userID] {
		out[ch] = st
	}
	return out
}

// DeliveredFor reports which channels actually reached the user.
func (r *Report) DeliveredFor(userID string) map[model.Channel]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[model.Channel]bool, len(r.results[userID]))
	for ch, st := range r.results[userID] {
		out[ch] = st == model.DeliveryDelivered
	}
	return out
}

// Users returns every user the report has outcomes for.
func (r *Report) Users() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]string, 0, len(r.results))
	for id := range r.results {
		users = append(users, id)
	}
	return users
}
