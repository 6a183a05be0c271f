package model

import "time"

// RawEvent is an inbound security event as handed over by the event source.
// It is immutable once created; the engine never produces raw events itself.
type RawEvent struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Category   Category          `json:"category"`
	Severity   string            `json:"severity"`
	Source     string            `json:"source"`
	DetectedAt time.Time         `json:"detected_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Alert is the canonical, classified representation of a raw event.
// PriorityScore is owned exclusively by the classifier.
type Alert struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	Category      Category  `json:"category"`
	Severity      Severity  `json:"severity"`
	PriorityScore int       `json:"priority_score"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}

// Recipient is one user the visibility filter admitted for an alert,
// together with the channels their preference enables.
type Recipient struct {
	User     User      `json:"user"`
	Channels []Channel `json:"channels"`
}
