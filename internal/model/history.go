package model

import "time"

// DeliveryStatus is the settled outcome of one (user, channel) dispatch pair.
type DeliveryStatus string

const (
	DeliveryDelivered   DeliveryStatus = "delivered"
	DeliveryFailed      DeliveryStatus = "failed"
	DeliveryRateLimited DeliveryStatus = "rate_limited"
	DeliveryTimedOut    DeliveryStatus = "timed_out"
)

// AlertRecord is one entry in a user's dispatch history. Created at
// dispatch time, mutated only by acknowledgment, evicted past the
// per-user retention cap.
type AlertRecord struct {
	ID             string           `json:"id"`
	AlertID        string           `json:"alert_id"`
	UserID         string           `json:"user_id"`
	Delivered      map[Channel]bool `json:"delivered"`
	Acknowledged   bool             `json:"acknowledged"`
	AcknowledgedAt *time.Time       `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
