package push

import "time"

// DefaultTimeout bounds a single gateway request.
const DefaultTimeout = 5 * time.Second

// Config contains configuration for the push gateway client.
type Config struct {
	// Endpoint is the gateway URL notifications are POSTed to.
	Endpoint string
	// APIKey authenticates this service against the gateway.
	APIKey string
	// Timeout bounds a single request.
	Timeout time.Duration
}

// Notification is the payload delivered to the push gateway.
type Notification struct {
	AlertID   string    `json:"alert_id"`
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category"`
	Severity  string    `json:"severity"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// pushRequest is the wire format of a gateway request.
type pushRequest struct {
	UserID       string       `json:"user_id"`
	Notification Notification `json:"notification"`
}
