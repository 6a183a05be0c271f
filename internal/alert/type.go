package alert

import "secops-console/internal/model"

type SubmitEventInput struct {
	Event model.RawEvent
}

// SubmitEventOutput reports the result of one event submission. Accepted
// is true whenever the event was valid, even if nobody was eligible to
// receive the resulting alert.
type SubmitEventOutput struct {
	Accepted   bool   `json:"accepted"`
	AlertID    string `json:"alert_id,omitempty"`
	Recipients int    `json:"recipients"`
	Reason     string `json:"reason,omitempty"`
}
