package http

import (
	"time"

	"secops-console/internal/alert"
	"secops-console/internal/model"
)

type submitEventReq struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Category   string            `json:"category"`
	Severity   string            `json:"severity"`
	Source     string            `json:"source"`
	DetectedAt time.Time         `json:"detected_at"`
	Metadata   map[string]string `json:"metadata"`
}

func (r submitEventReq) toInput() alert.SubmitEventInput {
	return alert.SubmitEventInput{
		Event: model.RawEvent{
			ID:         r.ID,
			Type:       r.Type,
			Category:   model.Category(r.Category),
			Severity:   r.Severity,
			Source:     r.Source,
			DetectedAt: r.DetectedAt,
			Metadata:   r.Metadata,
		},
	}
}

type submitEventResp struct {
	Accepted   bool   `json:"accepted"`
	AlertID    string `json:"alert_id,omitempty"`
	Recipients int    `json:"recipients"`
	Reason     string `json:"reason,omitempty"`
}

func newSubmitEventResp(out alert.SubmitEventOutput) submitEventResp {
	return submitEventResp{
		Accepted:   out.Accepted,
		AlertID:    out.AlertID,
		Recipients: out.Recipients,
		Reason:     out.Reason,
	}
}
