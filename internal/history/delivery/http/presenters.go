package http

import (
	"time"

	"secops-console/internal/history"
	"secops-console/internal/model"
	"secops-console/pkg/paginator"
)

type listReq struct {
	paginator.PaginateQuery
}

func (r listReq) toInput() history.ListInput {
	return history.ListInput{PaginateQuery: r.PaginateQuery}
}

type alertRecordResp struct {
	ID             string          `json:"id"`
	AlertID        string          `json:"alert_id"`
	Delivered      map[string]bool `json:"delivered"`
	Acknowledged   bool            `json:"acknowledged"`
	AcknowledgedAt *time.Time      `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func newAlertRecordResp(rec model.AlertRecord) alertRecordResp {
	delivered := make(map[string]bool, len(rec.Delivered))
	for ch, ok := range rec.Delivered {
		delivered[string(ch)] = ok
	}
	return alertRecordResp{
		ID:             rec.ID,
		AlertID:        rec.AlertID,
		Delivered:      delivered,
		Acknowledged:   rec.Acknowledged,
		AcknowledgedAt: rec.AcknowledgedAt,
		CreatedAt:      rec.CreatedAt,
	}
}

type listResp struct {
	Records   []alertRecordResp            `json:"records"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListResp(out history.ListOutput) listResp {
	records := make([]alertRecordResp, 0, len(out.Records))
	for _, rec := range out.Records {
		records = append(records, newAlertRecordResp(rec))
	}
	return listResp{
		Records:   records,
		Paginator: out.Paginator.ToResponse(),
	}
}

type acknowledgeAllResp struct {
	Acknowledged int64 `json:"acknowledged"`
}
