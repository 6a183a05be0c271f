package http

import (
	"time"

	"secops-console/internal/audit"
	"secops-console/internal/model"
	"secops-console/pkg/paginator"
)

type trailReq struct {
	paginator.PaginateQuery
	ActorID string    `form:"actor_id"`
	Action  string    `form:"action"`
	Since   time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r trailReq) toInput() audit.TrailInput {
	return audit.TrailInput{
		Filter: audit.Filter{
			ActorID: r.ActorID,
			Action:  r.Action,
			Since:   r.Since,
		},
		PaginateQuery: r.PaginateQuery,
	}
}

type auditEntryResp struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

func newAuditEntryResp(e model.AuditEntry) auditEntryResp {
	return auditEntryResp{
		ID:        e.ID,
		ActorID:   e.ActorID,
		Action:    e.Action,
		Target:    e.Target,
		Outcome:   e.Outcome,
		Timestamp: e.Timestamp,
	}
}

type trailResp struct {
	Entries   []auditEntryResp            `json:"entries"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newTrailResp(out audit.TrailOutput) trailResp {
	entries := make([]auditEntryResp, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, newAuditEntryResp(e))
	}
	return trailResp{
		Entries:   entries,
		Paginator: out.Paginator.ToResponse(),
	}
}
