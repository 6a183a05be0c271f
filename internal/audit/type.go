package audit

import (
	"time"

	"secops-console/internal/model"
	"secops-console/pkg/paginator"
)

// Filter narrows an audit trail query.
type Filter struct {
	ActorID string
	Action  string
	Since   time.Time
}

// TrailInput is the admin-only audit trail query.
type TrailInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// TrailOutput is one page of audit entries, newest first.
type TrailOutput struct {
	Entries   []model.AuditEntry
	Paginator paginator.Paginator
}
