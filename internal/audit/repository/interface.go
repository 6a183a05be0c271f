package repository

import (
	"context"

	"secops-console/internal/audit"
	"secops-console/internal/model"
	"secops-console/pkg/paginator"
)

// Repository persists audit entries. Entries are append-only; there is no
// update or delete.
type Repository interface {
	Insert(ctx context.Context, entry model.AuditEntry) error
	Get(ctx context.Context, opts GetOptions) ([]model.AuditEntry, paginator.Paginator, error)
}

// GetOptions contains options for a paginated audit query.
type GetOptions struct {
	Filter        audit.Filter
	PaginateQuery paginator.PaginateQuery
}
