package repository

import (
	"context"
	"errors"
	"time"

	"secops-console/internal/model"
	"secops-console/pkg/paginator"
)

// ErrNotFound is returned when no record matches the given ID.
var ErrNotFound = errors.New("alert record not found")

type ListOptions struct {
	UserID        string
	PaginateQuery paginator.PaginateQuery
}

// Repository persists per-user alert records. EvictOldest enforces the
// retention cap; the use case serializes Insert and EvictOldest per user.
type Repository interface {
	Insert(ctx context.Context, rec model.AlertRecord) error
	Get(ctx context.Context, id string) (model.AlertRecord, error)
	List(ctx context.Context, opts ListOptions) ([]model.AlertRecord, paginator.Paginator, error)

	// EvictOldest deletes the user's oldest records so at most keep remain.
	EvictOldest(ctx context.Context, userID string, keep int) error

	// Acknowledge marks the record acknowledged if it is not already,
	// reporting whether the call changed it.
	Acknowledge(ctx context.Context, id string, at time.Time) (bool, error)

	// AcknowledgeAll acknowledges every unacknowledged record of the user
	// and returns the number changed.
	AcknowledgeAll(ctx context.Context, userID string, at time.Time) (int64, error)
}
