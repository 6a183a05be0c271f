package repository

import (
	"context"
	"errors"

	"secops-console/internal/model"
)

// ErrNotFound is returned when a user has no stored preference record.
var ErrNotFound = errors.New("preference not found")

// Repository persists the singleton per-user preference record.
type Repository interface {
	Get(ctx context.Context, userID string) (model.AlertPreference, error)
	Upsert(ctx context.Context, pref model.AlertPreference) (model.AlertPreference, error)
}
