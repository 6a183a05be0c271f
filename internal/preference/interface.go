package preference

import (
	"context"

	"secops-console/internal/model"
)

// UseCase manages per-user alert preferences. Get never fails on a missing
// record: it falls back to the documented default.
type UseCase interface {
	Get(ctx context.Context, userID string) (model.AlertPreference, error)
	Set(ctx context.Context, sc model.Scope, ip SetInput) (model.AlertPreference, error)
}
