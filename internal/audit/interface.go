package audit

import (
	"context"

	"secops-console/internal/model"
)

// UseCase is the append-only audit trail. Log must never fail the caller's
// primary operation; sink failures surface only through Healthy.
type UseCase interface {
	Log(ctx context.Context, entry model.AuditEntry)
	Trail(ctx context.Context, sc model.Scope, ip TrailInput) (TrailOutput, error)
	Healthy() bool
}
