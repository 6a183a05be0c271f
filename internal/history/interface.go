package history

import (
	"context"

	"secops-console/internal/model"
)

// UseCase is the per-user dispatch history: bounded retention, newest-first
// reads, idempotent acknowledgment.
type UseCase interface {
	// Record appends one dispatch outcome to the user's history and
	// evicts the oldest records past the retention cap. Inserts for the
	// same user are serialized so the cap holds under concurrent
	// dispatches.
	Record(ctx context.Context, rec model.AlertRecord) (model.AlertRecord, error)

	// Acknowledge marks one record acknowledged. Only the owner or an
	// admin may acknowledge; repeating the call is a no-op that returns
	// the already-acknowledged record.
	Acknowledge(ctx context.Context, sc model.Scope, recordID string) (model.AlertRecord, error)

	// AcknowledgeAll acknowledges every unacknowledged record of the
	// calling user and returns how many changed.
	AcknowledgeAll(ctx context.Context, sc model.Scope) (int64, error)

	// List returns the calling user's records newest first.
	List(ctx context.Context, sc model.Scope, ip ListInput) (ListOutput, error)
}
