package alert

import (
	"context"

	"secops-console/internal/model"
)

// UseCase runs the dispatch pipeline: classify the raw event, narrow the
// active directory through the visibility filter, fan out, and record the
// outcome in each recipient's history.
type UseCase interface {
	SubmitEvent(ctx context.Context, ip SubmitEventInput) (SubmitEventOutput, error)

	// Classify derives the canonical alert from a raw event without
	// dispatching it.
	Classify(event model.RawEvent) (model.Alert, error)
}
