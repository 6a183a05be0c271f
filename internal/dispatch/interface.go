package dispatch

import (
	"context"

	"secops-console/internal/model"
)

// UseCase fans an alert out to its recipients. Dispatch blocks until every
// (recipient, channel) pair has settled; one slow or failing channel never
// short-circuits the others.
type UseCase interface {
	Dispatch(ctx context.Context, alert model.Alert, recipients []model.Recipient) *Report
}
