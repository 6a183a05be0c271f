package visibility

import (
	"context"

	"secops-console/internal/model"
)

// Filter decides which users may receive a given alert. It is the single
// policy chokepoint for alert visibility: dispatch, history reads, and the
// HTTP layer all defer to it rather than re-deriving the rules.
type Filter interface {
	// Recipients narrows the candidate users to those allowed to receive
	// the alert, paired with the channels their preferences enable.
	Recipients(ctx context.Context, alert model.Alert, candidates []model.User) []model.Recipient

	// CanSee reports whether a single user may view the alert at all,
	// independent of channel preferences. Used for history reads.
	CanSee(ctx context.Context, userID string, alert model.Alert) bool
}
