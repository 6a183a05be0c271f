package preference

import "secops-console/internal/model"

// SetInput fully replaces a user's preference record. Every channel must
// be stated explicitly; there is no partial-field merge.
type SetInput struct {
	Channels    map[model.Channel]bool
	MinSeverity model.Severity
}
