package role

import "errors"

// ErrNotFound is returned by a Source when a user has no role assignment.
var ErrNotFound = errors.New("role assignment not found")
