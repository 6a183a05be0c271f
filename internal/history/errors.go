package history

import "errors"

var (
	ErrNotFound         = errors.New("alert record not found")
	ErrPermissionDenied = errors.New("permission denied")
)
