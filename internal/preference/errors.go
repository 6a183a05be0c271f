package preference

import "errors"

var (
	ErrInvalidChannel  = errors.New("invalid channel")
	ErrInvalidSeverity = errors.New("invalid minimum severity")
)
