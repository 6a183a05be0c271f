package identity

import "errors"

var ErrNotFound = errors.New("user not found")
