package audit

import "errors"

var ErrPermissionDenied = errors.New("audit trail access denied")
