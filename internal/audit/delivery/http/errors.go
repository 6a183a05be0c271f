package http

import (
	"secops-console/internal/audit"
	pkgErrors "secops-console/pkg/errors"
	"secops-console/pkg/response"
)

var errorMapping = response.ErrorMapping{
	audit.ErrPermissionDenied: pkgErrors.NewForbiddenHTTPError(),
}
