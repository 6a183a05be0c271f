package http

import (
	"net/http"

	"secops-console/internal/history"
	pkgErrors "secops-console/pkg/errors"
	"secops-console/pkg/response"
)

var errorMapping = response.ErrorMapping{
	history.ErrNotFound:         pkgErrors.NewHTTPError(404, "alert record not found", http.StatusNotFound),
	history.ErrPermissionDenied: pkgErrors.NewForbiddenHTTPError(),
}
