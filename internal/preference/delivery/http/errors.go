package http

import (
	"net/http"

	"secops-console/internal/preference"
	pkgErrors "secops-console/pkg/errors"
	"secops-console/pkg/response"
)

var errorMapping = response.ErrorMapping{
	preference.ErrInvalidChannel:  pkgErrors.NewHTTPError(400, "unknown delivery channel", http.StatusBadRequest),
	preference.ErrInvalidSeverity: pkgErrors.NewHTTPError(400, "unknown minimum severity", http.StatusBadRequest),
}
