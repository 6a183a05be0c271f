package http

import (
	pkgErrors "secops-console/pkg/errors"
	"secops-console/pkg/response"
	"secops-console/pkg/scope"

	"github.com/gin-gonic/gin"
)

// GetMine returns the caller's alert preference, falling back to the
// default when none is stored.
func (h *Handler) GetMine(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	pref, err := h.uc.Get(ctx, sc.UserID)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newPreferenceResp(pref))
}

// SetMine fully replaces the caller's alert preference.
func (h *Handler) SetMine(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req setPreferenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "preference.delivery.http.SetMine: %v", err)
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid JSON payload"))
		return
	}

	pref, err := h.uc.Set(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newPreferenceResp(pref))
}
