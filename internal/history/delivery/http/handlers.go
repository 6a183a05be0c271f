package http

import (
	pkgErrors "secops-console/pkg/errors"
	"secops-console/pkg/response"
	"secops-console/pkg/scope"

	"github.com/gin-gonic/gin"
)

// List returns the caller's alert history, newest first.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "history.delivery.http.List: %v", err)
		response.Error(c, pkgErrors.NewValidationError(400, "query", "invalid pagination parameters"))
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListResp(out))
}

// Acknowledge marks one record acknowledged. Repeating the call is a
// no-op; the record comes back unchanged.
func (h *Handler) Acknowledge(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	rec, err := h.uc.Acknowledge(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newAlertRecordResp(rec))
}

// AcknowledgeAll acknowledges every unacknowledged record of the caller.
func (h *Handler) AcknowledgeAll(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	count, err := h.uc.AcknowledgeAll(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, acknowledgeAllResp{Acknowledged: count})
}
