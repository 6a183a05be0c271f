package http

import (
	pkgErrors "secops-console/pkg/errors"
	"secops-console/pkg/response"
	"secops-console/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Trail returns one page of the audit trail, newest first. Admin only;
// denied attempts are themselves audited.
func (h *Handler) Trail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req trailReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "audit.delivery.http.Trail: %v", err)
		response.Error(c, pkgErrors.NewValidationError(400, "query", "invalid query parameters"))
		return
	}

	out, err := h.uc.Trail(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newTrailResp(out))
}
