package http

import (
	pkgErrors "secops-console/pkg/errors"
	"secops-console/pkg/response"

	"github.com/gin-gonic/gin"
)

// SubmitEvent ingests one raw security event and runs the dispatch
// pipeline synchronously. The response reports how many recipients the
// resulting alert reached.
func (h *Handler) SubmitEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req submitEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "alert.delivery.http.SubmitEvent: %v", err)
		response.Error(c, pkgErrors.NewValidationError(400, "body", "invalid JSON payload"))
		return
	}

	out, err := h.uc.SubmitEvent(ctx, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newSubmitEventResp(out))
}
