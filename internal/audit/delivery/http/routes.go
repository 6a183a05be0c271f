package http

import (
	"secops-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the audit trail route. The admin-only check lives
// in the use case so it also guards any non-HTTP caller.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	audit := r.Group("/audit")
	audit.Use(mw.Auth())
	{
		audit.GET("", h.Trail)
	}
}
