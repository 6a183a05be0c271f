package http

import (
	"secops-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the alert history routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts")
	alerts.Use(mw.Auth())
	{
		alerts.GET("", h.List)
		alerts.POST("/acknowledge-all", h.AcknowledgeAll)
		alerts.POST("/:id/acknowledge", h.Acknowledge)
	}
}
