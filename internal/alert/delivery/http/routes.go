package http

import (
	"secops-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the internal event ingestion route. The event
// source is another service, so the group is guarded by the shared
// internal key instead of a user token.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	events := r.Group("/events")
	events.Use(mw.InternalAuth())
	{
		events.POST("", h.SubmitEvent)
	}
}
