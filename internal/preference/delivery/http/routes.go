package http

import (
	"secops-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the preference routes. Users manage only their
// own record, so everything lives under /preferences/me.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	prefs := r.Group("/preferences")
	prefs.Use(mw.Auth())
	{
		prefs.GET("/me", h.GetMine)
		prefs.PUT("/me", h.SetMine)
	}
}
