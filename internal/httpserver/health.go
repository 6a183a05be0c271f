package httpserver

import (
	"secops-console/pkg/errors"
	"secops-console/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall health: both backing stores reachable and
// the audit sink writing. A degraded audit sink fails health but not
// liveness, so orchestrators alert without restarting the process.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed", 503))
		return
	}
	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection failed", 503))
		return
	}

	auditStatus := "ok"
	if !srv.auditUC.Healthy() {
		auditStatus = "degraded"
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "secops-console",
		"version":  "1.0.0",
		"redis":    "connected",
		"database": "connected",
		"audit":    auditStatus,
	})
}

// readyCheck reports whether the engine can accept traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection not available", 503))
		return
	}
	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database not available", 503))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "secops-console",
		"version": "1.0.0",
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "secops-console",
		"version": "1.0.0",
	})
}
