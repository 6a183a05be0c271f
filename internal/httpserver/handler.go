package httpserver

import (
	alertHTTP "secops-console/internal/alert/delivery/http"
	auditHTTP "secops-console/internal/audit/delivery/http"
	historyHTTP "secops-console/internal/history/delivery/http"
	"secops-console/internal/middleware"
	preferenceHTTP "secops-console/internal/preference/delivery/http"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	mw := middleware.New(srv.logger, srv.jwtMgr, srv.internalKey)

	api := srv.gin.Group(Api)
	preferenceHTTP.New(srv.logger, srv.preferenceUC).RegisterRoutes(api, mw)
	historyHTTP.New(srv.logger, srv.historyUC).RegisterRoutes(api, mw)
	auditHTTP.New(srv.logger, srv.auditUC).RegisterRoutes(api, mw)

	internal := srv.gin.Group(InternalApi)
	alertHTTP.New(srv.logger, srv.alertUC).RegisterRoutes(internal, mw)

	return nil
}
