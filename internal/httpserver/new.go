package httpserver

import (
	"database/sql"
	"errors"

	"secops-console/internal/alert"
	"secops-console/internal/audit"
	"secops-console/internal/history"
	"secops-console/internal/preference"
	"secops-console/pkg/log"
	pkgRedis "secops-console/pkg/redis"
	"secops-console/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer holds the wired engine. New() only validates dependencies;
// Run() (in httpserver.go) starts serving.
type HTTPServer struct {
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	// Domain use cases
	alertUC      alert.UseCase
	preferenceUC preference.UseCase
	historyUC    history.UseCase
	auditUC      audit.UseCase

	// Auth & security
	jwtMgr      scope.Manager
	internalKey string

	// External services
	redis pkgRedis.IRedis
	db    *sql.DB
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port        int
	Environment string

	AlertUC      alert.UseCase
	PreferenceUC preference.UseCase
	HistoryUC    history.UseCase
	AuditUC      audit.UseCase

	JWTManager  scope.Manager
	InternalKey string

	Redis pkgRedis.IRedis
	DB    *sql.DB
}

// New creates a new HTTPServer instance with the provided configuration.
// It does not start any goroutines; use Run() to start serving.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		alertUC:      cfg.AlertUC,
		preferenceUC: cfg.PreferenceUC,
		historyUC:    cfg.HistoryUC,
		auditUC:      cfg.AuditUC,

		jwtMgr:      cfg.JWTManager,
		internalKey: cfg.InternalKey,

		redis: cfg.Redis,
		db:    cfg.DB,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.alertUC == nil || s.preferenceUC == nil || s.historyUC == nil || s.auditUC == nil {
		return errors.New("all domain use cases are required")
	}
	if s.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if s.internalKey == "" {
		return errors.New("internal key is required")
	}
	if s.redis == nil {
		return errors.New("Redis client is required")
	}
	if s.db == nil {
		return errors.New("database handle is required")
	}
	return nil
}
