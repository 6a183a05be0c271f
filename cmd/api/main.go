package main

import (
	"context"
	"fmt"

	"secops-console/config"
	"secops-console/config/postgre"
	configRedis "secops-console/config/redis"
	alertUC "secops-console/internal/alert/usecase"
	auditPostgres "secops-console/internal/audit/repository/postgre"
	auditUC "secops-console/internal/audit/usecase"
	"secops-console/internal/dispatch"
	dispatchUC "secops-console/internal/dispatch/usecase"
	historyPostgres "secops-console/internal/history/repository/postgre"
	historyUC "secops-console/internal/history/usecase"
	"secops-console/internal/httpserver"
	"secops-console/internal/identity"
	identityPostgres "secops-console/internal/identity/repository/postgre"
	preferencePostgres "secops-console/internal/preference/repository/postgre"
	preferenceUC "secops-console/internal/preference/usecase"
	"secops-console/internal/ratelimit"
	"secops-console/internal/role"
	"secops-console/internal/visibility"
	"secops-console/pkg/log"
	"secops-console/pkg/mailer"
	"secops-console/pkg/push"
	"secops-console/pkg/scope"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Storage
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Outbound transports
	pushClient, err := push.New(logger, push.Config{
		Endpoint: cfg.Push.Endpoint,
		APIKey:   cfg.Push.APIKey,
		Timeout:  cfg.Push.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize push client: ", err)
		return
	}
	defer pushClient.Close()

	mailerClient, err := mailer.New(logger, mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize mailer: ", err)
		return
	}

	// Repositories
	userRepo := identityPostgres.New(logger, postgresDB)
	preferenceRepo := preferencePostgres.New(logger, postgresDB)
	historyRepo := historyPostgres.New(logger, postgresDB)
	auditRepo := auditPostgres.New(logger, postgresDB)

	// Domain use cases
	auditUseCase := auditUC.New(logger, auditRepo)
	preferenceUseCase := preferenceUC.New(logger, preferenceRepo, auditUseCase)
	historyUseCase := historyUC.New(logger, historyRepo, auditUseCase)

	roleResolver := role.New(logger, identity.NewRoleSource(userRepo))
	visibilityFilter := visibility.New(logger, roleResolver, preferenceUseCase)

	dispatchCfg := dispatch.DefaultConfig()
	if cfg.Dispatch.MaxPerWindow > 0 {
		dispatchCfg.MaxPerWindow = cfg.Dispatch.MaxPerWindow
	}
	if cfg.Dispatch.Window > 0 {
		dispatchCfg.Window = cfg.Dispatch.Window
	}
	if cfg.Dispatch.PerSendTimeout > 0 {
		dispatchCfg.PerSendTimeout = cfg.Dispatch.PerSendTimeout
	}
	if cfg.Dispatch.OverallTimeout > 0 {
		dispatchCfg.OverallTimeout = cfg.Dispatch.OverallTimeout
	}
	dispatcher := dispatchUC.New(logger, dispatchCfg, ratelimit.New(), redisClient, pushClient, mailerClient, auditUseCase)

	alertUseCase := alertUC.New(logger, userRepo, visibilityFilter, dispatcher, historyUseCase)

	// HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.Server.Port,
		Environment: cfg.Environment.Name,

		AlertUC:      alertUseCase,
		PreferenceUC: preferenceUseCase,
		HistoryUC:    historyUseCase,
		AuditUC:      auditUseCase,

		JWTManager:  scope.New(cfg.JWT.SecretKey),
		InternalKey: cfg.Internal.APIKey,

		Redis: redisClient,
		DB:    postgresDB,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
