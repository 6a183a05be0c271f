package usecase

import (
	"secops-console/internal/audit"
	"secops-console/internal/dispatch"
	"secops-console/internal/ratelimit"
	pkgLog "secops-console/pkg/log"
	"secops-console/pkg/mailer"
	"secops-console/pkg/push"
	"secops-console/pkg/redis"
)

type implUseCase struct {
	l       pkgLog.Logger
	cfg     dispatch.Config
	limiter *ratelimit.Limiter
	redis   redis.IRedis
	push    push.IPush
	mailer  mailer.IMailer
	audit   audit.UseCase
}

func New(
	l pkgLog.Logger,
	cfg dispatch.Config,
	limiter *ratelimit.Limiter,
	redisClient redis.IRedis,
	pushClient push.IPush,
	mailerClient mailer.IMailer,
	auditUC audit.UseCase,
) dispatch.UseCase {
	return &implUseCase{
		l:       l,
		cfg:     cfg,
		limiter: limiter,
		redis:   redisClient,
		push:    pushClient,
		mailer:  mailerClient,
		audit:   auditUC,
	}
}
