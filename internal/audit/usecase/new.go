package usecase

import (
	"sync/atomic"
	"time"

	"secops-console/internal/audit"
	"secops-console/internal/audit/repository"
	pkgLog "secops-console/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock func() time.Time

	// Sink health. Zero value means healthy so a fresh usecase starts clean.
	unhealthy atomic.Bool
	dropped   atomic.Int64
}

func New(l pkgLog.Logger, repo repository.Repository) audit.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		clock: time.Now,
	}
}
