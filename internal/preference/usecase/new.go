package usecase

import (
	"time"

	"secops-console/internal/audit"
	"secops-console/internal/preference"
	"secops-console/internal/preference/repository"
	pkgLog "secops-console/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	audit audit.UseCase
	clock func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, auditUC audit.UseCase) preference.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		audit: auditUC,
		clock: time.Now,
	}
}
