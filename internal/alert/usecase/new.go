package usecase

import (
	"time"

	"secops-console/internal/alert"
	"secops-console/internal/dispatch"
	"secops-console/internal/history"
	"secops-console/internal/identity"
	"secops-console/internal/visibility"
	pkgLog "secops-console/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	users      identity.Repository
	visibility visibility.Filter
	dispatcher dispatch.UseCase
	history    history.UseCase
	clock      func() time.Time
}

func New(
	l pkgLog.Logger,
	users identity.Repository,
	vis visibility.Filter,
	dispatcher dispatch.UseCase,
	historyUC history.UseCase,
) alert.UseCase {
	return &implUseCase{
		l:          l,
		users:      users,
		visibility: vis,
		dispatcher: dispatcher,
		history:    historyUC,
		clock:      time.Now,
	}
}
