package http

import (
	"secops-console/internal/audit"
	"secops-console/pkg/log"
)

type Handler struct {
	uc audit.UseCase
	l  log.Logger
}

func New(l log.Logger, uc audit.UseCase) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
