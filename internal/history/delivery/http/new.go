package http

import (
	"secops-console/internal/history"
	"secops-console/pkg/log"
)

type Handler struct {
	uc history.UseCase
	l  log.Logger
}

func New(l log.Logger, uc history.UseCase) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
