package http

import (
	"secops-console/internal/alert"
	"secops-console/pkg/log"
)

type Handler struct {
	uc alert.UseCase
	l  log.Logger
}

func New(l log.Logger, uc alert.UseCase) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
