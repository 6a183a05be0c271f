package http

import (
	"secops-console/internal/preference"
	"secops-console/pkg/log"
)

type Handler struct {
	uc preference.UseCase
	l  log.Logger
}

func New(l log.Logger, uc preference.UseCase) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
	}
}
