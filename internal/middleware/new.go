package middleware

import (
	"secops-console/pkg/log"
	"secops-console/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	internalKey string
}

func New(l log.Logger, jwtManager scope.Manager, internalKey string) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		internalKey: internalKey,
	}
}
