package push

import (
	"context"

	"secops-console/pkg/log"
)

// IPush delivers alert notifications to the mobile push gateway.
type IPush interface {
	SendPush(ctx context.Context, userID string, n Notification) error
	Healthy() bool
	Close() error
}

// New creates a push client for the given webhook endpoint.
func New(l log.Logger, cfg Config) (IPush, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return newImpl(l, cfg), nil
}
