package mailer

import (
	"context"

	"secops-console/pkg/log"
)

// IMailer sends alert emails through the configured SMTP relay.
type IMailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// New creates a mailer for the given SMTP configuration.
func New(l log.Logger, cfg Config) (IMailer, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.From == "" {
		return nil, ErrFromRequired
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return &implMailer{l: l, cfg: cfg}, nil
}
