package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"secops-console/pkg/log"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

type implMailer struct {
	l   log.Logger
	cfg Config
}

// SendEmail submits one message to the relay. The SMTP dialog itself has no
// context support, so it runs in a goroutine and the call returns early on
// context cancellation; the dispatcher counts that as a failed attempt.
func (m *implMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := m.buildMessage(to, subject, body)

	done := make(chan error, 1)
	go func() {
		done <- m.submit(to, msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("mailer: send to %s: %w", to, ctx.Err())
	}
}

func (m *implMailer) submit(to, msg string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth sasl.Client
	if m.cfg.Username != "" {
		auth = sasl.NewPlainClient("", m.cfg.Username, m.cfg.Password)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, strings.NewReader(msg)); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}

func (m *implMailer) buildMessage(to, subject, body string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.From))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")
	return sb.String()
}
