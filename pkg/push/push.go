package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"secops-console/pkg/log"

	"github.com/sony/gobreaker"
)

type implPush struct {
	l       log.Logger
	cfg     Config
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func newImpl(l log.Logger, cfg Config) *implPush {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "push-gateway",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &implPush{
		l:       l,
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: breaker,
	}
}

// SendPush posts one notification to the gateway. A tripped breaker fails
// fast without touching the network; the dispatcher treats that the same
// as any other transport failure.
func (p *implPush) SendPush(ctx context.Context, userID string, n Notification) error {
	_, err := p.breaker.Execute(func() (any, error) {
		return nil, p.post(ctx, userID, n)
	})
	return err
}

func (p *implPush) post(ctx context.Context, userID string, n Notification) error {
	body, err := json.Marshal(pushRequest{UserID: userID, Notification: n})
	if err != nil {
		return fmt.Errorf("push: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("push: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("push: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode)
	}
	return nil
}

// Healthy reports whether the breaker currently admits requests.
func (p *implPush) Healthy() bool {
	return p.breaker.State() != gobreaker.StateOpen
}

// Close releases idle connections.
func (p *implPush) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
