package usecase

import (
	"context"
	"fmt"
	"time"

	"secops-console/internal/model"
	"secops-console/pkg/push"
)

// consoleEvent is the payload published for in-console sound and visual
// notifications. The websocket tier relays it verbatim.
type consoleEvent struct {
	AlertID       string    `json:"alert_id"`
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Severity      string    `json:"severity"`
	PriorityScore int       `json:"priority_score"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}

func (uc *implUseCase) send(ctx context.Context, alert model.Alert, user model.User, ch model.Channel) model.DeliveryStatus {
	switch ch {
	case model.ChannelSound, model.ChannelVisual:
		return uc.publishConsole(ctx, alert, user.ID, ch)
	case model.ChannelPush:
		return uc.sendWithRetry(ctx, func(attemptCtx context.Context) error {
			return uc.push.SendPush(attemptCtx, user.ID, push.Notification{
				AlertID:   alert.ID,
				EventID:   alert.EventID,
				Title:     fmt.Sprintf("[%s] %s", alert.Severity, alert.Type),
				Body:      fmt.Sprintf("%s alert from %s", alert.Category, alert.Source),
				Category:  string(alert.Category),
				Severity:  string(alert.Severity),
				Priority:  alert.PriorityScore,
				CreatedAt: alert.CreatedAt,
			})
		})
	case model.ChannelEmail:
		subject := fmt.Sprintf("Security alert: %s (%s)", alert.Type, alert.Severity)
		body := fmt.Sprintf(
			"Alert %s\nEvent: %s\nType: %s\nCategory: %s\nSeverity: %s\nPriority: %d\nSource: %s\nDetected: %s\n",
			alert.ID, alert.EventID, alert.Type, alert.Category, alert.Severity,
			alert.PriorityScore, alert.Source, alert.CreatedAt.Format(time.RFC3339),
		)
		return uc.sendWithRetry(ctx, func(attemptCtx context.Context) error {
			return uc.mailer.SendEmail(attemptCtx, user.Email, subject, body)
		})
	default:
		uc.l.Warnf(ctx, "internal.dispatch.usecase.send: unknown channel %q", ch)
		return model.DeliveryFailed
	}
}

// publishConsole is fire and forget: sound and visual cues settle as
// delivered once the publish is handed off. A broker error is logged but
// never escalates, so console hiccups cannot hold up push or email.
func (uc *implUseCase) publishConsole(ctx context.Context, alert model.Alert, userID string, ch model.Channel) model.DeliveryStatus {
	topic := fmt.Sprintf("alerts:%s:%s", ch, userID)
	if err := uc.redis.Publish(ctx, topic, consoleEvent{
		AlertID:       alert.ID,
		EventID:       alert.EventID,
		Type:          alert.Type,
		Category:      string(alert.Category),
		Severity:      string(alert.Severity),
		PriorityScore: alert.PriorityScore,
		Source:        alert.Source,
		CreatedAt:     alert.CreatedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.dispatch.usecase.publishConsole: %v", err)
	}
	return model.DeliveryDelivered
}

// sendWithRetry runs one attempt plus one retry per configured backoff.
// Each attempt gets its own timeout; when the dispatch-wide deadline
// expires the pair settles as timed out instead of failed.
func (uc *implUseCase) sendWithRetry(ctx context.Context, send func(context.Context) error) model.DeliveryStatus {
	for attempt := 0; ; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, uc.cfg.PerSendTimeout)
		err := send(attemptCtx)
		cancel()
		if err == nil {
			return model.DeliveryDelivered
		}
		if ctx.Err() != nil {
			return model.DeliveryTimedOut
		}
		if attempt >= len(uc.cfg.RetryBackoff) {
			return model.DeliveryFailed
		}

		select {
		case <-time.After(uc.cfg.RetryBackoff[attempt]):
		case <-ctx.Done():
			return model.DeliveryTimedOut
		}
	}
}
