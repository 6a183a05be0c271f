package usecase

import (
	"context"
	"sync"

	"secops-console/internal/dispatch"
	"secops-console/internal/model"
)

// rateLimitEndpoint keys dispatch attempts in the shared limiter,
// separate from any HTTP-level limits.
const rateLimitEndpoint = "dispatch"

// Dispatch fans the alert out to every (recipient, channel) pair in its
// own goroutine and joins on all of them. The limiter gates each pair:
// a denied pair settles as rate_limited with no send attempt and no
// retry. Every recipient's outcome is audited once the fan-out settles.
func (uc *implUseCase) Dispatch(ctx context.Context, alert model.Alert, recipients []model.Recipient) *dispatch.Report {
	report := dispatch.NewReport()

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OverallTimeout)
	defer cancel()

	var wg sync.WaitGroup
	attempted := make(map[string]bool, len(recipients))

	for _, rcpt := range recipients {
		for _, ch := range rcpt.Channels {
			if !uc.limiter.Allow(rateLimitEndpoint, rcpt.User.ID, uc.cfg.MaxPerWindow, uc.cfg.Window) {
				report.Record(rcpt.User.ID, ch, model.DeliveryRateLimited)
				uc.l.Warnf(ctx, "internal.dispatch.usecase.Dispatch: rate limited user %s channel %s for alert %s",
					rcpt.User.ID, ch, alert.ID)
				continue
			}
			attempted[rcpt.User.ID] = true

			wg.Add(1)
			go func(user model.User, ch model.Channel) {
				defer wg.Done()
				report.Record(user.ID, ch, uc.send(ctx, alert, user, ch))
			}(rcpt.User, ch)
		}
	}

	wg.Wait()

	for _, rcpt := range recipients {
		outcome := model.AuditOutcomeOK
		if !attempted[rcpt.User.ID] {
			// Every channel for this recipient was rate limited.
			outcome = model.AuditOutcomeDenied
		}
		uc.audit.Log(ctx, model.AuditEntry{
			ActorID: rcpt.User.ID,
			Action:  model.AuditActionDispatch,
			Target:  alert.ID,
			Outcome: outcome,
		})
	}

	return report
}
