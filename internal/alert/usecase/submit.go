package usecase

import (
	"context"

	"secops-console/internal/alert"
	"secops-console/internal/identity"
	"secops-console/internal/model"
)

// SubmitEvent runs one event through the whole pipeline. Dispatch blocks
// until every recipient's channels settle, then each recipient gets a
// history record with the channels that actually reached them.
func (uc *implUseCase) SubmitEvent(ctx context.Context, ip alert.SubmitEventInput) (alert.SubmitEventOutput, error) {
	a, err := uc.Classify(ip.Event)
	if err != nil {
		return alert.SubmitEventOutput{Accepted: false, Reason: err.Error()}, err
	}

	candidates, err := uc.users.List(ctx, identity.ListOptions{ActiveOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.SubmitEvent: %v", err)
		return alert.SubmitEventOutput{}, err
	}

	recipients := uc.visibility.Recipients(ctx, a, candidates)
	if len(recipients) == 0 {
		uc.l.Infof(ctx, "alert %s (%s/%s) dispatched to no recipients", a.ID, a.Category, a.Severity)
		return alert.SubmitEventOutput{Accepted: true, AlertID: a.ID, Reason: "no eligible recipients"}, nil
	}

	report := uc.dispatcher.Dispatch(ctx, a, recipients)

	for _, rcpt := range recipients {
		if _, err := uc.history.Record(ctx, model.AlertRecord{
			AlertID:   a.ID,
			UserID:    rcpt.User.ID,
			Delivered: report.DeliveredFor(rcpt.User.ID),
		}); err != nil {
			// Delivery already happened; a failed history write must not
			// fail the submission.
			uc.l.Errorf(ctx, "internal.alert.usecase.SubmitEvent.record: %v", err)
		}
	}

	uc.l.Infof(ctx, "alert %s (%s/%s, priority %d) dispatched to %d recipients",
		a.ID, a.Category, a.Severity, a.PriorityScore, len(recipients))

	return alert.SubmitEventOutput{
		Accepted:   true,
		AlertID:    a.ID,
		Recipients: len(recipients),
	}, nil
}
