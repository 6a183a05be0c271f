package usecase

import (
	"context"

	"secops-console/internal/model"
	"secops-console/internal/preference"
	"secops-console/internal/preference/repository"
)

// Get returns the user's preference, or the documented default (all
// channels enabled, minimum severity low) when none is stored.
func (uc *implUseCase) Get(ctx context.Context, userID string) (model.AlertPreference, error) {
	pref, err := uc.repo.Get(ctx, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.DefaultPreference(userID), nil
		}
		uc.l.Errorf(ctx, "internal.preference.usecase.Get: %v", err)
		return model.AlertPreference{}, err
	}
	return pref, nil
}

// Set fully replaces the actor's preference record and audits the change.
// No channel is ever silently force-enabled.
func (uc *implUseCase) Set(ctx context.Context, sc model.Scope, ip preference.SetInput) (model.AlertPreference, error) {
	if !ip.MinSeverity.Valid() {
		return model.AlertPreference{}, preference.ErrInvalidSeverity
	}
	channels := make(map[model.Channel]bool, len(model.AllChannels()))
	for ch, enabled := range ip.Channels {
		if !ch.Valid() {
			return model.AlertPreference{}, preference.ErrInvalidChannel
		}
		channels[ch] = enabled
	}
	// Unstated channels are stored disabled: replacement is total.
	for _, ch := range model.AllChannels() {
		if _, ok := channels[ch]; !ok {
			channels[ch] = false
		}
	}

	pref, err := uc.repo.Upsert(ctx, model.AlertPreference{
		UserID:      sc.UserID,
		Channels:    channels,
		MinSeverity: ip.MinSeverity,
		UpdatedAt:   uc.clock(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.preference.usecase.Set: %v", err)
		return model.AlertPreference{}, err
	}

	uc.audit.Log(ctx, model.AuditEntry{
		ActorID: sc.UserID,
		Action:  model.AuditActionPreferenceChange,
		Target:  sc.UserID,
		Outcome: model.AuditOutcomeOK,
	})

	return pref, nil
}
