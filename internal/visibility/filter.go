package visibility

import (
	"context"

	"secops-console/internal/model"
	"secops-console/internal/preference"
	"secops-console/internal/role"
	"secops-console/pkg/log"
)

type implFilter struct {
	l     log.Logger
	roles role.Resolver
	prefs preference.UseCase
}

// New creates the visibility filter over the role resolver and the
// preference store.
func New(l log.Logger, roles role.Resolver, prefs preference.UseCase) Filter {
	return &implFilter{l: l, roles: roles, prefs: prefs}
}

// Recipients applies both gates in order: the role capability check first,
// then the user's own preferences. A user is included only when their role
// may view the alert's category, the alert's severity meets their minimum,
// and at least one channel is enabled.
func (f *implFilter) Recipients(ctx context.Context, alert model.Alert, candidates []model.User) []model.Recipient {
	var recipients []model.Recipient
	for _, user := range candidates {
		assigned := f.roles.Resolve(ctx, user.ID)
		if !role.CanView(assigned, alert.Category) {
			continue
		}

		pref, err := f.prefs.Get(ctx, user.ID)
		if err != nil {
			// Preference lookup failures must not widen visibility, but
			// they also must not silently drop a role-cleared recipient.
			f.l.Errorf(ctx, "internal.visibility.Recipients: %v", err)
			pref = model.DefaultPreference(user.ID)
		}
		if !alert.Severity.AtLeast(pref.MinSeverity) {
			continue
		}
		channels := pref.EnabledChannels()
		if len(channels) == 0 {
			continue
		}

		recipients = append(recipients, model.Recipient{
			User:     user,
			Channels: channels,
		})
	}
	return recipients
}

// CanSee is the role gate alone. Preferences control delivery, not read
// access: a user may always view alerts their role clears, even ones they
// chose not to be notified about.
func (f *implFilter) CanSee(ctx context.Context, userID string, alert model.Alert) bool {
	return role.CanView(f.roles.Resolve(ctx, userID), alert.Category)
}
