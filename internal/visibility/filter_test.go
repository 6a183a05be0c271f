package visibility

import (
	"context"
	"testing"

	"secops-console/internal/model"
	"secops-console/internal/preference"
	"secops-console/internal/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type fakeRoleSource struct {
	roles map[string]string
}

func (f *fakeRoleSource) Role(ctx context.Context, userID string) (string, error) {
	r, ok := f.roles[userID]
	if !ok {
		return "", role.ErrNotFound
	}
	return r, nil
}

type fakePrefs struct {
	prefs map[string]model.AlertPreference
}

func (f *fakePrefs) Get(ctx context.Context, userID string) (model.AlertPreference, error) {
	if p, ok := f.prefs[userID]; ok {
		return p, nil
	}
	return model.DefaultPreference(userID), nil
}

func (f *fakePrefs) Set(ctx context.Context, sc model.Scope, ip preference.SetInput) (model.AlertPreference, error) {
	panic("not used")
}

func newFilter(roles map[string]string, prefs map[string]model.AlertPreference) Filter {
	l := &testLogger{}
	return New(l, role.New(l, &fakeRoleSource{roles: roles}), &fakePrefs{prefs: prefs})
}

func securityAlert(sev model.Severity) model.Alert {
	return model.Alert{
		ID:       "a1",
		Category: model.CategorySecurity,
		Severity: sev,
	}
}

func TestRecipientsRoleGate(t *testing.T) {
	f := newFilter(map[string]string{
		"admin":   model.RoleAdmin,
		"analyst": model.RoleAnalyst,
		"viewer":  model.RoleViewer,
	}, nil)

	got := f.Recipients(context.Background(), securityAlert(model.SeverityHigh), []model.User{
		{ID: "admin"}, {ID: "analyst"}, {ID: "viewer"},
	})

	require.Len(t, got, 2, "viewer must not receive security alerts")
	assert.Equal(t, "admin", got[0].User.ID)
	assert.Equal(t, "analyst", got[1].User.ID)
}

func TestRecipientsUnknownUserDefaultsToViewer(t *testing.T) {
	f := newFilter(map[string]string{}, nil)

	got := f.Recipients(context.Background(), securityAlert(model.SeverityCritical), []model.User{{ID: "ghost"}})
	assert.Empty(t, got, "unassigned users fall back to viewer and lose security alerts")

	info := model.Alert{ID: "a2", Category: model.CategoryInformational, Severity: model.SeverityLow}
	got = f.Recipients(context.Background(), info, []model.User{{ID: "ghost"}})
	require.Len(t, got, 1, "viewer default still receives informational alerts")
}

func TestRecipientsSeverityThreshold(t *testing.T) {
	prefs := map[string]model.AlertPreference{
		"analyst": {
			UserID:      "analyst",
			Channels:    map[model.Channel]bool{model.ChannelVisual: true},
			MinSeverity: model.SeverityHigh,
		},
	}
	f := newFilter(map[string]string{"analyst": model.RoleAnalyst}, prefs)

	got := f.Recipients(context.Background(), securityAlert(model.SeverityMedium), []model.User{{ID: "analyst"}})
	assert.Empty(t, got, "medium must be suppressed by a high threshold")

	got = f.Recipients(context.Background(), securityAlert(model.SeverityHigh), []model.User{{ID: "analyst"}})
	require.Len(t, got, 1)
	assert.Equal(t, []model.Channel{model.ChannelVisual}, got[0].Channels)
}

func TestRecipientsAllChannelsDisabled(t *testing.T) {
	prefs := map[string]model.AlertPreference{
		"admin": {
			UserID:      "admin",
			Channels:    map[model.Channel]bool{},
			MinSeverity: model.SeverityLow,
		},
	}
	f := newFilter(map[string]string{"admin": model.RoleAdmin}, prefs)

	got := f.Recipients(context.Background(), securityAlert(model.SeverityCritical), []model.User{{ID: "admin"}})
	assert.Empty(t, got, "a recipient with no enabled channel is excluded")
}

func TestCanSeeIgnoresPreferences(t *testing.T) {
	prefs := map[string]model.AlertPreference{
		"analyst": {
			UserID:      "analyst",
			Channels:    map[model.Channel]bool{},
			MinSeverity: model.SeverityCritical,
		},
	}
	f := newFilter(map[string]string{
		"analyst": model.RoleAnalyst,
		"viewer":  model.RoleViewer,
	}, prefs)
	ctx := context.Background()

	alert := securityAlert(model.SeverityLow)
	assert.True(t, f.CanSee(ctx, "analyst", alert), "preferences gate delivery, not read access")
	assert.False(t, f.CanSee(ctx, "viewer", alert))
}
