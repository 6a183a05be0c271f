package usecase

import (
	"context"
	"sync"
	"testing"

	"secops-console/internal/audit"
	"secops-console/internal/model"
	"secops-console/internal/preference"
	"secops-console/internal/preference/repository"

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

type fakeRepo struct {
	mu    sync.Mutex
	prefs map[string]model.AlertPreference
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{prefs: make(map[string]model.AlertPreference)}
}

func (f *fakeRepo) Get(ctx context.Context, userID string) (model.AlertPreference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pref, ok := f.prefs[userID]
	if !ok {
		return model.AlertPreference{}, repository.ErrNotFound
	}
	return pref, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, pref model.AlertPreference) (model.AlertPreference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs[pref.UserID] = pref
	return pref, nil
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []model.AuditEntry
}

func (f *fakeAudit) Log(ctx context.Context, entry model.AuditEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
}

func (f *fakeAudit) Trail(ctx context.Context, sc model.Scope, ip audit.TrailInput) (audit.TrailOutput, error) {
	panic("not used")
}

func (f *fakeAudit) Healthy() bool { return true }

func TestGetReturnsDefaultWhenUnset(t *testing.T) {
	uc := New(&testLogger{}, newFakeRepo(), &fakeAudit{})

	pref, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", pref.UserID)
	assert.Equal(t, model.SeverityLow, pref.MinSeverity)
	for _, ch := range model.AllChannels() {
		assert.True(t, pref.Channels[ch], "default must enable channel %s", ch)
	}
}

func TestSetReplacesWholeRecord(t *testing.T) {
	repo := newFakeRepo()
	aud := &fakeAudit{}
	uc := New(&testLogger{}, repo, aud)
	sc := model.Scope{UserID: "u1", Role: model.RoleAnalyst}

	_, err := uc.Set(context.Background(), sc, preference.SetInput{
		Channels:    map[model.Channel]bool{model.ChannelPush: true},
		MinSeverity: model.SeverityHigh,
	})
	require.NoError(t, err)

	pref, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, pref.Channels[model.ChannelPush])
	assert.False(t, pref.Channels[model.ChannelSound], "unstated channels are disabled, not merged")
	assert.False(t, pref.Channels[model.ChannelEmail])
	assert.Equal(t, model.SeverityHigh, pref.MinSeverity)
}

func TestSetRejectsInvalidInput(t *testing.T) {
	uc := New(&testLogger{}, newFakeRepo(), &fakeAudit{})
	sc := model.Scope{UserID: "u1", Role: model.RoleViewer}

	_, err := uc.Set(context.Background(), sc, preference.SetInput{
		Channels:    map[model.Channel]bool{model.Channel("pager"): true},
		MinSeverity: model.SeverityLow,
	})
	assert.ErrorIs(t, err, preference.ErrInvalidChannel)

	_, err = uc.Set(context.Background(), sc, preference.SetInput{
		Channels:    map[model.Channel]bool{model.ChannelSound: true},
		MinSeverity: model.Severity("urgent"),
	})
	assert.ErrorIs(t, err, preference.ErrInvalidSeverity)
}

func TestSetAuditsChange(t *testing.T) {
	aud := &fakeAudit{}
	uc := New(&testLogger{}, newFakeRepo(), aud)
	sc := model.Scope{UserID: "u1", Role: model.RoleViewer}

	_, err := uc.Set(context.Background(), sc, preference.SetInput{
		Channels:    map[model.Channel]bool{model.ChannelVisual: true},
		MinSeverity: model.SeverityMedium,
	})
	require.NoError(t, err)

	require.Len(t, aud.entries, 1)
	assert.Equal(t, model.AuditActionPreferenceChange, aud.entries[0].Action)
	assert.Equal(t, "u1", aud.entries[0].ActorID)
	assert.Equal(t, model.AuditOutcomeOK, aud.entries[0].Outcome)
}
