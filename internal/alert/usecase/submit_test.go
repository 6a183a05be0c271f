package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"secops-console/internal/alert"
	"secops-console/internal/audit"
	"secops-console/internal/dispatch"
	dispatchUC "secops-console/internal/dispatch/usecase"
	historyRepo "secops-console/internal/history/repository"
	historyUC "secops-console/internal/history/usecase"
	"secops-console/internal/identity"
	"secops-console/internal/model"
	"secops-console/internal/preference"
	"secops-console/internal/ratelimit"
	"secops-console/internal/role"
	"secops-console/internal/visibility"
	pkgErrors "secops-console/pkg/errors"
	"secops-console/pkg/paginator"
	"secops-console/pkg/push"

	goredis "github.com/redis/go-redis/v9"
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

type fakeDirectory struct {
	users []model.User
	roles map[string]string
}

func (f *fakeDirectory) GetOne(ctx context.Context, opts identity.GetOneOptions) (model.User, error) {
	for _, u := range f.users {
		if u.ID == opts.ID || (opts.Username != "" && u.Username == opts.Username) {
			return u, nil
		}
	}
	return model.User{}, identity.ErrNotFound
}

func (f *fakeDirectory) List(ctx context.Context, opts identity.ListOptions) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeDirectory) Role(ctx context.Context, userID string) (string, error) {
	r, ok := f.roles[userID]
	if !ok {
		return "", identity.ErrNotFound
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

type fakeRedis struct{}

func (f *fakeRedis) Publish(ctx context.Context, channel string, payload any) error { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error                                 { return nil }
func (f *fakeRedis) Close() error                                                   { return nil }
func (f *fakeRedis) GetClient() *goredis.Client                                     { return nil }

type fakePush struct{}

func (f *fakePush) SendPush(ctx context.Context, userID string, n push.Notification) error {
	return nil
}
func (f *fakePush) Healthy() bool { return true }
func (f *fakePush) Close() error  { return nil }

type fakeMailer struct{}

func (f *fakeMailer) SendEmail(ctx context.Context, to, subject, body string) error { return nil }

type fakeAudit struct{}

func (f *fakeAudit) Log(ctx context.Context, entry model.AuditEntry) {}
func (f *fakeAudit) Trail(ctx context.Context, sc model.Scope, ip audit.TrailInput) (audit.TrailOutput, error) {
	panic("not used")
}
func (f *fakeAudit) Healthy() bool { return true }

type memHistoryRepo struct {
	mu      sync.Mutex
	records []model.AlertRecord
}

func (f *memHistoryRepo) Insert(ctx context.Context, rec model.AlertRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return nil
}

func (f *memHistoryRepo) Get(ctx context.Context, id string) (model.AlertRecord, error) {
	panic("not used")
}

func (f *memHistoryRepo) List(ctx context.Context, opts historyRepo.ListOptions) ([]model.AlertRecord, paginator.Paginator, error) {
	panic("not used")
}

func (f *memHistoryRepo) EvictOldest(ctx context.Context, userID string, keep int) error { return nil }

func (f *memHistoryRepo) Acknowledge(ctx context.Context, id string, at time.Time) (bool, error) {
	panic("not used")
}

func (f *memHistoryRepo) AcknowledgeAll(ctx context.Context, userID string, at time.Time) (int64, error) {
	panic("not used")
}

func (f *memHistoryRepo) forUser(userID string) []model.AlertRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AlertRecord
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out
}

// newPipeline wires the full chain with in-memory fakes at the edges only:
// classification, visibility, dispatch, and history all run for real.
func newPipeline(dir *fakeDirectory, prefs map[string]model.AlertPreference) (alert.UseCase, *memHistoryRepo) {
	l := &testLogger{}
	resolver := role.New(l, identity.NewRoleSource(dir))
	vis := visibility.New(l, resolver, &fakePrefs{prefs: prefs})

	cfg := dispatch.DefaultConfig()
	cfg.RetryBackoff = []time.Duration{time.Millisecond, time.Millisecond}
	dispatcher := dispatchUC.New(l, cfg, ratelimit.New(), &fakeRedis{}, &fakePush{}, &fakeMailer{}, &fakeAudit{})

	histRepo := &memHistoryRepo{}
	hist := historyUC.New(l, histRepo, &fakeAudit{})

	return New(l, dir, vis, dispatcher, hist), histRepo
}

func securityEvent() model.RawEvent {
	return model.RawEvent{
		ID:       "e1",
		Type:     "failed_login_burst",
		Category: model.CategorySecurity,
		Severity: "high",
		Source:   "auth-gateway",
	}
}

func TestSubmitEventRejectsInvalidEvent(t *testing.T) {
	uc, _ := newPipeline(&fakeDirectory{}, nil)

	ev := securityEvent()
	ev.Type = ""
	ev.Severity = "urgent"

	out, err := uc.SubmitEvent(context.Background(), alert.SubmitEventInput{Event: ev})
	require.Error(t, err)
	assert.False(t, out.Accepted)

	var collector *pkgErrors.ValidationErrorCollector
	require.ErrorAs(t, err, &collector)
	assert.Len(t, collector.Errors(), 2)
}

func TestSubmitEventViewerExcludedFromSecurity(t *testing.T) {
	dir := &fakeDirectory{
		users: []model.User{{ID: "v1", Email: "v1@example.com"}},
		roles: map[string]string{"v1": model.RoleViewer},
	}
	uc, hist := newPipeline(dir, nil)

	out, err := uc.SubmitEvent(context.Background(), alert.SubmitEventInput{Event: securityEvent()})
	require.NoError(t, err)
	assert.True(t, out.Accepted, "an event with no eligible recipients is still accepted")
	assert.Equal(t, 0, out.Recipients)
	assert.Empty(t, hist.forUser("v1"), "no history record without delivery eligibility")
}

func TestSubmitEventAnalystReceivesAllChannels(t *testing.T) {
	dir := &fakeDirectory{
		users: []model.User{{ID: "an1", Email: "an1@example.com"}},
		roles: map[string]string{"an1": model.RoleAnalyst},
	}
	uc, hist := newPipeline(dir, nil)

	out, err := uc.SubmitEvent(context.Background(), alert.SubmitEventInput{Event: securityEvent()})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Recipients)
	assert.NotEmpty(t, out.AlertID)

	records := hist.forUser("an1")
	require.Len(t, records, 1)
	assert.Equal(t, out.AlertID, records[0].AlertID)
	for _, ch := range model.AllChannels() {
		assert.True(t, records[0].Delivered[ch], "default preference delivers on channel %s", ch)
	}
}

func TestSubmitEventMinSeveritySuppresses(t *testing.T) {
	dir := &fakeDirectory{
		users: []model.User{{ID: "an1", Email: "an1@example.com"}},
		roles: map[string]string{"an1": model.RoleAnalyst},
	}
	prefs := map[string]model.AlertPreference{
		"an1": {
			UserID:      "an1",
			Channels:    map[model.Channel]bool{model.ChannelVisual: true},
			MinSeverity: model.SeverityHigh,
		},
	}
	uc, hist := newPipeline(dir, prefs)

	ev := securityEvent()
	ev.Severity = "medium"

	out, err := uc.SubmitEvent(context.Background(), alert.SubmitEventInput{Event: ev})
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.Equal(t, 0, out.Recipients)
	assert.Empty(t, hist.forUser("an1"))
}

func TestClassifyScoresDeterministically(t *testing.T) {
	uc, _ := newPipeline(&fakeDirectory{}, nil)

	a, err := uc.Classify(securityEvent())
	require.NoError(t, err)
	assert.Equal(t, 34, a.PriorityScore, "high severity (3*10) plus security category (4)")
	assert.Equal(t, "e1", a.EventID)
	assert.NotEmpty(t, a.ID)

	b, err := uc.Classify(securityEvent())
	require.NoError(t, err)
	assert.Equal(t, a.PriorityScore, b.PriorityScore)
}
