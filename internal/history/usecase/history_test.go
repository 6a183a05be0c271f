package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"secops-console/internal/audit"
	"secops-console/internal/history"
	"secops-console/internal/history/repository"
	"secops-console/internal/model"
	"secops-console/pkg/paginator"

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

// fakeRepo keeps records in memory with the same eviction and
// acknowledgment semantics as the SQL implementation.
type fakeRepo struct {
	mu      sync.Mutex
	records map[string]*model.AlertRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*model.AlertRecord)}
}

func (f *fakeRepo) Insert(ctx context.Context, rec model.AlertRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := rec
	f.records[rec.ID] = &clone
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (model.AlertRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return model.AlertRecord{}, repository.ErrNotFound
	}
	return *rec, nil
}

func (f *fakeRepo) byUserNewestFirst(userID string) []*model.AlertRecord {
	var out []*model.AlertRecord
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeRepo) List(ctx context.Context, opts repository.ListOptions) ([]model.AlertRecord, paginator.Paginator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.byUserNewestFirst(opts.UserID)
	out := make([]model.AlertRecord, 0, len(all))
	for _, rec := range all {
		out = append(out, *rec)
	}
	return out, paginator.Paginator{Total: int64(len(out)), Count: int64(len(out))}, nil
}

func (f *fakeRepo) EvictOldest(ctx context.Context, userID string, keep int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.byUserNewestFirst(userID)
	for i := keep; i < len(all); i++ {
		delete(f.records, all[i].ID)
	}
	return nil
}

func (f *fakeRepo) Acknowledge(ctx context.Context, id string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok || rec.Acknowledged {
		return false, nil
	}
	rec.Acknowledged = true
	rec.AcknowledgedAt = &at
	return true, nil
}

func (f *fakeRepo) AcknowledgeAll(ctx context.Context, userID string, at time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, rec := range f.records {
		if rec.UserID == userID && !rec.Acknowledged {
			rec.Acknowledged = true
			rec.AcknowledgedAt = &at
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) count(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, rec := range f.records {
		if rec.UserID == userID {
			n++
		}
	}
	return n
}

func record(userID string) model.AlertRecord {
	return model.AlertRecord{
		AlertID:   "a1",
		UserID:    userID,
		Delivered: map[model.Channel]bool{model.ChannelVisual: true},
	}
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	repo := newFakeRepo()
	uc := New(&testLogger{}, repo, &fakeAudit{})

	rec, err := uc.Record(context.Background(), record("u1"))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestRecordEnforcesRetentionCap(t *testing.T) {
	repo := newFakeRepo()
	uc := New(&testLogger{}, repo, &fakeAudit{})
	ctx := context.Background()

	for i := 0; i < history.RetentionCap+25; i++ {
		_, err := uc.Record(ctx, record("u1"))
		require.NoError(t, err)
	}

	assert.Equal(t, history.RetentionCap, repo.count("u1"))
}

func TestRecordCapHoldsUnderConcurrency(t *testing.T) {
	repo := newFakeRepo()
	uc := New(&testLogger{}, repo, &fakeAudit{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < history.RetentionCap+50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Record(ctx, record("u1"))
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, repo.count("u1"), history.RetentionCap)
}

func TestAcknowledgeIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	aud := &fakeAudit{}
	uc := New(&testLogger{}, repo, aud)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", Role: model.RoleViewer}

	rec, err := uc.Record(ctx, record("u1"))
	require.NoError(t, err)

	first, err := uc.Acknowledge(ctx, sc, rec.ID)
	require.NoError(t, err)
	assert.True(t, first.Acknowledged)
	require.NotNil(t, first.AcknowledgedAt)

	second, err := uc.Acknowledge(ctx, sc, rec.ID)
	require.NoError(t, err)
	assert.True(t, second.Acknowledged)
	assert.Equal(t, first.AcknowledgedAt.Unix(), second.AcknowledgedAt.Unix(),
		"repeat acknowledgment must not move the timestamp")

	require.Len(t, aud.entries, 1, "only the first acknowledgment is audited")
	assert.Equal(t, model.AuditActionAcknowledge, aud.entries[0].Action)
}

func TestAcknowledgeOwnershipGate(t *testing.T) {
	repo := newFakeRepo()
	aud := &fakeAudit{}
	uc := New(&testLogger{}, repo, aud)
	ctx := context.Background()

	rec, err := uc.Record(ctx, record("owner"))
	require.NoError(t, err)

	_, err = uc.Acknowledge(ctx, model.Scope{UserID: "intruder", Role: model.RoleAnalyst}, rec.ID)
	assert.ErrorIs(t, err, history.ErrPermissionDenied)
	require.Len(t, aud.entries, 1)
	assert.Equal(t, model.AuditOutcomeDenied, aud.entries[0].Outcome)

	got, err := uc.Acknowledge(ctx, model.Scope{UserID: "root", Role: model.RoleAdmin}, rec.ID)
	require.NoError(t, err, "admins may acknowledge on behalf of any user")
	assert.True(t, got.Acknowledged)
}

func TestAcknowledgeUnknownRecord(t *testing.T) {
	uc := New(&testLogger{}, newFakeRepo(), &fakeAudit{})

	_, err := uc.Acknowledge(context.Background(), model.Scope{UserID: "u1"}, "missing")
	assert.ErrorIs(t, err, history.ErrNotFound)
}

func TestAcknowledgeAllCountsChanges(t *testing.T) {
	repo := newFakeRepo()
	aud := &fakeAudit{}
	uc := New(&testLogger{}, repo, aud)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", Role: model.RoleViewer}

	for i := 0; i < 3; i++ {
		_, err := uc.Record(ctx, record("u1"))
		require.NoError(t, err)
	}
	_, err := uc.Record(ctx, record("u2"))
	require.NoError(t, err)

	count, err := uc.AcknowledgeAll(ctx, sc)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count, "only the caller's records are acknowledged")

	count, err = uc.AcknowledgeAll(ctx, sc)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.Len(t, aud.entries, 2)
	assert.Equal(t, model.AuditActionAcknowledgeAll, aud.entries[0].Action)
}

func TestListReturnsOwnRecordsNewestFirst(t *testing.T) {
	repo := newFakeRepo()
	uc := New(&testLogger{}, repo, &fakeAudit{})
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 3; i++ {
		rec := record("u1")
		rec.ID = string(rune('a' + i))
		rec.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Insert(ctx, rec))
	}

	out, err := uc.List(ctx, model.Scope{UserID: "u1"}, history.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Records, 3)
	assert.Equal(t, "c", out.Records[0].ID)
	assert.Equal(t, "a", out.Records[2].ID)
}
