package role

import (
	"context"
	"errors"
	"testing"

	"secops-console/internal/model"

	"github.com/stretchr/testify/assert"
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

type stubSource struct {
	roles map[string]string
	err   error
}

func (s *stubSource) Role(ctx context.Context, userID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	r, ok := s.roles[userID]
	if !ok {
		return "", ErrNotFound
	}
	return r, nil
}

func TestResolveKnownRole(t *testing.T) {
	r := New(&testLogger{}, &stubSource{roles: map[string]string{"u1": model.RoleAnalyst}})
	assert.Equal(t, model.RoleAnalyst, r.Resolve(context.Background(), "u1"))
}

func TestResolveMissingAssignmentDefaultsToViewer(t *testing.T) {
	r := New(&testLogger{}, &stubSource{roles: map[string]string{}})
	assert.Equal(t, model.RoleViewer, r.Resolve(context.Background(), "ghost"))
}

func TestResolveSourceFailureDefaultsToViewer(t *testing.T) {
	r := New(&testLogger{}, &stubSource{err: errors.New("identity store down")})
	assert.Equal(t, model.RoleViewer, r.Resolve(context.Background(), "u1"))
}

func TestResolveUnknownRoleValueDefaultsToViewer(t *testing.T) {
	r := New(&testLogger{}, &stubSource{roles: map[string]string{"u1": "SUPERUSER"}})
	assert.Equal(t, model.RoleViewer, r.Resolve(context.Background(), "u1"))
}

func TestCanViewTableIsTotal(t *testing.T) {
	roles := []string{model.RoleAdmin, model.RoleAnalyst, model.RoleViewer}
	for _, role := range roles {
		for _, cat := range model.KnownCategories() {
			// Must not panic and must return a defined answer for every pair.
			_ = CanView(role, cat)
		}
	}
}

func TestCanViewCapabilities(t *testing.T) {
	assert.True(t, CanView(model.RoleAdmin, model.CategorySecurity))
	assert.True(t, CanView(model.RoleAnalyst, model.CategorySecurity))
	assert.False(t, CanView(model.RoleViewer, model.CategorySecurity))

	assert.True(t, CanView(model.RoleViewer, model.CategoryInformational))
	assert.False(t, CanView(model.RoleViewer, model.CategoryIdentity))
	assert.False(t, CanView(model.RoleViewer, model.CategoryCompliance))

	// Unknown role sees nothing.
	assert.False(t, CanView("SUPERUSER", model.CategoryInformational))
}

func TestCanViewAudit(t *testing.T) {
	assert.True(t, CanViewAudit(model.RoleAdmin))
	assert.False(t, CanViewAudit(model.RoleAnalyst))
	assert.False(t, CanViewAudit(model.RoleViewer))
}
