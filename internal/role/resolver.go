package role

import (
	"context"

	"secops-console/internal/model"
	"secops-console/pkg/log"
)

type implResolver struct {
	l   log.Logger
	src Source
}

// New creates a Resolver backed by the given identity source.
func New(l log.Logger, src Source) Resolver {
	return &implResolver{l: l, src: src}
}

// Resolve returns the user's role. A missing assignment degrades to
// viewer by policy; it never blocks dispatch.
func (r *implResolver) Resolve(ctx context.Context, userID string) string {
	assigned, err := r.src.Role(ctx, userID)
	if err != nil {
		if err != ErrNotFound {
			r.l.Errorf(ctx, "internal.role.Resolve: %v", err)
		}
		return model.RoleViewer
	}
	if model.RoleRank(assigned) == 0 {
		r.l.Warnf(ctx, "internal.role.Resolve: unknown role %q for user %s, defaulting to viewer", assigned, userID)
		return model.RoleViewer
	}
	return assigned
}

// categoryAccess is the fixed capability table. Admin and analyst see
// every category; viewer sees only informational alerts.
var categoryAccess = map[string]map[model.Category]bool{
	model.RoleAdmin: {
		model.CategorySecurity:      true,
		model.CategoryIdentity:      true,
		model.CategoryCompliance:    true,
		model.CategoryInformational: true,
	},
	model.RoleAnalyst: {
		model.CategorySecurity:      true,
		model.CategoryIdentity:      true,
		model.CategoryCompliance:    true,
		model.CategoryInformational: true,
	},
	model.RoleViewer: {
		model.CategoryInformational: true,
	},
}

// CanView reports whether a role may receive or view alerts of the given
// category. Pure and total over the capability table; safe for
// unsynchronized concurrent use.
func CanView(role string, category model.Category) bool {
	return categoryAccess[role][category]
}

// CanViewAudit reports whether a role may read the audit trail.
func CanViewAudit(role string) bool {
	return role == model.RoleAdmin
}
