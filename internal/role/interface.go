package role

import "context"

// Source is the single source of truth for role assignments. The engine
// does not cache results across calls.
type Source interface {
	Role(ctx context.Context, userID string) (string, error)
}

// Resolver maps an authenticated user identity to exactly one role and
// exposes the capability check used by the visibility filter.
type Resolver interface {
	Resolve(ctx context.Context, userID string) string
}
