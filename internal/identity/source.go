package identity

import (
	"context"

	"secops-console/internal/role"
)

// roleSource adapts a Repository to the role.Source contract.
type roleSource struct {
	repo Repository
}

// NewRoleSource exposes the directory as the role resolver's source of truth.
func NewRoleSource(repo Repository) role.Source {
	return &roleSource{repo: repo}
}

func (s *roleSource) Role(ctx context.Context, userID string) (string, error) {
	assigned, err := s.repo.Role(ctx, userID)
	if err != nil {
		if err == ErrNotFound {
			return "", role.ErrNotFound
		}
		return "", err
	}
	return assigned, nil
}
