package identity

import (
	"context"

	"secops-console/internal/model"
)

// Repository reads the identity directory. The engine only consumes
// identity data; provisioning happens elsewhere in the console.
type Repository interface {
	GetOne(ctx context.Context, opts GetOneOptions) (model.User, error)
	List(ctx context.Context, opts ListOptions) ([]model.User, error)
	Role(ctx context.Context, userID string) (string, error)
}

// GetOneOptions selects a single user by ID or username.
type GetOneOptions struct {
	ID       string
	Username string
}

// ListOptions filters the directory listing.
type ListOptions struct {
	ActiveOnly bool
	IDs        []string
}
