package postgres

import (
	"context"
	"database/sql"

	"secops-console/internal/identity"
	"secops-console/internal/model"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
)

const userColumns = `id, username, email, role, is_active, created_at, updated_at, deleted_at`

func (r *implRepository) GetOne(ctx context.Context, opts identity.GetOneOptions) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL`
	var args []any
	switch {
	case opts.ID != "":
		query += ` AND id = $1`
		args = append(args, opts.ID)
	case opts.Username != "":
		query += ` AND username = $1`
		args = append(args, opts.Username)
	default:
		return model.User{}, errors.New("identity: GetOne requires an ID or username")
	}

	usr, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, identity.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.identity.repository.postgres.GetOne: %v", err)
		return model.User{}, errors.Wrap(err, "identity: get one user")
	}

	return usr, nil
}

func (r *implRepository) List(ctx context.Context, opts identity.ListOptions) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL`
	var args []any
	if opts.ActiveOnly {
		query += ` AND is_active = TRUE`
	}
	if len(opts.IDs) > 0 {
		query += ` AND id = ANY($1)`
		args = append(args, pq.Array(opts.IDs))
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.identity.repository.postgres.List: %v", err)
		return nil, errors.Wrap(err, "identity: list users")
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		usr, err := scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.identity.repository.postgres.List.scan: %v", err)
			return nil, errors.Wrap(err, "identity: scan user")
		}
		users = append(users, usr)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "identity: iterate users")
	}

	return users, nil
}

func (r *implRepository) Role(ctx context.Context, userID string) (string, error) {
	var assigned string
	err := r.db.QueryRowContext(ctx,
		`SELECT role FROM users WHERE id = $1 AND deleted_at IS NULL`, userID,
	).Scan(&assigned)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", identity.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.identity.repository.postgres.Role: %v", err)
		return "", errors.Wrap(err, "identity: resolve role")
	}
	return assigned, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var usr model.User
	var deletedAt sql.NullTime
	if err := row.Scan(
		&usr.ID,
		&usr.Username,
		&usr.Email,
		&usr.Role,
		&usr.IsActive,
		&usr.CreatedAt,
		&usr.UpdatedAt,
		&deletedAt,
	); err != nil {
		return model.User{}, err
	}
	if deletedAt.Valid {
		usr.DeletedAt = &deletedAt.Time
	}
	return usr, nil
}
