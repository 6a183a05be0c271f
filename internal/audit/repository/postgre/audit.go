package postgres

import (
	"context"
	"fmt"

	"secops-console/internal/audit/repository"
	"secops-console/internal/model"
	"secops-console/pkg/paginator"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) Insert(ctx context.Context, entry model.AuditEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_entries (id, actor_id, action, target, outcome, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.ActorID, entry.Action, entry.Target, entry.Outcome, entry.Timestamp,
	)
	if err != nil {
		return errors.Wrap(err, "audit: insert entry")
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.AuditEntry, paginator.Paginator, error) {
	where, args := buildFilter(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_entries`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.audit.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "audit: count entries")
	}

	opts.PaginateQuery.Adjust()
	query := `SELECT id, actor_id, action, target, outcome, created_at FROM audit_entries` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.audit.repository.postgres.Get: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "audit: query entries")
	}
	defer rows.Close()

	var entries []model.AuditEntry
	for rows.Next() {
		var e model.AuditEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.Target, &e.Outcome, &e.Timestamp); err != nil {
			r.l.Errorf(ctx, "internal.audit.repository.postgres.Get.scan: %v", err)
			return nil, paginator.Paginator{}, errors.Wrap(err, "audit: scan entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, paginator.Paginator{}, errors.Wrap(err, "audit: iterate entries")
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(entries)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}

	return entries, pag, nil
}

func buildFilter(opts repository.GetOptions) (string, []any) {
	where := ` WHERE 1=1`
	var args []any
	if opts.Filter.ActorID != "" {
		args = append(args, opts.Filter.ActorID)
		where += fmt.Sprintf(` AND actor_id = $%d`, len(args))
	}
	if opts.Filter.Action != "" {
		args = append(args, opts.Filter.Action)
		where += fmt.Sprintf(` AND action = $%d`, len(args))
	}
	if !opts.Filter.Since.IsZero() {
		args = append(args, opts.Filter.Since)
		where += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	return where, args
}
