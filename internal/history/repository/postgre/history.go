package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"secops-console/internal/history/repository"
	"secops-console/internal/model"
	"secops-console/pkg/paginator"

	"github.com/friendsofgo/errors"
)

const recordColumns = `id, alert_id, user_id, delivered, acknowledged, acknowledged_at, created_at`

func (r *implRepository) Insert(ctx context.Context, rec model.AlertRecord) error {
	delivered, err := json.Marshal(rec.Delivered)
	if err != nil {
		return errors.Wrap(err, "history: marshal delivered map")
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO alert_records (`+recordColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.AlertID, rec.UserID, delivered, rec.Acknowledged, rec.AcknowledgedAt, rec.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "history: insert record")
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.AlertRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM alert_records WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.AlertRecord{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.history.repository.postgres.Get: %v", err)
		return model.AlertRecord{}, errors.Wrap(err, "history: get record")
	}
	return rec, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.AlertRecord, paginator.Paginator, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM alert_records WHERE user_id = $1`, opts.UserID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.history.repository.postgres.List.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "history: count records")
	}

	opts.PaginateQuery.Adjust()
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM alert_records
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		opts.UserID, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset(),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.history.repository.postgres.List: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "history: query records")
	}
	defer rows.Close()

	var records []model.AlertRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.history.repository.postgres.List.scan: %v", err)
			return nil, paginator.Paginator{}, errors.Wrap(err, "history: scan record")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, paginator.Paginator{}, errors.Wrap(err, "history: iterate records")
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(records)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}
	return records, pag, nil
}

func (r *implRepository) EvictOldest(ctx context.Context, userID string, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM alert_records
		 WHERE user_id = $1 AND id NOT IN (
		   SELECT id FROM alert_records
		   WHERE user_id = $1
		   ORDER BY created_at DESC, id DESC
		   LIMIT $2
		 )`,
		userID, keep,
	)
	if err != nil {
		return errors.Wrap(err, "history: evict oldest records")
	}
	return nil
}

func (r *implRepository) Acknowledge(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE alert_records
		 SET acknowledged = TRUE, acknowledged_at = $2
		 WHERE id = $1 AND acknowledged = FALSE`,
		id, at,
	)
	if err != nil {
		return false, errors.Wrap(err, "history: acknowledge record")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "history: acknowledge rows affected")
	}
	return n > 0, nil
}

func (r *implRepository) AcknowledgeAll(ctx context.Context, userID string, at time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE alert_records
		 SET acknowledged = TRUE, acknowledged_at = $2
		 WHERE user_id = $1 AND acknowledged = FALSE`,
		userID, at,
	)
	if err != nil {
		return 0, errors.Wrap(err, "history: acknowledge all records")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "history: acknowledge all rows affected")
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (model.AlertRecord, error) {
	var rec model.AlertRecord
	var delivered []byte
	if err := row.Scan(&rec.ID, &rec.AlertID, &rec.UserID, &delivered,
		&rec.Acknowledged, &rec.AcknowledgedAt, &rec.CreatedAt); err != nil {
		return model.AlertRecord{}, err
	}
	if len(delivered) > 0 {
		if err := json.Unmarshal(delivered, &rec.Delivered); err != nil {
			return model.AlertRecord{}, errors.Wrap(err, "history: unmarshal delivered map")
		}
	}
	return rec, nil
}
