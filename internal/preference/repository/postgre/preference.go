package postgres

import (
	"context"
	"database/sql"

	"secops-console/internal/model"
	"secops-console/internal/preference/repository"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) Get(ctx context.Context, userID string) (model.AlertPreference, error) {
	pref := model.AlertPreference{
		UserID:   userID,
		Channels: make(map[model.Channel]bool, 4),
	}
	var sound, visual, push, email bool
	err := r.db.QueryRowContext(ctx,
		`SELECT sound_enabled, visual_enabled, push_enabled, email_enabled, min_severity, updated_at
		 FROM alert_preferences WHERE user_id = $1`,
		userID,
	).Scan(&sound, &visual, &push, &email, &pref.MinSeverity, &pref.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.AlertPreference{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.preference.repository.postgres.Get: %v", err)
		return model.AlertPreference{}, errors.Wrap(err, "preference: get record")
	}

	pref.Channels[model.ChannelSound] = sound
	pref.Channels[model.ChannelVisual] = visual
	pref.Channels[model.ChannelPush] = push
	pref.Channels[model.ChannelEmail] = email
	return pref, nil
}

func (r *implRepository) Upsert(ctx context.Context, pref model.AlertPreference) (model.AlertPreference, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alert_preferences
		   (user_id, sound_enabled, visual_enabled, push_enabled, email_enabled, min_severity, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   sound_enabled  = EXCLUDED.sound_enabled,
		   visual_enabled = EXCLUDED.visual_enabled,
		   push_enabled   = EXCLUDED.push_enabled,
		   email_enabled  = EXCLUDED.email_enabled,
		   min_severity   = EXCLUDED.min_severity,
		   updated_at     = EXCLUDED.updated_at`,
		pref.UserID,
		pref.Channels[model.ChannelSound],
		pref.Channels[model.ChannelVisual],
		pref.Channels[model.ChannelPush],
		pref.Channels[model.ChannelEmail],
		pref.MinSeverity,
		pref.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.preference.repository.postgres.Upsert: %v", err)
		return model.AlertPreference{}, errors.Wrap(err, "preference: upsert record")
	}
	return pref, nil
}
