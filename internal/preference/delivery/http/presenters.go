package http

import (
	"time"

	"secops-console/internal/model"
	"secops-console/internal/preference"
)

type setPreferenceReq struct {
	Channels    map[string]bool `json:"channels" binding:"required"`
	MinSeverity string          `json:"min_severity" binding:"required"`
}

func (r setPreferenceReq) toInput() preference.SetInput {
	channels := make(map[model.Channel]bool, len(r.Channels))
	for ch, enabled := range r.Channels {
		channels[model.Channel(ch)] = enabled
	}
	return preference.SetInput{
		Channels:    channels,
		MinSeverity: model.Severity(r.MinSeverity),
	}
}

type preferenceResp struct {
	UserID      string          `json:"user_id"`
	Channels    map[string]bool `json:"channels"`
	MinSeverity string          `json:"min_severity"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

func newPreferenceResp(pref model.AlertPreference) preferenceResp {
	channels := make(map[string]bool, len(pref.Channels))
	for ch, enabled := range pref.Channels {
		channels[string(ch)] = enabled
	}
	resp := preferenceResp{
		UserID:      pref.UserID,
		Channels:    channels,
		MinSeverity: string(pref.MinSeverity),
	}
	if !pref.UpdatedAt.IsZero() {
		resp.UpdatedAt = &pref.UpdatedAt
	}
	return resp
}
