package model

import "time"

// Channel is a delivery mechanism for an alert.
type Channel string

const (
	ChannelSound  Channel = "sound"
	ChannelVisual Channel = "visual"
	ChannelPush   Channel = "push"
	ChannelEmail  Channel = "email"
)

// AllChannels returns every known delivery channel.
func AllChannels() []Channel {
	return []Channel{ChannelSound, ChannelVisual, ChannelPush, ChannelEmail}
}

// Valid reports whether the channel is one of the known channels.
func (c Channel) Valid() bool {
	switch c {
	case ChannelSound, ChannelVisual, ChannelPush, ChannelEmail:
		return true
	}
	return false
}

// AlertPreference is the singleton per-user notification configuration.
// Mutation fully replaces the record; there is no partial-field merge.
type AlertPreference struct {
	UserID      string           `json:"user_id"`
	Channels    map[Channel]bool `json:"channels"`
	MinSeverity Severity         `json:"min_severity"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// DefaultPreference is the documented default used when a user has no
// stored preference: every channel enabled, minimum severity low.
func DefaultPreference(userID string) AlertPreference {
	channels := make(map[Channel]bool, len(AllChannels()))
	for _, ch := range AllChannels() {
		channels[ch] = true
	}
	return AlertPreference{
		UserID:      userID,
		Channels:    channels,
		MinSeverity: SeverityLow,
	}
}

// EnabledChannels returns the channels this preference enables, in the
// stable AllChannels order.
func (p AlertPreference) EnabledChannels() []Channel {
	var enabled []Channel
	for _, ch := range AllChannels() {
		if p.Channels[ch] {
			enabled = append(enabled, ch)
		}
	}
	return enabled
}
