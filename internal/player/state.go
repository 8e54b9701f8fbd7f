package player

import "time"

// State is the playback state machine.
type State int

const (
	// Stopped means no track is loaded.
	Stopped State = iota

	// Playing means a track is loaded and producing audio.
	Playing

	// Paused means a track is loaded with output suspended.
	Paused
)

// String returns the label shown in the status bar.
func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// StatusTTL is how long a status message stays visible.
const StatusTTL = 3 * time.Second

// StatusMessage is a transient notice for the user.
type StatusMessage struct {
	Text      string
	CreatedAt time.Time
}

// Expired reports whether the message is StatusTTL or more old at now.
func (m StatusMessage) Expired(now time.Time) bool {
	return now.Sub(m.CreatedAt) >= StatusTTL
}
