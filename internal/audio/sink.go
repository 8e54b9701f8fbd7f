package audio

import (
	"errors"
	"time"
)

var (
	// ErrNoOutputDevice is returned when no audio output can be opened.
	ErrNoOutputDevice = errors.New("no audio output device available")

	// ErrUnsupportedFormat is returned for files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNoPicture is returned when a file carries no embedded cover art.
	ErrNoPicture = errors.New("no embedded picture")
)

// Sink plays one decoded audio source at a time.
//
// All methods are safe to call in any state: pausing an empty sink or
// seeking without a source are no-ops.
type Sink interface {
	// LoadAndPlay replaces the current source with the file at path and
	// starts playing it. On error the sink is left empty.
	LoadAndPlay(path string) error

	// Pause suspends output without discarding the source.
	Pause()

	// Resume continues a paused source.
	Resume()

	// Stop discards the current source. The sink reports Empty afterwards.
	Stop()

	// SetVolume sets the linear gain, 0.0 is silent and 1.0 is unity.
	SetVolume(level float64)

	// Seek moves the source to pos, clamped to the source length.
	Seek(pos time.Duration) error

	// Empty reports whether there is nothing left to play.
	Empty() bool

	// Position returns the elapsed time of the current source.
	Position() time.Duration
}

// Device is an audio output that can create sinks.
type Device interface {
	NewSink() (Sink, error)
}
