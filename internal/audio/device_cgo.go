//go:build (linux && cgo) || windows || darwin

package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"
)

// outputRate is the sample rate the speaker runs at. Sources are resampled.
const outputRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// BeepDevice plays audio through the system speaker.
type BeepDevice struct{}

// OpenDevice initializes the system speaker.
//
// The speaker is initialized once per process; later calls return the same
// result. Returns an error wrapping ErrNoOutputDevice when the speaker cannot
// be opened.
func OpenDevice() (*BeepDevice, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(outputRate, outputRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoOutputDevice, speakerErr)
	}
	return &BeepDevice{}, nil
}

// NewSink creates an empty sink at unity volume.
func (d *BeepDevice) NewSink() (Sink, error) {
	return &beepSink{volume: 1.0}, nil
}

// playback bundles the resources of the source a sink is playing.
type playback struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	gain     *effects.Volume
	finished *atomic.Bool
}

type beepSink struct {
	mu     sync.Mutex
	volume float64
	cur    *playback
}

func (s *beepSink) LoadAndPlay(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}

	gain := &effects.Volume{
		Streamer: beep.Resample(4, format.SampleRate, outputRate, streamer),
		Base:     2,
	}
	applyGain(gain, s.volume)

	s.cur = &playback{
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: gain},
		gain:     gain,
	}
	s.startLocked()

	log.Debug().Str("path", path).Int("rate", int(format.SampleRate)).Msg("Playing source")
	return nil
}

// startLocked hands the current source to the speaker with a fresh
// completion flag.
func (s *beepSink) startLocked() {
	finished := new(atomic.Bool)
	s.cur.finished = finished
	speaker.Play(beep.Seq(s.cur.ctrl, beep.Callback(func() {
		finished.Store(true)
	})))
}

func (s *beepSink) Pause() {
	s.setPaused(true)
}

func (s *beepSink) Resume() {
	s.setPaused(false)
}

func (s *beepSink) setPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return
	}
	speaker.Lock()
	s.cur.ctrl.Paused = paused
	speaker.Unlock()
}

func (s *beepSink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *beepSink) stopLocked() {
	if s.cur == nil {
		return
	}
	// A Ctrl without a streamer ends the sequence on the next mix.
	speaker.Lock()
	s.cur.ctrl.Streamer = nil
	speaker.Unlock()

	if err := s.cur.streamer.Close(); err != nil {
		log.Debug().Err(err).Msg("Closing source failed")
	}
	s.cur = nil
}

func (s *beepSink) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = level
	if s.cur == nil {
		return
	}
	speaker.Lock()
	applyGain(s.cur.gain, level)
	speaker.Unlock()
}

// applyGain maps a linear level onto a base-2 volume effect.
func applyGain(gain *effects.Volume, level float64) {
	if level <= 0 {
		gain.Silent = true
		gain.Volume = 0
		return
	}
	gain.Silent = false
	gain.Volume = math.Log2(level)
}

func (s *beepSink) Seek(pos time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return nil
	}

	n := s.cur.format.SampleRate.N(pos)
	length := s.cur.streamer.Len()
	n = max(0, min(n, length-1))

	speaker.Lock()
	err := s.cur.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		return err
	}

	// The speaker drops a source once it is consumed; replay it from the
	// new position.
	if s.cur.finished.Load() {
		s.startLocked()
	}
	return nil
}

func (s *beepSink) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur == nil || s.cur.finished.Load()
}

func (s *beepSink) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return 0
	}
	speaker.Lock()
	pos := s.cur.streamer.Position()
	speaker.Unlock()

	return s.cur.format.SampleRate.D(pos)
}
