package player

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/handiism/tune/internal/audio"
	"github.com/handiism/tune/internal/config"
	"github.com/handiism/tune/internal/model"
	"github.com/handiism/tune/internal/queue"
	"github.com/rs/zerolog/log"
)

const (
	// SeekStep is the distance of a single forward or backward seek.
	SeekStep = 5 * time.Second

	// VolumeStep is the increment of a single volume change.
	VolumeStep = 0.1

	// RestartThreshold is the elapsed time after which "previous" restarts
	// the current track instead of moving back.
	RestartThreshold = 3 * time.Second
)

// ErrNothingPlaying is returned by operations that need a loaded track.
var ErrNothingPlaying = errors.New("nothing is playing")

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithClock sets the time source used to stamp and expire status messages.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller drives playback of a catalog through an audio sink.
//
// Controller owns the catalog order, the play queue and the sink. It is not
// safe for concurrent use: the host loop calls it from a single goroutine,
// once per input event and once per tick through CheckPlayback.
type Controller struct {
	catalog *model.Catalog
	queue   *queue.Queue
	device  audio.Device
	sink    audio.Sink

	state   State
	playing int

	volume  float64
	muted   bool
	preMute float64

	shuffle  bool
	repeat   model.RepeatMode
	sortMode model.SortMode

	status *StatusMessage

	rng *rand.Rand
	now func() time.Time
}

// New creates a Controller for catalog, restoring the preferences in session.
//
// The catalog is sorted by the session's sort mode and the queue built with
// its shuffle flag. Nothing is played. Returns an error if device cannot
// provide a sink.
func New(catalog *model.Catalog, device audio.Device, session config.SessionState, opts ...Option) (*Controller, error) {
	sink, err := device.NewSink()
	if err != nil {
		return nil, fmt.Errorf("open sink: %w", err)
	}

	c := &Controller{
		catalog:  catalog,
		device:   device,
		sink:     sink,
		state:    Stopped,
		playing:  queue.None,
		volume:   quantizeVolume(session.Volume),
		shuffle:  session.Shuffle,
		repeat:   session.RepeatMode,
		sortMode: session.SortMode,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.preMute = c.volume

	c.catalog.Sort(c.sortMode)
	c.queue = queue.New(c.catalog.Len(), c.rng)
	c.queue.Rebuild(c.catalog.Len(), c.shuffle)
	c.sink.SetVolume(c.volume)

	return c, nil
}

// Play stops whatever is playing and starts the track at catalog index.
//
// The queue cursor moves to the track's position. On failure the
// controller is left Stopped, a status message is set and the error is
// returned.
func (c *Controller) Play(index int) error {
	track := c.catalog.Track(index)
	if track == nil {
		return fmt.Errorf("play: catalog index %d out of range", index)
	}

	c.Stop()
	c.queue.Relocate(index)

	c.sink.SetVolume(c.volume)
	if err := c.sink.LoadAndPlay(track.Path); err != nil {
		log.Warn().Err(err).Str("path", track.Path).Msg("Playback failed")
		c.SetStatus(fmt.Sprintf("Cannot play %s: %v", track.DisplayName(), err))
		return err
	}

	c.state = Playing
	c.playing = index
	log.Info().Str("path", track.Path).Msg("Playing")
	return nil
}

// TogglePause flips between Playing and Paused. It does nothing when Stopped.
func (c *Controller) TogglePause() {
	switch c.state {
	case Playing:
		c.sink.Pause()
		c.state = Paused
	case Paused:
		c.sink.Resume()
		c.state = Playing
	}
}

// Stop discards the current track and prepares a fresh sink.
//
// The queue cursor is kept so Next continues from the stopped track.
func (c *Controller) Stop() {
	c.sink.Stop()
	c.state = Stopped
	c.playing = queue.None

	sink, err := c.device.NewSink()
	if err != nil {
		log.Warn().Err(err).Msg("Replacing sink failed, reusing the old one")
		return
	}
	sink.SetVolume(c.volume)
	c.sink = sink
}

// IsFinished reports whether a playing track has run out of audio.
func (c *Controller) IsFinished() bool {
	return c.state == Playing && c.sink.Empty()
}

// CheckPlayback handles end of track. The host loop calls it once per tick.
//
// RepeatOne restarts the track. Otherwise the queue advances; when there is
// nothing left to play under RepeatOff the controller stops.
func (c *Controller) CheckPlayback() {
	if !c.IsFinished() {
		return
	}

	if c.repeat == model.RepeatOne {
		if err := c.sink.Seek(0); err != nil {
			log.Warn().Err(err).Msg("Restarting track failed")
			c.Stop()
		}
		return
	}

	if !c.shuffle && c.repeat == model.RepeatOff && c.catalog.IsLast(c.playing) {
		log.Debug().Msg("Reached end of catalog")
		c.Stop()
		return
	}

	pos, ok := c.queue.Advance(c.repeat)
	if !ok {
		log.Debug().Msg("Reached end of queue")
		c.Stop()
		return
	}
	_ = c.Play(c.queue.At(pos))
}

// Next plays the following track in the queue.
//
// At the end of the queue under RepeatOff nothing changes and an
// "End of queue" status is shown.
func (c *Controller) Next() error {
	pos, ok := c.queue.Advance(c.repeat)
	if !ok {
		c.SetStatus("End of queue")
		return nil
	}
	return c.Play(c.queue.At(pos))
}

// PlayPrevious restarts the current track if more than RestartThreshold has
// elapsed, otherwise plays the previous track in the queue.
func (c *Controller) PlayPrevious() error {
	if c.state != Stopped && c.sink.Position() > RestartThreshold {
		return c.sink.Seek(0)
	}

	pos, ok := c.queue.Retreat()
	if !ok {
		return nil
	}
	return c.Play(c.queue.At(pos))
}

// quantizeVolume rounds v to the nearest 0.1 and clamps it to [0, 1].
func quantizeVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, math.Round(v*10)/10))
}

// SetVolume sets the volume to v rounded to 0.1 and clamped to [0, 1].
// Setting a volume unmutes.
func (c *Controller) SetVolume(v float64) {
	c.volume = quantizeVolume(v)
	c.muted = false
	c.sink.SetVolume(c.volume)
}

// IncreaseVolume raises the volume by VolumeStep.
func (c *Controller) IncreaseVolume() {
	c.SetVolume(c.volume + VolumeStep)
}

// DecreaseVolume lowers the volume by VolumeStep.
func (c *Controller) DecreaseVolume() {
	c.SetVolume(c.volume - VolumeStep)
}

// ToggleMute silences output, or restores the volume set before muting.
func (c *Controller) ToggleMute() {
	if c.muted {
		c.muted = false
		c.volume = c.preMute
	} else {
		c.muted = true
		c.preMute = c.volume
		c.volume = 0
	}
	c.sink.SetVolume(c.volume)
}

// SeekBy moves the playback position by delta, never before the start.
func (c *Controller) SeekBy(delta time.Duration) error {
	if c.state == Stopped {
		return ErrNothingPlaying
	}
	target := max(0, c.sink.Position()+delta)
	return c.sink.Seek(target)
}

// SeekPercentage seeks to p percent of the playing track's duration,
// truncated to whole seconds.
func (c *Controller) SeekPercentage(p int) error {
	track := c.CurrentTrack()
	if track == nil {
		return ErrNothingPlaying
	}
	seconds := track.Duration * uint64(max(0, min(p, 100))) / 100
	return c.sink.Seek(time.Duration(seconds) * time.Second)
}

// ToggleShuffle flips shuffle and rebuilds the queue around the playing
// track without interrupting it.
func (c *Controller) ToggleShuffle() {
	c.shuffle = !c.shuffle
	c.queue.ToggleShuffle(c.shuffle, c.playing)
	c.SetStatus("Shuffle: " + onOff(c.shuffle))
}

// CycleRepeat moves to the next repeat mode.
func (c *Controller) CycleRepeat() {
	c.repeat = c.repeat.Next()
	c.SetStatus("Repeat: " + c.repeat.String())
}

// CycleSort moves to the next sort mode and reorders the catalog.
func (c *Controller) CycleSort() {
	c.SortBy(c.sortMode.Next())
	c.SetStatus("Sort: " + c.sortMode.String())
}

// SortBy reorders the catalog and rebuilds the queue.
//
// The playing track keeps playing. Its catalog index changes, and the queue
// cursor follows it (or the track under the cursor when stopped).
func (c *Controller) SortBy(mode model.SortMode) {
	var anchor string
	if cur, ok := c.queue.Current(); ok {
		anchor = c.catalog.Track(cur).Path
	}
	if t := c.CurrentTrack(); t != nil {
		anchor = t.Path
	}

	c.sortMode = mode
	c.catalog.Sort(mode)
	c.queue.Rebuild(c.catalog.Len(), c.shuffle)

	if anchor == "" {
		return
	}
	idx, ok := c.catalog.IndexOf(anchor)
	if !ok {
		return
	}
	c.queue.Relocate(idx)
	if c.playing != queue.None {
		c.playing = idx
	}
}

// SetStatus shows text as a transient status message.
func (c *Controller) SetStatus(text string) {
	c.status = &StatusMessage{Text: text, CreatedAt: c.now()}
}

// ExpireStatus clears the status message once it is older than StatusTTL.
func (c *Controller) ExpireStatus() {
	if c.status != nil && c.status.Expired(c.now()) {
		c.status = nil
	}
}

// Status returns the current status message, if any.
func (c *Controller) Status() (StatusMessage, bool) {
	if c.status == nil {
		return StatusMessage{}, false
	}
	return *c.status, true
}

// State returns the playback state.
func (c *Controller) State() State { return c.state }

// Volume returns the effective volume, 0 while muted.
func (c *Controller) Volume() float64 { return c.volume }

// Muted reports whether output is muted.
func (c *Controller) Muted() bool { return c.muted }

// Shuffle reports whether shuffle is on.
func (c *Controller) Shuffle() bool { return c.shuffle }

// Repeat returns the repeat mode.
func (c *Controller) Repeat() model.RepeatMode { return c.repeat }

// SortMode returns the sort mode.
func (c *Controller) SortMode() model.SortMode { return c.sortMode }

// Catalog returns the catalog in its current order.
func (c *Controller) Catalog() *model.Catalog { return c.catalog }

// Queue returns the play queue.
func (c *Controller) Queue() *queue.Queue { return c.queue }

// Playing returns the catalog index of the loaded track.
func (c *Controller) Playing() (int, bool) {
	return c.playing, c.playing != queue.None
}

// CurrentTrack returns the loaded track, or nil when Stopped.
func (c *Controller) CurrentTrack() *model.Track {
	if c.playing == queue.None {
		return nil
	}
	return c.catalog.Track(c.playing)
}

// Position returns the elapsed time of the loaded track.
func (c *Controller) Position() time.Duration {
	if c.state == Stopped {
		return 0
	}
	return c.sink.Position()
}

// Shutdown stops playback and returns the session to persist.
//
// The last track is the playing one, else selectedPath. A muted volume is
// saved as the level before muting.
func (c *Controller) Shutdown(selectedPath string) config.SessionState {
	last := selectedPath
	if t := c.CurrentTrack(); t != nil {
		last = t.Path
	}

	volume := c.volume
	if c.muted {
		volume = c.preMute
	}

	c.Stop()

	return config.SessionState{
		Volume:        volume,
		Shuffle:       c.shuffle,
		RepeatMode:    c.repeat,
		SortMode:      c.sortMode,
		LastTrackPath: last,
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
