//go:build !windows && !darwin && (!linux || !cgo)

package audio

// BeepDevice is unavailable in builds without cgo.
type BeepDevice struct{}

// OpenDevice always fails: native sound libraries need cgo.
func OpenDevice() (*BeepDevice, error) {
	return nil, ErrNoOutputDevice
}

// NewSink always fails in builds without cgo.
func (d *BeepDevice) NewSink() (Sink, error) {
	return nil, ErrNoOutputDevice
}
