// Package logging configures the global zerolog logger.
//
// The terminal belongs to the TUI while tune runs, so log output goes to a
// file instead of stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	ioutils "github.com/handiism/tune/internal/io"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the global logger at the file at path.
//
// The file is appended to and its directory created if needed. verbose
// lowers the level from info to debug. If the file cannot be opened the
// global logger is disabled and the error returned; the returned closer is
// always safe to call.
func Setup(path string, verbose bool) (io.Closer, error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		log.Logger = zerolog.Nop()
		return nopCloser{}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nopCloser{}, err
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
