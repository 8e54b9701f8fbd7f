package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	ioutils "github.com/handiism/tune/internal/io"
	"github.com/handiism/tune/internal/model"
	"github.com/rs/zerolog/log"
)

// AppName names the per-user directory holding the state and log files.
const AppName = "tune"

// SessionState holds the preferences persisted between runs.
type SessionState struct {
	Volume        float64          `json:"volume"`
	Shuffle       bool             `json:"shuffle"`
	RepeatMode    model.RepeatMode `json:"repeat_mode"`
	SortMode      model.SortMode   `json:"sort_mode"`
	LastTrackPath string           `json:"last_track_path,omitempty"`
}

// DefaultSession returns the session used when no state file is available.
func DefaultSession() SessionState {
	return SessionState{
		Volume:     1.0,
		Shuffle:    false,
		RepeatMode: model.RepeatOff,
		SortMode:   model.SortFilename,
	}
}

// LoadSession reads the session state from a JSON file.
//
// Fields missing from the file keep their defaults. A missing file, an
// unreadable file or malformed JSON all yield DefaultSession(); the error is
// logged and never returned.
func LoadSession(path string) SessionState {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Reading session state failed, using defaults")
		}
		return DefaultSession()
	}

	session := DefaultSession()
	if err := json.Unmarshal(data, &session); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Malformed session state, using defaults")
		return DefaultSession()
	}

	log.Debug().Str("path", path).Msg("Loaded session state")
	return session
}

// Save writes the session state to a JSON file, creating its directory.
//
// Persistence is best effort: failures are logged and otherwise ignored.
func (s SessionState) Save(path string) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("Encoding session state failed")
		return
	}

	if err := ioutils.WriteFile(path, data); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Saving session state failed")
		return
	}

	log.Debug().Str("path", path).Msg("Saved session state")
}

// Dir returns the per-user application directory, e.g. ~/.config/tune.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName)
}

// DefaultStatePath returns the fixed location of the session state file.
func DefaultStatePath() string {
	return filepath.Join(Dir(), "state.json")
}

// DefaultLogPath returns the fixed location of the log file.
func DefaultLogPath() string {
	return filepath.Join(Dir(), AppName+".log")
}

// DefaultMusicDir returns the directory scanned when none is given:
// $XDG_MUSIC_DIR, else ~/Music, else the working directory.
func DefaultMusicDir() string {
	if dir := os.Getenv("XDG_MUSIC_DIR"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Music")
	}
	return "."
}
