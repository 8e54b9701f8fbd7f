package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/tune/internal/model"
)

func TestLoadSession_Missing(t *testing.T) {
	got := LoadSession(filepath.Join(t.TempDir(), "nope.json"))
	if got != DefaultSession() {
		t.Errorf("LoadSession() = %+v, want defaults", got)
	}
}

func TestLoadSession_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{{{"},
		{"wrong type", `{"volume": "loud"}`},
		{"unknown repeat mode", `{"repeat_mode": "Forever"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if got := LoadSession(path); got != DefaultSession() {
				t.Errorf("LoadSession() = %+v, want defaults", got)
			}
		})
	}
}

func TestLoadSession_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	content := `{"shuffle": true, "sort_mode": "Artist", "unknown_field": 42}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got := LoadSession(path)

	if !got.Shuffle {
		t.Error("Shuffle should be loaded from file")
	}
	if got.SortMode != model.SortArtist {
		t.Errorf("SortMode = %v, want Artist", got.SortMode)
	}
	if got.Volume != 1.0 {
		t.Errorf("Volume = %v, want default 1.0", got.Volume)
	}
	if got.RepeatMode != model.RepeatOff {
		t.Errorf("RepeatMode = %v, want default Off", got.RepeatMode)
	}
}

func TestSession_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "state.json")
	want := SessionState{
		Volume:        0.4,
		Shuffle:       true,
		RepeatMode:    model.RepeatOne,
		SortMode:      model.SortTitle,
		LastTrackPath: "/music/song.mp3",
	}

	want.Save(path)

	if got := LoadSession(path); got != want {
		t.Errorf("LoadSession() = %+v, want %+v", got, want)
	}
}

func TestSession_SaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// A regular file where a directory is needed makes the write fail;
	// Save must swallow it.
	DefaultSession().Save(filepath.Join(blocker, "state.json"))
}

func TestDefaultMusicDir_Env(t *testing.T) {
	t.Setenv("XDG_MUSIC_DIR", "/srv/music")
	if got := DefaultMusicDir(); got != "/srv/music" {
		t.Errorf("DefaultMusicDir() = %q, want /srv/music", got)
	}
}
