package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/handiism/tune/internal/audio"
	"github.com/handiism/tune/internal/model"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// fakeMetadata serves tags and durations keyed by file base name.
type fakeMetadata struct {
	tags      map[string]audio.Tags
	durations map[string]time.Duration
}

func (f fakeMetadata) install(s *Scanner) {
	s.readTags = func(path string) (audio.Tags, error) {
		tags, ok := f.tags[filepath.Base(path)]
		if !ok {
			return audio.Tags{}, errors.New("no tags")
		}
		return tags, nil
	}
	s.probe = func(path string) (time.Duration, error) {
		d, ok := f.durations[filepath.Base(path)]
		if !ok {
			return 0, errors.New("undecodable")
		}
		return d, nil
	}
}

func TestScan_FiltersAndDefaults(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"b.mp3",
		"a.FLAC",
		"nested/deeper/c.ogg",
		"d.wav",
		"cover.jpg",
		"notes.txt",
	)

	s := NewScanner(2, nil)
	fakeMetadata{}.install(s)

	tracks, err := s.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	var titles []string
	for _, tr := range tracks {
		titles = append(titles, tr.Title)
		if tr.Artist != model.UnknownArtist {
			t.Errorf("%s artist = %q, want %q", tr.Title, tr.Artist, model.UnknownArtist)
		}
		if tr.Duration != 0 {
			t.Errorf("%s duration = %d, want 0", tr.Title, tr.Duration)
		}
	}

	want := "a,b,c,d"
	if got := strings.Join(titles, ","); got != want {
		t.Errorf("titles = %s, want %s", got, want)
	}

	scanned, total := s.GetProgress()
	if scanned != 4 || total != 4 {
		t.Errorf("GetProgress() = %d/%d, want 4/4", scanned, total)
	}
}

func TestScan_SortsByArtistThenTitle(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "1.mp3", "2.mp3", "3.mp3", "4.mp3")

	s := NewScanner(0, nil)
	fakeMetadata{
		tags: map[string]audio.Tags{
			"1.mp3": {Title: "Zebra", Artist: "beta"},
			"2.mp3": {Title: "apple", Artist: "Beta"},
			"3.mp3": {Title: "Song", Artist: "Alpha", Lyrics: "[00:01.00]Hi"},
		},
		durations: map[string]time.Duration{
			"1.mp3": 90*time.Second + 700*time.Millisecond,
			"3.mp3": 3 * time.Minute,
		},
	}.install(s)

	tracks, err := s.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	var names []string
	for _, tr := range tracks {
		names = append(names, tr.DisplayName())
	}
	want := []string{"Alpha - Song", "Beta - apple", "beta - Zebra", "4"}
	if strings.Join(names, "|") != strings.Join(want, "|") {
		t.Errorf("order = %v, want %v", names, want)
	}

	if tracks[0].Duration != 180 || !tracks[0].HasLyrics() {
		t.Errorf("Alpha - Song = %+v, want 180s with lyrics", tracks[0])
	}
	if tracks[2].Duration != 90 {
		t.Errorf("Zebra duration = %d, want 90 (truncated)", tracks[2].Duration)
	}
}

func TestScan_SymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	writeFiles(t, target, "song.mp3")

	link := filepath.Join(t.TempDir(), "music")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	s := NewScanner(1, nil)
	fakeMetadata{}.install(s)

	tracks, err := s.Scan(context.Background(), link)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(tracks) != 1 || tracks[0].Title != "song" {
		t.Errorf("Scan() = %v, want the single linked track", tracks)
	}
}

func TestScan_MissingDir(t *testing.T) {
	s := NewScanner(1, nil)
	if _, err := s.Scan(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.mp3", "b.mp3")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScanner(1, nil)
	fakeMetadata{}.install(s)

	if _, err := s.Scan(ctx, root); !errors.Is(err, context.Canceled) {
		t.Errorf("Scan() error = %v, want context.Canceled", err)
	}
}

func TestScan_ReportsProgress(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.mp3")

	var (
		mu     sync.Mutex
		levels []ProgressLevel
	)
	s := NewScanner(1, func(e ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		levels = append(levels, e.Level)
	})
	fakeMetadata{}.install(s)

	if _, err := s.Scan(context.Background(), root); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(levels) == 0 || levels[0] != LevelInfo || levels[len(levels)-1] != LevelSuccess {
		t.Errorf("levels = %v, want Info first and Success last", levels)
	}
}
