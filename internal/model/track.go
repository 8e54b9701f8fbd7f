package model

import (
	"path/filepath"
	"strings"
	"time"
)

// UnknownArtist is the artist recorded for tracks whose tags carry none.
const UnknownArtist = "Unknown Artist"

// Track represents a single audio file discovered in the music directory.
//
// Track contains the metadata the player needs to list and play a song:
//   - Path, the stable identity of the track across catalog reorderings
//   - Title and Artist for display and sorting
//   - Duration for progress display and percentage seeking
//   - Lyrics (raw text, possibly timestamped LRC) if the file embeds any
//
// Tracks are immutable once scanned. Only the order of the containing
// Catalog changes.
//
// Example:
//
//	track := NewTrack("/music/Song.mp3", "", "", 180, "")
//	// track.Title = "Song", track.Artist = "Unknown Artist"
type Track struct {
	// Path is the file path of the track. It uniquely identifies the track.
	Path string

	// Title is the track title, defaulting to the file name without extension.
	Title string

	// Artist is the track artist, defaulting to UnknownArtist.
	Artist string

	// Duration is the track length in whole seconds. Zero when unknown.
	Duration uint64

	// Lyrics contains the raw lyric text embedded in the file.
	// Empty string if the file has no lyrics.
	Lyrics string
}

// NewTrack creates a Track, filling in defaults for missing metadata.
//
// An empty title is replaced by the file stem of path and an empty
// artist by UnknownArtist. Surrounding whitespace is trimmed from both.
func NewTrack(path, title, artist string, duration uint64, lyrics string) *Track {
	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	artist = strings.TrimSpace(artist)
	if artist == "" {
		artist = UnknownArtist
	}

	return &Track{
		Path:     path,
		Title:    title,
		Artist:   artist,
		Duration: duration,
		Lyrics:   lyrics,
	}
}

// DisplayName returns the name shown in the playlist and status bar.
//
// Returns "Artist - Title", or just the title when the artist is unknown.
func (t *Track) DisplayName() string {
	if t.Artist != UnknownArtist {
		return t.Artist + " - " + t.Title
	}
	return t.Title
}

// HasLyrics returns true if the track embeds lyric text.
func (t *Track) HasLyrics() bool {
	return strings.TrimSpace(t.Lyrics) != ""
}

// Length returns the track duration as a time.Duration.
func (t *Track) Length() time.Duration {
	return time.Duration(t.Duration) * time.Second
}
