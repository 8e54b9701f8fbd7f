package model

import "fmt"

// RepeatMode controls what happens when a track finishes.
type RepeatMode int

const (
	// RepeatOff stops at the end of the catalog.
	RepeatOff RepeatMode = iota

	// RepeatAll wraps around to the start of the queue.
	RepeatAll

	// RepeatOne replays the current track.
	RepeatOne
)

// Next returns the following mode in the cycle Off -> All -> One -> Off.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

func (m RepeatMode) String() string {
	switch m {
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Off"
	}
}

// MarshalText encodes the mode by name, e.g. "All".
func (m RepeatMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name. Unknown names are an error.
func (m *RepeatMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Off":
		*m = RepeatOff
	case "All":
		*m = RepeatAll
	case "One":
		*m = RepeatOne
	default:
		return fmt.Errorf("unknown repeat mode %q", text)
	}
	return nil
}

// SortMode selects the catalog ordering.
type SortMode int

const (
	// SortFilename orders tracks by file path.
	SortFilename SortMode = iota

	// SortTitle orders tracks by title, ignoring case.
	SortTitle

	// SortArtist orders tracks by artist, then title, ignoring case.
	SortArtist
)

// Next returns the following mode in the cycle Filename -> Title -> Artist -> Filename.
func (m SortMode) Next() SortMode {
	switch m {
	case SortFilename:
		return SortTitle
	case SortTitle:
		return SortArtist
	default:
		return SortFilename
	}
}

func (m SortMode) String() string {
	switch m {
	case SortTitle:
		return "Title"
	case SortArtist:
		return "Artist"
	default:
		return "Filename"
	}
}

// MarshalText encodes the mode by name, e.g. "Title".
func (m SortMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name. Unknown names are an error.
func (m *SortMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Filename":
		*m = SortFilename
	case "Title":
		*m = SortTitle
	case "Artist":
		*m = SortArtist
	default:
		return fmt.Errorf("unknown sort mode %q", text)
	}
	return nil
}
