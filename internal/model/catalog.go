package model

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Catalog is the ordered list of tracks discovered for the session.
//
// The set of tracks never changes after the scan; only Sort reorders it.
// Because indices shift on every sort, callers that must keep hold of a
// track across a reorder remember its Path and look it up with IndexOf.
type Catalog struct {
	tracks []*Track
}

// NewCatalog creates a Catalog over tracks, keeping their order.
func NewCatalog(tracks []*Track) *Catalog {
	return &Catalog{tracks: tracks}
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Track returns the track at index i, or nil if i is out of range.
func (c *Catalog) Track(i int) *Track {
	if i < 0 || i >= len(c.tracks) {
		return nil
	}
	return c.tracks[i]
}

// Tracks returns the tracks in catalog order. The slice must not be modified.
func (c *Catalog) Tracks() []*Track {
	return c.tracks
}

// IsLast reports whether i is the final catalog index.
func (c *Catalog) IsLast(i int) bool {
	return len(c.tracks) > 0 && i == len(c.tracks)-1
}

// IndexOf returns the current index of the track with the given path.
func (c *Catalog) IndexOf(path string) (int, bool) {
	_, i, ok := lo.FindIndexOf(c.tracks, func(t *Track) bool {
		return t.Path == path
	})
	return i, ok
}

// Sort reorders the catalog in place according to mode.
func (c *Catalog) Sort(mode SortMode) {
	SortTracks(c.tracks, mode)
}

// Search returns the indices of tracks whose display name contains query,
// ignoring case, in catalog order. An empty query matches nothing.
func (c *Catalog) Search(query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	return lo.Filter(lo.Range(len(c.tracks)), func(i int, _ int) bool {
		return strings.Contains(strings.ToLower(c.tracks[i].DisplayName()), query)
	})
}

// SortTracks orders tracks according to mode. The sort is stable, so tracks
// that compare equal keep their relative order.
//
// Title and artist comparisons ignore case. SortArtist breaks ties on title.
func SortTracks(tracks []*Track, mode SortMode) {
	var compare func(a, b *Track) int
	switch mode {
	case SortTitle:
		compare = func(a, b *Track) int {
			return foldCompare(a.Title, b.Title)
		}
	case SortArtist:
		compare = func(a, b *Track) int {
			return cmp.Or(
				foldCompare(a.Artist, b.Artist),
				foldCompare(a.Title, b.Title),
			)
		}
	default:
		compare = func(a, b *Track) int {
			return strings.Compare(a.Path, b.Path)
		}
	}
	slices.SortStableFunc(tracks, compare)
}

func foldCompare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
