// Package model defines the core data structures used throughout
// the tune music player.
//
// # Track
//
// Track represents a single audio file with its metadata:
//
//	track := model.NewTrack("/music/a.mp3", "Title", "Artist", 180, "")
//	fmt.Println(track.DisplayName()) // "Artist - Title"
//
// # Catalog
//
// Catalog is the ordered list of every track found in the music directory.
// It can only be reordered as a whole:
//
//	catalog := model.NewCatalog(tracks)
//	catalog.Sort(model.SortTitle)
//	i, ok := catalog.IndexOf("/music/a.mp3") // re-locate after sorting
//
// # Modes
//
// RepeatMode (Off, All, One) and SortMode (Filename, Title, Artist) are
// cyclic enums. Both encode to JSON by name for the session state file.
package model
