// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Atomic file writing
//   - Directory creation
//   - Cover art thumbnails
//
// # File Operations
//
//	// Write data to file, replacing it atomically
//	err := ioutils.WriteFile("/path/to/state.json", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Image Processing
//
// The ImageService shrinks embedded cover art for terminal display:
//
//	svc := ioutils.NewImageService()
//	thumb, _ := svc.Thumbnail(pictureData, 16, 16)
package ioutils
