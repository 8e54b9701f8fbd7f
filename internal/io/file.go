// Package ioutils provides file system utilities for the tune player.
//
// This package contains functions for:
//   - Atomic file writing
//   - Directory creation
package ioutils

import (
	"os"
	"path/filepath"
)

// WriteFile writes data to path atomically, creating parent directories.
//
// The data is first written to a temporary file in the same directory and
// then renamed over path, so a crash mid-write never leaves a truncated
// file behind. The final file has mode 0644.
//
// Example:
//
//	err := WriteFile("/home/user/.config/tune/state.json", data)
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/user/.config/tune")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
