// Package config provides configuration management for tune.
//
// This package handles:
//   - Loading and saving the session state JSON file
//   - Default session values
//   - Default locations for the state file, the log file and the music directory
//
// # Default Session
//
// Use DefaultSession() to get the values used on first run:
//
//	session := config.DefaultSession()
//	// volume 1.0, shuffle off, repeat Off, sort Filename, no last track
//
// # Loading from File
//
//	session := config.LoadSession(config.DefaultStatePath())
//	// Never fails: a missing or malformed file yields DefaultSession()
//
// # Saving Session
//
//	session.Shuffle = true
//	session.Save(config.DefaultStatePath())
//	// Best effort: failures are logged, not returned
package config
