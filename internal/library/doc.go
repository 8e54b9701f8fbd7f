// Package library builds the track catalog by scanning a music directory.
//
// # Scanner
//
// The Scanner coordinates the scan:
//
//  1. Walk the directory tree, keeping supported audio files
//  2. Read tags and probe durations concurrently
//  3. Fill in defaults for missing metadata
//  4. Sort the result by artist, then title
//
// # Basic Usage
//
//	scanner := library.NewScanner(8, func(event library.ProgressEvent) {
//	    log.Debug().Msg(event.Message)
//	})
//
//	tracks, err := scanner.Scan(ctx, "/home/me/Music")
//	if err != nil {
//	    // the directory could not be read, or ctx was cancelled
//	}
//
// # Failure Policy
//
// A single bad file never aborts the scan. Files that cannot be opened are
// skipped with a LevelWarning event. Files whose tags or duration cannot be
// read are kept with default metadata.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package library
