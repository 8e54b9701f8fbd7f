// Package player implements the playback controller.
//
// The Controller ties together the track catalog, the play queue and an
// audio sink, and runs the playback state machine:
//
//	Stopped --Play--> Playing <--TogglePause--> Paused
//	Playing | Paused --Stop--> Stopped
//
// # Basic Usage
//
//	ctrl, err := player.New(catalog, device, config.LoadSession(path))
//	if err != nil {
//	    return err
//	}
//	ctrl.Play(0)
//
//	// once per tick of the host loop
//	ctrl.CheckPlayback()
//	ctrl.ExpireStatus()
//
//	// on quit
//	ctrl.Shutdown(selectedPath).Save(path)
//
// # End of Track
//
// Completion is polled: CheckPlayback looks at the sink once per tick.
// RepeatOne restarts the track, RepeatAll wraps around the queue, and
// RepeatOff stops after the last track.
//
// # Errors
//
// Playback failures never panic. Play returns the error, leaves the
// controller Stopped and shows it as a status message for StatusTTL.
package player
