// Package audio provides audio decoding, output and tag reading.
//
// This package handles:
//   - Decoding MP3, FLAC, WAV and Ogg Vorbis files
//   - Probing track durations
//   - Playing audio through the system output device
//   - Reading title, artist, lyrics and cover art from file tags
//
// # Output
//
// Playback goes through two small interfaces so the playback controller can
// be tested without a sound card:
//
//	device, err := audio.OpenDevice()
//	if err != nil {
//	    // audio.ErrNoOutputDevice when no output is available
//	}
//	sink, _ := device.NewSink()
//	err = sink.LoadAndPlay("/music/song.flac")
//
// A sink plays one source at a time. It reports Empty() once the source has
// been fully consumed or the sink was stopped.
//
// # Tags
//
//	tags, err := audio.ReadTags("/music/song.mp3")
//	fmt.Println(tags.Title, tags.Artist)
//
//	cover, err := audio.ReadPicture("/music/song.mp3")
//	// audio.ErrNoPicture when the file has no embedded art
package audio
