package audio

import (
	"os"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
)

// Tags holds the metadata tune reads from an audio file.
//
// Empty fields mean the file did not carry that tag.
type Tags struct {
	Title  string
	Artist string
	Lyrics string
}

// ReadTags reads title, artist and lyrics from the file at path.
//
// MP3, FLAC and Ogg Vorbis tags are read with dhowden/tag. For MP3 files
// without lyrics in the generic reader, the USLT (Unsynchronised lyrics)
// frame is read with id3v2.
//
// Returns an error if the file cannot be opened or carries no readable tags.
func ReadTags(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return Tags{}, err
	}

	tags := Tags{
		Title:  strings.TrimSpace(meta.Title()),
		Artist: strings.TrimSpace(meta.Artist()),
		Lyrics: meta.Lyrics(),
	}

	if tags.Lyrics == "" && meta.FileType() == tag.MP3 {
		tags.Lyrics = readUSLT(path)
	}

	return tags, nil
}

// readUSLT returns the first non-empty unsynchronised lyrics frame.
func readUSLT(path string) string {
	id3, err := id3v2.Open(path, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Unsynchronised lyrics/text transcription"},
	})
	if err != nil {
		return ""
	}
	defer id3.Close()

	for _, f := range id3.GetFrames(id3.CommonID("Unsynchronised lyrics/text transcription")) {
		uslt, ok := f.(id3v2.UnsynchronisedLyricsFrame)
		if ok && strings.TrimSpace(uslt.Lyrics) != "" {
			return uslt.Lyrics
		}
	}
	return ""
}

// ReadPicture returns the embedded cover art of the file at path.
//
// Returns ErrNoPicture if the file has tags but no picture.
func ReadPicture(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	pic := meta.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, ErrNoPicture
	}
	return pic.Data, nil
}
