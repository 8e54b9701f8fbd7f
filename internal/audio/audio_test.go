package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/a.mp3", true},
		{"/music/a.FLAC", true},
		{"b.wav", true},
		{"c.Ogg", true},
		{"d.m4a", false},
		{"cover.jpg", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsSupported(tt.path); got != tt.want {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDecode_UnsupportedExtension(t *testing.T) {
	_, _, err := Decode("/music/song.m4a")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("definitely not RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Decode(path); err == nil {
		t.Error("expected error for corrupt file")
	}
	if _, err := Probe(path); err == nil {
		t.Error("expected Probe error for corrupt file")
	}
}

func TestDecode_Missing(t *testing.T) {
	if _, _, err := Decode(filepath.Join(t.TempDir(), "gone.mp3")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Decode() error = %v, want not-exist", err)
	}
}

func TestReadTags_Untagged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mp3")
	if err := os.WriteFile(path, make([]byte, 512), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadTags(path); err == nil {
		t.Error("expected error for file without tags")
	}
	if _, err := ReadPicture(path); err == nil {
		t.Error("expected ReadPicture error for file without tags")
	}
}
