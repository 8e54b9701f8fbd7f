package ioutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile_CreatesDirAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the target file", len(entries))
	}
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	svc := NewImageService()
	thumb, err := svc.Thumbnail(buf.Bytes(), 8, 6)
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}
	if b := thumb.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("Thumbnail bounds = %v, want 8x6", b)
	}

	r, _, _, _ := thumb.At(4, 3).RGBA()
	if r>>8 < 190 {
		t.Errorf("red channel = %d, want close to 200", r>>8)
	}
}

func TestThumbnail_Invalid(t *testing.T) {
	svc := NewImageService()
	if _, err := svc.Thumbnail([]byte("not an image"), 4, 4); err == nil {
		t.Error("expected error for undecodable data")
	}
	if _, err := svc.Thumbnail(nil, 0, 4); err == nil {
		t.Error("expected error for zero width")
	}
}
