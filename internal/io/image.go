package ioutils

import (
	"bytes"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService provides image processing operations for cover art.
//
// ImageService is used to shrink the picture embedded in an audio file
// down to a grid small enough to draw with terminal cells.
//
// Example usage:
//
//	svc := NewImageService()
//	thumb, err := svc.Thumbnail(pictureData, 16, 16)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Thumbnail decodes data and scales it to exactly width x height pixels.
//
// The aspect ratio is not preserved: cover art is square in practice and
// the caller picks a cell grid to match. The Catmull-Rom algorithm is used
// for high-quality downscaling.
//
// Returns an error if data is not a decodable JPEG or PNG image, or if the
// requested size is not positive.
func (s *ImageService) Thumbnail(data []byte, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, image.ErrFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	return dst, nil
}
