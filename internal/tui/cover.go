package tui

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/tune/internal/audio"
	ioutils "github.com/handiism/tune/internal/io"
	"github.com/rs/zerolog/log"
)

// Cover art size in terminal cells. Each cell draws two pixel rows.
const (
	coverWidth  = 12
	coverHeight = 6
)

// coverMsg carries the rendered cover of the track at Path.
// Art is empty when the track has no usable picture.
type coverMsg struct {
	Path string
	Art  string
}

// loadCover reads and renders the embedded picture of path off the update loop.
func loadCover(images *ioutils.ImageService, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := audio.ReadPicture(path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("No cover art")
			return coverMsg{Path: path}
		}

		thumb, err := images.Thumbnail(data, coverWidth, coverHeight*2)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("Cover art not decodable")
			return coverMsg{Path: path}
		}

		return coverMsg{Path: path, Art: renderHalfBlocks(thumb)}
	}
}

// renderHalfBlocks draws img with upper half blocks: the foreground colors
// the top pixel of a cell and the background the bottom one.
func renderHalfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img, x, y))
			if y+1 < b.Max.Y {
				style = style.Background(hexColor(img, x, y+1))
			}
			sb.WriteString(style.Render("▀"))
		}
		if y+2 < b.Max.Y {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
