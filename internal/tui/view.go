package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/tune/internal/library"
	"github.com/handiism/tune/internal/lyrics"
	"github.com/handiism/tune/internal/player"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ tune"))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(m.opts.MusicDir))
	b.WriteString("\n\n")

	switch m.state {
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StatePlayer:
		b.WriteString(m.viewPlayer())
	case StateError:
		b.WriteString(m.viewError())
	}

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning music directory..."))
	b.WriteString("\n\n")

	scanned, total := m.scanner.GetProgress()
	b.WriteString(m.progress.View())
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", scanned, total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("esc: cancel"))

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("q: quit"))

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, entry := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch entry.Level {
		case library.LevelError:
			style = errorStyle
			prefix = "✗"
		case library.LevelWarning:
			style = warningStyle
			prefix = "!"
		case library.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case library.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + entry.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewPlayer() string {
	if m.showHelp {
		return boxStyle.Render(m.help.FullHelpView(m.keys.FullHelp())) +
			"\n" + dimStyle.Render("h/esc: close help • q: quit")
	}

	var b strings.Builder

	top := m.viewNowPlaying()
	if m.cover != "" {
		top = lipgloss.JoinHorizontal(lipgloss.Top, m.cover, "  ", top)
	}
	b.WriteString(top)
	b.WriteString("\n\n")

	height := 20
	if m.height > 0 {
		height = max(3, m.height-lipgloss.Height(top)-7)
	}
	width := 80
	if m.width > 0 {
		width = m.width
	}

	track := m.ctrl.CurrentTrack()
	if m.showLyrics && track != nil && track.HasLyrics() {
		listWidth := width * 55 / 100
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewTracks(height, listWidth),
			m.viewLyrics(height-2, width-listWidth-4),
		))
	} else {
		b.WriteString(m.viewTracks(height, width))
	}
	b.WriteString("\n")

	switch {
	case m.searching:
		b.WriteString(m.search.View())
	default:
		if msg, ok := m.ctrl.Status(); ok {
			b.WriteString(warningStyle.Render(msg.Text))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return b.String()
}

func (m Model) viewNowPlaying() string {
	ctrl := m.ctrl
	var b strings.Builder

	icon := "■"
	switch ctrl.State() {
	case player.Playing:
		icon = "▶"
	case player.Paused:
		icon = "⏸"
	}

	track := ctrl.CurrentTrack()
	if track == nil {
		b.WriteString(dimStyle.Render(icon + " Nothing playing"))
	} else {
		b.WriteString(playingStyle.Render(icon + " " + track.DisplayName()))
	}
	b.WriteString("\n")

	var (
		pos     = ctrl.Position()
		length  time.Duration
		percent float64
	)
	if track != nil {
		length = track.Length()
	}
	if length > 0 {
		percent = min(1, float64(pos)/float64(length))
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString(" ")
	b.WriteString(infoStyle.Render(formatDuration(pos) + " / " + formatDuration(length)))
	b.WriteString("\n")

	volume := fmt.Sprintf("Vol %d%%", int(ctrl.Volume()*100+0.5))
	if ctrl.Muted() {
		volume = "Muted"
	}
	shuffle := "Off"
	if ctrl.Shuffle() {
		shuffle = "On"
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf(
		"%s • %s • Shuffle %s • Repeat %s • Sort %s",
		ctrl.State(), volume, shuffle, ctrl.Repeat(), ctrl.SortMode(),
	)))

	return b.String()
}

func (m Model) viewTracks(height, width int) string {
	catalog := m.ctrl.Catalog()
	if catalog.Len() == 0 {
		return dimStyle.Render(fmt.Sprintf("No audio files found in %s", m.opts.MusicDir))
	}

	playing, isPlaying := m.ctrl.Playing()
	start, end := lyrics.Window(catalog.Len(), m.selected, height)

	var lines []string
	for i := start; i < end; i++ {
		name := truncate(catalog.Track(i).DisplayName(), width-4)
		marker := "  "
		if isPlaying && i == playing {
			marker = "♪ "
		}

		switch {
		case i == m.selected:
			lines = append(lines, selectedStyle.Render("> "+name))
		case isPlaying && i == playing:
			lines = append(lines, playingStyle.Render(marker+name))
		default:
			lines = append(lines, marker+name)
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewLyrics(height, width int) string {
	track := m.ctrl.CurrentTrack()
	if height <= 0 || width <= 0 || track == nil {
		return ""
	}

	var lines []string
	if len(m.lyricLines) == 0 {
		// Not timestamped, show the text as is.
		raw := strings.Split(strings.TrimSpace(track.Lyrics), "\n")
		for _, l := range raw[:min(len(raw), height)] {
			lines = append(lines, dimStyle.Render(truncate(strings.TrimSpace(l), width)))
		}
	} else {
		active := lyrics.ActiveLine(m.lyricLines, m.ctrl.Position())
		start, end := lyrics.Window(len(m.lyricLines), active, height)
		for i := start; i < end; i++ {
			text := truncate(m.lyricLines[i].Text, width)
			if i == active {
				lines = append(lines, selectedStyle.Render(text))
			} else {
				lines = append(lines, dimStyle.Render(text))
			}
		}
	}

	return boxStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// formatDuration renders d as m:ss.
func formatDuration(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
