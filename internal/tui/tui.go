// Package tui provides the Bubble Tea terminal user interface for tune.
package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/tune/internal/audio"
	"github.com/handiism/tune/internal/config"
	ioutils "github.com/handiism/tune/internal/io"
	"github.com/handiism/tune/internal/library"
	"github.com/handiism/tune/internal/lyrics"
	"github.com/handiism/tune/internal/model"
	"github.com/handiism/tune/internal/player"
	"github.com/rs/zerolog/log"
)

// TickInterval is how often the player checks for the end of a track.
const TickInterval = 50 * time.Millisecond

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	playingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))
)

// State represents the current UI state.
type State int

const (
	StateScanning State = iota
	StatePlayer
	StateError
)

// LogEntry represents a scan message in the UI.
type LogEntry struct {
	Message string
	Level   library.ProgressLevel
}

// Options configures the TUI.
type Options struct {
	// MusicDir is the directory scanned for tracks.
	MusicDir string

	// StatePath is the session state file read at startup and written on quit.
	StatePath string

	// Device is the opened audio output.
	Device audio.Device

	// Verbose shows verbose scan messages.
	Verbose bool
}

// eventLog collects scanner events from the probing goroutines until the
// next scan tick drains them.
type eventLog struct {
	mu     sync.Mutex
	events []library.ProgressEvent
}

func (l *eventLog) add(e library.ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) drain() []library.ProgressEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	events := l.events
	l.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state   State
	opts    Options
	session config.SessionState
	err     error

	spinner  spinner.Model
	progress progress.Model
	search   textinput.Model
	help     help.Model
	keys     keyMap

	// Scan
	ctx     context.Context
	cancel  context.CancelFunc
	scanner *library.Scanner
	events  *eventLog
	logs    []LogEntry

	// Player
	ctrl       *player.Controller
	selected   int
	searching  bool
	showHelp   bool
	showLyrics bool

	lyricsPath string
	lyricLines []lyrics.Line

	images    *ioutils.ImageService
	coverPath string
	cover     string

	width  int
	height int
}

// NewModel creates a new TUI model. The session is loaded from
// opts.StatePath.
func NewModel(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 50

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 200
	ti.Width = 40

	ctx, cancel := context.WithCancel(context.Background())
	events := &eventLog{}

	return Model{
		state:      StateScanning,
		opts:       opts,
		session:    config.LoadSession(opts.StatePath),
		spinner:    sp,
		progress:   prog,
		search:     ti,
		help:       help.New(),
		keys:       defaultKeyMap(),
		ctx:        ctx,
		cancel:     cancel,
		scanner:    library.NewScanner(library.DefaultConcurrency, events.add),
		events:     events,
		logs:       make([]LogEntry, 0),
		showLyrics: true,
		images:     ioutils.NewImageService(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startScan(), m.tickScan())
}

// Message types
type (
	// ScanDoneMsg is sent when the library scan completes.
	ScanDoneMsg struct {
		Tracks []*model.Track
		Err    error
	}

	// ScanTickMsg is for periodic scan progress updates.
	ScanTickMsg struct{}

	// TickMsg drives end-of-track detection and status expiry.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StatePlayer:
			return m.handlePlayerKey(msg)
		case StateScanning:
			if msg.String() == "ctrl+c" || msg.String() == "esc" || msg.String() == "q" {
				m.cancel()
				return m, tea.Quit
			}
		case StateError:
			if msg.String() == "ctrl+c" || msg.String() == "esc" || msg.String() == "q" {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		if m.state == StateScanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ScanTickMsg:
		if m.state == StateScanning {
			m.collectLogs()
			scanned, total := m.scanner.GetProgress()
			var percent float64
			if total > 0 {
				percent = float64(scanned) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickScan())
		}

	case ScanDoneMsg:
		m.collectLogs()
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		if err := m.startPlayer(msg.Tracks); err != nil {
			m.state = StateError
			m.err = err
			break
		}
		cmds = append(cmds, m.tickPlayback())

	case TickMsg:
		if m.state == StatePlayer {
			m.ctrl.CheckPlayback()
			m.ctrl.ExpireStatus()
			m.refreshLyrics()
			cmds = append(cmds, m.refreshCover(), m.tickPlayback())
		}

	case coverMsg:
		if msg.Path == m.coverPath {
			m.cover = msg.Art
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// collectLogs moves pending scanner events into the visible log.
func (m *Model) collectLogs() {
	for _, e := range m.events.drain() {
		// Filter verbose messages if not in verbose mode
		if e.Level == library.LevelVerbose && !m.opts.Verbose {
			continue
		}
		m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
	}
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// startPlayer builds the controller over tracks and restores the selection.
func (m *Model) startPlayer(tracks []*model.Track) error {
	ctrl, err := player.New(model.NewCatalog(tracks), m.opts.Device, m.session)
	if err != nil {
		return err
	}

	m.ctrl = ctrl
	m.state = StatePlayer
	m.selected = 0
	if idx, ok := ctrl.Catalog().IndexOf(m.session.LastTrackPath); ok {
		m.selected = idx
	}

	log.Info().Int("tracks", len(tracks)).Str("dir", m.opts.MusicDir).Msg("Library ready")
	return nil
}

func (m Model) handlePlayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), msg.String() == "esc":
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	ctrl := m.ctrl
	catalog := ctrl.Catalog()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < catalog.Len()-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, catalog.Len()-1)
	case key.Matches(msg, m.keys.Play):
		if catalog.Len() > 0 {
			_ = ctrl.Play(m.selected)
		}
	case key.Matches(msg, m.keys.Pause):
		ctrl.TogglePause()
	case key.Matches(msg, m.keys.Stop):
		ctrl.Stop()
	case key.Matches(msg, m.keys.Next):
		_ = ctrl.Next()
	case key.Matches(msg, m.keys.Previous):
		_ = ctrl.PlayPrevious()
	case key.Matches(msg, m.keys.Forward):
		_ = ctrl.SeekBy(player.SeekStep)
	case key.Matches(msg, m.keys.Backward):
		_ = ctrl.SeekBy(-player.SeekStep)
	case key.Matches(msg, m.keys.Jump):
		digit := int(msg.String()[0] - '0')
		_ = ctrl.SeekPercentage(digit * 10)
	case key.Matches(msg, m.keys.VolUp):
		ctrl.IncreaseVolume()
	case key.Matches(msg, m.keys.VolDown):
		ctrl.DecreaseVolume()
	case key.Matches(msg, m.keys.Mute):
		ctrl.ToggleMute()
	case key.Matches(msg, m.keys.Repeat):
		ctrl.CycleRepeat()
	case key.Matches(msg, m.keys.Shuffle):
		ctrl.ToggleShuffle()
	case key.Matches(msg, m.keys.Sort):
		selectedPath := m.selectedPath()
		ctrl.CycleSort()
		if idx, ok := catalog.IndexOf(selectedPath); ok {
			m.selected = idx
		}
	case key.Matches(msg, m.keys.Lyrics):
		m.showLyrics = !m.showLyrics
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		if idx, ok := m.nextMatch(m.search.Value()); ok {
			m.selected = idx
		} else {
			m.ctrl.SetStatus(fmt.Sprintf("No match for %q", m.search.Value()))
		}
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// nextMatch returns the first catalog index matching query after the
// selection, wrapping around to the start.
func (m Model) nextMatch(query string) (int, bool) {
	matches := m.ctrl.Catalog().Search(query)
	if len(matches) == 0 {
		return 0, false
	}
	for _, idx := range matches {
		if idx > m.selected {
			return idx, true
		}
	}
	return matches[0], true
}

func (m Model) selectedPath() string {
	if t := m.ctrl.Catalog().Track(m.selected); t != nil {
		return t.Path
	}
	return ""
}

// quit stops playback, saves the session and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	session := m.ctrl.Shutdown(m.selectedPath())
	session.Save(m.opts.StatePath)
	log.Info().Msg("Session saved, quitting")
	return m, tea.Quit
}

// refreshCover starts loading the cover when the playing track changes.
func (m *Model) refreshCover() tea.Cmd {
	var path string
	if t := m.ctrl.CurrentTrack(); t != nil {
		path = t.Path
	}
	if path == m.coverPath {
		return nil
	}

	m.coverPath = path
	m.cover = ""
	if path == "" {
		return nil
	}
	return loadCover(m.images, path)
}

// refreshLyrics parses the lyrics of the playing track once per track.
// lyricLines stays nil for a track whose lyrics are not timestamped.
func (m *Model) refreshLyrics() {
	track := m.ctrl.CurrentTrack()
	if track == nil {
		m.lyricsPath = ""
		m.lyricLines = nil
		return
	}
	if track.Path != m.lyricsPath {
		m.lyricsPath = track.Path
		m.lyricLines = lyrics.Parse(track.Lyrics)
	}
}

// tickScan returns a command to tick scan progress updates.
func (m Model) tickScan() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return ScanTickMsg{}
	})
}

// tickPlayback returns a command for the next playback check.
func (m Model) tickPlayback() tea.Cmd {
	return tea.Tick(TickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// startScan scans the music directory in the background.
func (m Model) startScan() tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.scanner.Scan(m.ctx, m.opts.MusicDir)
		return ScanDoneMsg{Tracks: tracks, Err: err}
	}
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
