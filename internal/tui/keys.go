package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the player key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Play     key.Binding
	Pause    key.Binding
	Stop     key.Binding
	Next     key.Binding
	Previous key.Binding
	Forward  key.Binding
	Backward key.Binding
	Jump     key.Binding
	VolUp    key.Binding
	VolDown  key.Binding
	Mute     key.Binding
	Repeat   key.Binding
	Shuffle  key.Binding
	Sort     key.Binding
	Lyrics   key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Play:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		Pause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Stop:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Previous: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		Forward:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "+5s")),
		Backward: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "-5s")),
		Jump:     key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "seek 0-90%")),
		VolUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "volume down")),
		Mute:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Repeat:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat")),
		Shuffle:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "shuffle")),
		Sort:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		Lyrics:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lyrics")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Help:     key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Pause, k.Next, k.Previous, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Play, k.Search},
		{k.Pause, k.Stop, k.Next, k.Previous, k.Forward, k.Backward, k.Jump},
		{k.VolUp, k.VolDown, k.Mute, k.Repeat, k.Shuffle, k.Sort},
		{k.Lyrics, k.Help, k.Quit},
	}
}
