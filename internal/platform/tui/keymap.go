package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Column  key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop, k.Column},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " ", "down"),
			key.WithHelp("enter/space", "drop"),
		),
		Column: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "drop in column"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
	}
}

// MapKey translates a key message to a game action.
// Digit keys map to ActionDrop with the zero-based column in col;
// every other action returns col = -1.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, col int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, -1
	case key.Matches(msg, k.Help):
		return core.ActionHelp, -1
	case key.Matches(msg, k.Left):
		return core.ActionLeft, -1
	case key.Matches(msg, k.Right):
		return core.ActionRight, -1
	case key.Matches(msg, k.Drop):
		return core.ActionDrop, -1
	case key.Matches(msg, k.Column):
		return core.ActionDrop, int(msg.Runes[0] - '1')
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, -1
	}
	return core.ActionNone, -1
}
