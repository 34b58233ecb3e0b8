package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the key bindings of a game session. It implements
// help.KeyMap for the help line under the board.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:     binding(cfg.Up, "up"),
		Down:   binding(cfg.Down, "down"),
		Left:   binding(cfg.Left, "left"),
		Right:  binding(cfg.Right, "right"),
		Toggle: binding(cfg.Toggle, "start/pause"),
		Reset:  binding(cfg.Reset, "reset"),
		Quit:   binding(cfg.Quit, "quit"),
		Help:   binding(cfg.Help, "more"),
	}
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyLabel returns the printable name of a key.
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp returns bindings for the compact help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Quit, k.Help}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Reset, k.Quit, k.Help},
	}
}

// ToggleLabel names the first start/pause key, for overlays.
func (k KeyMap) ToggleLabel() string {
	keys := k.Toggle.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keyLabel(keys[0])
}

// Action translates a key message to a game action.
// Quit is checked first so it can never be shadowed by a game binding.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Toggle):
		return core.ActionToggle
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
