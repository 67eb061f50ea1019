package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows or WASD to steer,
// space or p to pause.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// IntentForKey translates a key press to an engine intent for the given
// state. On the title and game over screens any key starts a game; while
// playing only steering and pause keys mean something. Quit and screenshot
// keys are handled by the model and never produce an intent.
func (k KeyMap) IntentForKey(msg tea.KeyMsg, state engine.State) (engine.Intent, bool) {
	if key.Matches(msg, k.Quit, k.Screenshot) {
		return nil, false
	}

	switch state {
	case engine.StateTitle, engine.StateGameOver:
		return engine.Start{}, true
	}

	switch {
	case key.Matches(msg, k.Pause):
		return engine.TogglePause{}, true
	case key.Matches(msg, k.Up):
		return engine.Move{Dir: engine.DirUp}, true
	case key.Matches(msg, k.Down):
		return engine.Move{Dir: engine.DirDown}, true
	case key.Matches(msg, k.Left):
		return engine.Move{Dir: engine.DirLeft}, true
	case key.Matches(msg, k.Right):
		return engine.Move{Dir: engine.DirRight}, true
	}
	return nil, false
}

// IntentForMouse translates a mouse event. Only a button press does
// anything, and only where any key would start a game.
func IntentForMouse(msg tea.MouseMsg, state engine.State) (engine.Intent, bool) {
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return nil, false
	}
	if state == engine.StateTitle || state == engine.StateGameOver {
		return engine.Start{}, true
	}
	return nil, false
}
