package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIntentForKeyPlaying(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   engine.Intent
		wantOK bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, engine.Move{Dir: engine.DirUp}, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, engine.Move{Dir: engine.DirDown}, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, engine.Move{Dir: engine.DirLeft}, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, engine.Move{Dir: engine.DirRight}, true},
		{"w", runeKey('w'), engine.Move{Dir: engine.DirUp}, true},
		{"a", runeKey('a'), engine.Move{Dir: engine.DirLeft}, true},
		{"s", runeKey('s'), engine.Move{Dir: engine.DirDown}, true},
		{"d", runeKey('d'), engine.Move{Dir: engine.DirRight}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, engine.TogglePause{}, true},
		{"p", runeKey('p'), engine.TogglePause{}, true},
		{"unbound", runeKey('x'), nil, false},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, nil, false},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.IntentForKey(tt.msg, engine.StatePlaying)
			if ok != tt.wantOK {
				t.Fatalf("IntentForKey(%q) ok = %v, expected %v", tt.msg.String(), ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("IntentForKey(%q) = %#v, expected %#v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestAnyKeyStarts(t *testing.T) {
	km := DefaultKeyMap()

	for _, state := range []engine.State{engine.StateTitle, engine.StateGameOver} {
		for _, msg := range []tea.KeyMsg{runeKey('x'), runeKey('w'), {Type: tea.KeyEnter}, {Type: tea.KeySpace, Runes: []rune{' '}}} {
			got, ok := km.IntentForKey(msg, state)
			if !ok || got != (engine.Start{}) {
				t.Errorf("%s: key %q gave %#v, %v; expected Start", state, msg.String(), got, ok)
			}
		}

		if _, ok := km.IntentForKey(tea.KeyMsg{Type: tea.KeyEsc}, state); ok {
			t.Errorf("%s: esc should never start a game", state)
		}
	}
}

func TestPausedOnlyResumes(t *testing.T) {
	km := DefaultKeyMap()

	got, ok := km.IntentForKey(runeKey('p'), engine.StatePaused)
	if !ok || got != (engine.TogglePause{}) {
		t.Errorf("p while paused = %#v, %v; expected TogglePause", got, ok)
	}
	// Only bound keys produce intents while paused.
	got, ok = km.IntentForKey(runeKey('x'), engine.StatePaused)
	if ok {
		t.Errorf("unbound key while paused = %#v, expected nothing", got)
	}
}

func TestIntentForMouse(t *testing.T) {
	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	wheel := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}

	if in, ok := IntentForMouse(press, engine.StateTitle); !ok || in != (engine.Start{}) {
		t.Errorf("click on title = %#v, %v; expected Start", in, ok)
	}
	if in, ok := IntentForMouse(press, engine.StateGameOver); !ok || in != (engine.Start{}) {
		t.Errorf("click on game over = %#v, %v; expected Start", in, ok)
	}
	if _, ok := IntentForMouse(press, engine.StatePlaying); ok {
		t.Error("click while playing should do nothing")
	}
	if _, ok := IntentForMouse(release, engine.StateTitle); ok {
		t.Error("button release should do nothing")
	}
	if _, ok := IntentForMouse(wheel, engine.StateTitle); ok {
		t.Error("wheel should do nothing")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 7 {
		t.Errorf("FullHelp lists %d bindings, expected 7", n)
	}
}
