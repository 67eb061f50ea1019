package engine

// Intent is a discrete player request, already translated from raw device
// events by the platform layer. The set of intents is closed: Move,
// TogglePause and Start.
type Intent interface {
	intent()
}

// Move asks the snake to turn. Only honoured while playing.
type Move struct {
	Dir Direction
}

// TogglePause switches between playing and paused.
type TogglePause struct{}

// Start begins a new game from the title or game over screen.
type Start struct{}

func (Move) intent()        {}
func (TogglePause) intent() {}
func (Start) intent()       {}
