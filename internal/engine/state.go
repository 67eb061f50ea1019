package engine

// State is the engine's finite-state-machine label.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseSelf
	CauseObstacle
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseSelf:
		return "self-collision"
	case CauseObstacle:
		return "obstacle-collision"
	case CauseBoardFull:
		return "board-full"
	default:
		return "unknown"
	}
}

// Result summarises a completed game. It is passed to the game over hook.
type Result struct {
	Score     int
	Length    int
	Obstacles int
	Ticks     uint64
	Cause     Cause
}
