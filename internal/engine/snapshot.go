package engine

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of everything a renderer needs. Slices are
// copies; mutating them does not affect the engine.
type Snapshot struct {
	State      State
	Grid       Grid
	Snake      []Point // Head first
	Fruit      Point
	HasFruit   bool
	Obstacles  []Point // Insertion order
	Score      int
	BestScores []int // Descending
	BestLimit  int   // Capacity of BestScores
	Direction  Direction
	Pending    Direction
	Ticks      uint64
	Games      int   // Completed games in this engine
	LastCause  Cause // Why the last game ended
}

// Snapshot returns the current state for presentation.
func (e *Engine) Snapshot() Snapshot {
	snake := make([]Point, len(e.snake))
	copy(snake, e.snake)
	obstacles := make([]Point, len(e.obstacles))
	copy(obstacles, e.obstacles)

	return Snapshot{
		State:      e.state,
		Grid:       e.grid,
		Snake:      snake,
		Fruit:      e.fruit,
		HasFruit:   e.hasFruit,
		Obstacles:  obstacles,
		Score:      e.score,
		BestScores: e.best.Values(),
		BestLimit:  e.settings.BestScoresLimit,
		Direction:  e.direction,
		Pending:    e.pending,
		Ticks:      e.ticks,
		Games:      e.games,
		LastCause:  e.cause,
	}
}

// Head returns the snake head, or false before the first game.
func (s Snapshot) Head() (Point, bool) {
	if len(s.Snake) == 0 {
		return Point{}, false
	}
	return s.Snake[0], true
}

// String returns a compact multi-line description, handy in test failures
// and debug logs.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s, Score: %d, Ticks: %d, Games: %d\n", s.State, s.Score, s.Ticks, s.Games)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", len(s.Snake), s.Direction, s.Pending)
	if head, ok := s.Head(); ok {
		fmt.Fprintf(&b, "Head: %s, Fruit: %s (placed: %v)\n", head, s.Fruit, s.HasFruit)
	}
	fmt.Fprintf(&b, "Obstacles: %d, Best: %v\n", len(s.Obstacles), s.BestScores)
	return b.String()
}
