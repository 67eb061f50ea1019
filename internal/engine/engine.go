package engine

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Engine owns the complete game state. It is not safe for concurrent use:
// a single loop feeds it intents, advances it and reads snapshots.
type Engine struct {
	settings   Settings
	grid       Grid
	rng        Sampler
	logger     *log.Logger
	onGameOver func(Result)

	state State
	best  *BestScores
	games int
	cause Cause

	// Per-game state, rebuilt by NewGame.
	snake     []Point // Head at index 0
	obstacles []Point // Insertion order
	blocked   map[Point]bool
	fruit     Point
	hasFruit  bool
	score     int
	direction Direction
	pending   Direction // Applied on the next tick
	elapsed   time.Duration
	ticks     uint64
}

// New validates the settings and returns an engine on the title screen.
func New(settings Settings, opts ...Option) (*Engine, error) {
	s, err := settings.normalized()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		settings: s,
		grid:     s.Grid,
		logger:   discardLogger(),
		state:    StateTitle,
		best:     NewBestScores(s.BestScoresLimit),
		blocked:  make(map[Point]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e, nil
}

// Settings returns the effective settings after defaults were applied.
func (e *Engine) Settings() Settings {
	return e.settings
}

// State returns the current state machine label.
func (e *Engine) State() State {
	return e.state
}

// NewGame resets the per-game state: a one-cell snake at the grid centre
// heading right, no obstacles, zero score and a fresh fruit. It does not
// change the state machine label; Start does that.
func (e *Engine) NewGame() {
	e.snake = []Point{e.grid.Center()}
	e.obstacles = nil
	e.blocked = make(map[Point]bool)
	e.hasFruit = false
	e.score = 0
	e.direction = DirRight
	e.pending = DirRight
	e.elapsed = 0
	e.ticks = 0
	e.cause = CauseNone

	if p, ok := e.placeFruit(); ok {
		e.fruit = p
		e.hasFruit = true
	}
}

// Apply feeds one intent into the state machine. Intents that do not apply
// to the current state are ignored. It reports whether the engine state
// changed: a legal move repeating the already pending direction returns
// false just like a rejected one, since neither changes anything.
func (e *Engine) Apply(in Intent) bool {
	switch in := in.(type) {
	case Move:
		return e.turn(in.Dir)
	case TogglePause:
		return e.togglePause()
	case Start:
		return e.start()
	}
	return false
}

// turn buffers a direction change. A reversal of the committed direction is
// rejected so a single keypress can never fold the head into the neck.
func (e *Engine) turn(d Direction) bool {
	if e.state != StatePlaying || !d.Valid() {
		return false
	}
	if d == e.direction.Opposite() || d == e.pending {
		return false
	}
	e.pending = d
	return true
}

func (e *Engine) togglePause() bool {
	switch e.state {
	case StatePlaying:
		e.transition(StatePaused)
	case StatePaused:
		e.transition(StatePlaying)
	default:
		return false
	}
	return true
}

func (e *Engine) start() bool {
	if e.state != StateTitle && e.state != StateGameOver {
		return false
	}
	e.NewGame()
	e.transition(StatePlaying)
	if !e.hasFruit {
		e.endGame(CauseBoardFull)
	}
	return true
}

func (e *Engine) transition(to State) {
	e.logger.Debug("state change", "from", e.state, "to", to)
	e.state = to
}

// Advance accumulates elapsed time while playing and runs one tick once the
// accumulator exceeds the move delay. Time spent outside Playing is not
// accumulated, so no tick is owed after a pause. It reports whether a tick ran.
func (e *Engine) Advance(elapsed time.Duration) bool {
	if e.state != StatePlaying {
		return false
	}
	if elapsed > 0 {
		e.elapsed += elapsed
	}
	if e.elapsed <= e.settings.MoveDelay {
		return false
	}
	e.step()
	e.elapsed = 0
	return true
}

// step moves the snake one cell.
func (e *Engine) step() {
	e.ticks++
	e.direction = e.pending

	dx, dy := e.direction.Delta()
	newHead := e.grid.Wrap(e.snake[0].Add(dx, dy))

	// The whole current body counts, including the tail that would vacate.
	if e.isSnakeAt(newHead) {
		e.endGame(CauseSelf)
		return
	}
	if e.blocked[newHead] {
		e.endGame(CauseObstacle)
		return
	}

	e.snake = append([]Point{newHead}, e.snake...)

	if e.hasFruit && newHead == e.fruit {
		e.eat()
		return
	}
	e.snake = e.snake[:len(e.snake)-1]
}

// eat scores the fruit under the head, relocates it and grows the obstacle
// field. The snake keeps its new head without dropping the tail.
func (e *Engine) eat() {
	e.score += e.settings.FruitReward
	e.hasFruit = false

	p, ok := e.placeFruit()
	if !ok {
		e.endGame(CauseBoardFull)
		return
	}
	e.fruit = p
	e.hasFruit = true

	if !e.placeObstacles(e.settings.ObstaclesPerFruit) {
		e.endGame(CauseBoardFull)
	}
}

func (e *Engine) isSnakeAt(p Point) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// endGame enters GameOver and records the score.
func (e *Engine) endGame(cause Cause) {
	e.cause = cause
	e.transition(StateGameOver)
	e.best.Record(e.score)
	e.games++

	res := Result{
		Score:     e.score,
		Length:    len(e.snake),
		Obstacles: len(e.obstacles),
		Ticks:     e.ticks,
		Cause:     cause,
	}
	e.logger.Debug("game over",
		"score", res.Score,
		"length", res.Length,
		"obstacles", res.Obstacles,
		"ticks", res.Ticks,
		"cause", res.Cause,
	)
	if e.onGameOver != nil {
		e.onGameOver(res)
	}
}
