package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults mirror the classic desktop version: an 800x600 board with 20px
// tiles and a 30px HUD bar, one move every 100ms.
const (
	DefaultBoardWidth      = 800
	DefaultBoardHeight     = 600
	DefaultTileSize        = 20
	DefaultTopBarHeight    = 30
	DefaultMoveDelay       = 100 * time.Millisecond
	DefaultFruitReward     = 10
	DefaultObstaclesPerEat = 2
	DefaultBestScoresLimit = 5
)

// Settings parameterizes an engine. Non-positive reward, obstacle and limit
// fields fall back to the defaults.
type Settings struct {
	Grid              Grid
	MoveDelay         time.Duration
	FruitReward       int
	ObstaclesPerFruit int
	BestScoresLimit   int
}

// DefaultSettings returns the classic configuration (40x28 grid).
func DefaultSettings() Settings {
	return Settings{
		Grid:              GridFromBoard(DefaultBoardWidth, DefaultBoardHeight, DefaultTileSize, DefaultTopBarHeight),
		MoveDelay:         DefaultMoveDelay,
		FruitReward:       DefaultFruitReward,
		ObstaclesPerFruit: DefaultObstaclesPerEat,
		BestScoresLimit:   DefaultBestScoresLimit,
	}
}

func (s Settings) normalized() (Settings, error) {
	if err := s.Grid.validate(); err != nil {
		return s, err
	}
	if s.MoveDelay <= 0 {
		return s, fmt.Errorf("%w: %s", ErrInvalidMoveDelay, s.MoveDelay)
	}
	if s.FruitReward <= 0 {
		s.FruitReward = DefaultFruitReward
	}
	if s.ObstaclesPerFruit <= 0 {
		s.ObstaclesPerFruit = DefaultObstaclesPerEat
	}
	if s.BestScoresLimit <= 0 {
		s.BestScoresLimit = DefaultBestScoresLimit
	}
	return s, nil
}

// Sampler is the source of randomness used for placement. *rand.Rand
// satisfies it; tests supply scripted sequences.
type Sampler interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSampler injects the random source used for fruit and obstacle placement.
func WithSampler(s Sampler) Option {
	return func(e *Engine) {
		if s != nil {
			e.rng = s
		}
	}
}

// WithSeed uses a math/rand source seeded with seed. A zero seed keeps the
// time-based default.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithGameOverHook registers a callback invoked once per completed game,
// after the best scores have been updated.
func WithGameOverHook(fn func(Result)) Option {
	return func(e *Engine) {
		e.onGameOver = fn
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
