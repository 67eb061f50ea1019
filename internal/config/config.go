// Package config provides YAML-based configuration loading for the snake
// game: board geometry, timing and scoring rules.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// ErrInvalidConfig is returned by Validate for values the engine cannot run with.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config contains all configuration for the snake game.
type Config struct {
	Board  Board  `yaml:"board"`
	Timing Timing `yaml:"timing"`
	Rules  Rules  `yaml:"rules"`
}

// Board defines the logical board size the grid is derived from.
type Board struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
	TopBar   int `yaml:"top_bar"`
}

// Timing defines simulation and frame rates.
type Timing struct {
	MoveDelay time.Duration `yaml:"move_delay"`
	FPS       int           `yaml:"fps"`
}

// Rules defines scoring and obstacle accretion.
type Rules struct {
	FruitReward       int `yaml:"fruit_reward"`
	ObstaclesPerFruit int `yaml:"obstacles_per_fruit"`
	BestScores        int `yaml:"best_scores"`
}

// Grid returns the grid the board geometry produces.
func (c Config) Grid() engine.Grid {
	return engine.GridFromBoard(c.Board.Width, c.Board.Height, c.Board.TileSize, c.Board.TopBar)
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.Board.TileSize <= 0:
		return fmt.Errorf("%w: board.tile_size must be positive, got %d", ErrInvalidConfig, c.Board.TileSize)
	case c.Board.TopBar < 0:
		return fmt.Errorf("%w: board.top_bar must not be negative, got %d", ErrInvalidConfig, c.Board.TopBar)
	case c.Grid().Cols <= 0 || c.Grid().Rows <= 0:
		g := c.Grid()
		return fmt.Errorf("%w: board %dx%d yields a %dx%d grid", ErrInvalidConfig, c.Board.Width, c.Board.Height, g.Cols, g.Rows)
	case c.Grid().Cells() < 2:
		return fmt.Errorf("%w: board %dx%d yields a single cell, no room for fruit", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Timing.MoveDelay <= 0:
		return fmt.Errorf("%w: timing.move_delay must be positive, got %s", ErrInvalidConfig, c.Timing.MoveDelay)
	case c.Timing.FPS <= 0:
		return fmt.Errorf("%w: timing.fps must be positive, got %d", ErrInvalidConfig, c.Timing.FPS)
	case c.Rules.FruitReward <= 0:
		return fmt.Errorf("%w: rules.fruit_reward must be positive, got %d", ErrInvalidConfig, c.Rules.FruitReward)
	case c.Rules.ObstaclesPerFruit <= 0:
		return fmt.Errorf("%w: rules.obstacles_per_fruit must be positive, got %d", ErrInvalidConfig, c.Rules.ObstaclesPerFruit)
	case c.Rules.BestScores <= 0:
		return fmt.Errorf("%w: rules.best_scores must be positive, got %d", ErrInvalidConfig, c.Rules.BestScores)
	}
	return nil
}

// EngineSettings converts the config into engine settings.
func (c Config) EngineSettings() engine.Settings {
	return engine.Settings{
		Grid:              c.Grid(),
		MoveDelay:         c.Timing.MoveDelay,
		FruitReward:       c.Rules.FruitReward,
		ObstaclesPerFruit: c.Rules.ObstaclesPerFruit,
		BestScoresLimit:   c.Rules.BestScores,
	}
}
