package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultFPS matches the frame cap of the classic desktop version.
const DefaultFPS = 30

// Default returns the hard-coded configuration, identical to the embedded YAML.
func Default() Config {
	return Config{
		Board: Board{
			Width:    engine.DefaultBoardWidth,
			Height:   engine.DefaultBoardHeight,
			TileSize: engine.DefaultTileSize,
			TopBar:   engine.DefaultTopBarHeight,
		},
		Timing: Timing{
			MoveDelay: engine.DefaultMoveDelay,
			FPS:       DefaultFPS,
		},
		Rules: Rules{
			FruitReward:       engine.DefaultFruitReward,
			ObstaclesPerFruit: engine.DefaultObstaclesPerEat,
			BestScores:        engine.DefaultBestScoresLimit,
		},
	}
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
