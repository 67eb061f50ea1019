package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultGrid(t *testing.T) {
	g := Default().Grid()
	if g.Cols != 40 || g.Rows != 28 {
		t.Errorf("Grid() = %dx%d, expected 40x28", g.Cols, g.Rows)
	}

	s := Default().EngineSettings()
	if s.MoveDelay != 100*time.Millisecond {
		t.Errorf("MoveDelay = %s, expected 100ms", s.MoveDelay)
	}
	if s.FruitReward != 10 || s.ObstaclesPerFruit != 2 || s.BestScoresLimit != 5 {
		t.Errorf("Unexpected rules: %+v", s)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  width: 200\n  height: 230\ntiming:\n  move_delay: 250ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	g := cfg.Grid()
	if g.Cols != 10 || g.Rows != 10 {
		t.Errorf("Grid() = %dx%d, expected 10x10", g.Cols, g.Rows)
	}
	if cfg.Timing.MoveDelay != 250*time.Millisecond {
		t.Errorf("MoveDelay = %s, expected 250ms", cfg.Timing.MoveDelay)
	}
	// Unset keys keep their defaults.
	if cfg.Rules.FruitReward != 10 || cfg.Timing.FPS != DefaultFPS {
		t.Errorf("Partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tile", func(c *Config) { c.Board.TileSize = 0 }},
		{"negative top bar", func(c *Config) { c.Board.TopBar = -1 }},
		{"board smaller than tile", func(c *Config) { c.Board.Width = 10 }},
		{"top bar eats the board", func(c *Config) { c.Board.TopBar = c.Board.Height }},
		{"single cell board", func(c *Config) { c.Board.Width, c.Board.Height = 20, 50 }},
		{"zero delay", func(c *Config) { c.Timing.MoveDelay = 0 }},
		{"zero fps", func(c *Config) { c.Timing.FPS = 0 }},
		{"zero reward", func(c *Config) { c.Rules.FruitReward = 0 }},
		{"zero obstacles", func(c *Config) { c.Rules.ObstaclesPerFruit = 0 }},
		{"zero best scores", func(c *Config) { c.Rules.BestScores = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestValidConfigBuildsEngine(t *testing.T) {
	boards := []Board{
		{Width: 40, Height: 50, TileSize: 20, TopBar: 30}, // 2x1
		{Width: 20, Height: 70, TileSize: 20, TopBar: 30}, // 1x2
		Default().Board,
	}
	for _, b := range boards {
		cfg := Default()
		cfg.Board = b
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, expected nil", b, err)
			continue
		}
		if _, err := engine.New(cfg.EngineSettings()); err != nil {
			t.Errorf("engine.New rejected a validated config %+v: %v", b, err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "move_delay: 100ms") {
		t.Errorf("Marshal() should render durations as strings:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Round trip changed the config: %+v", cfg)
	}
}
