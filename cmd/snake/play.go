package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start the game on the title screen.

Controls:
  Arrows/WASD  - Steer
  Space/P      - Pause and resume
  Any key      - Start (title and game over screens)
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots
  Esc/Ctrl+C   - Quit

Examples:
  snake play
  snake play --seed 42 --fps 60
  snake play --log-level debug --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	journal, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open game journal: %v\n", err)
		// Continue without a journal - game still works
		journal = nil
	}
	if journal != nil {
		defer journal.Close()
	}

	runErr := tui.Run(tui.Options{
		Settings: cfg.EngineSettings(),
		FPS:      cfg.Timing.FPS,
		Seed:     flagSeed,
		Journal:  journal,
		Player:   playerName(),
		Logger:   logger,
		Width:    width,
		Height:   height,
	})
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
