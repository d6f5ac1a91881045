package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/platform/audio"
	"github.com/vovakirdan/tui-roids/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session in the terminal.

Controls:
  Left/Right, A/D  - Turn
  Up/W             - Thrust
  Space            - Fire
  P/Esc            - Pause
  R                - Restart
  ?                - Toggle help
  Ctrl+S           - Save a screenshot to ~/.roids/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Spawn interval shrinks slowly from the start
  normal - Starts at 30% of the progression
  hard   - Starts at 70% of the progression
  fixed  - Obstacles spawn at a constant interval

Examples:
  roids play
  roids play --difficulty hard
  roids play --seed 42 --fps 30
  roids play --config ./my-roids.yaml --log-file roids.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logs go nowhere by default; stderr would corrupt the alternate screen
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		// The game is playable without sound
		logger.Warn("audio disabled", "err", err)
	}
	defer sound.Close()

	logger.Info("starting", "width", width, "height", height, "fps", flagFPS,
		"seed", cfg.RNG.Seed, "difficulty", flagDifficulty)

	model := tui.NewModel(tui.Options{
		Game:    cfg,
		Runtime: runtime,
		Audio:   sound,
		Logger:  logger,
	})
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
