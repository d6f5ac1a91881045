// roids is an asteroids-style arcade game for the terminal.
//
// Usage:
//
//	roids play               - Play in the terminal (default)
//	roids sim --ticks N      - Run the simulation headless and print its fingerprint
//	roids config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Override the RNG seed (0 keeps the configured seed)
//	--config <path>       - Path to a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/rng"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roids",
	Short: "Roids - steer, thrust and shoot in your terminal",
	Long: `Roids is an asteroids-style arcade game that runs in your terminal.

Available commands:
  play     - Play the game (default)
  sim      - Run the simulation headless
  config   - Print the effective configuration

Examples:
  roids
  roids play --difficulty hard
  roids sim --ticks 3600 --script fire-every=30,turn=1
  roids config > my-roids.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = configured seed)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Output goes to --log-file when set,
// otherwise to fallback. The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roids",
	})
	logger.SetLevel(level)
	return logger, closer, nil
}

// loadConfig resolves the game config from flags: file search, difficulty
// preset and seed override, in that order.
func loadConfig() (config.RoidsConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RoidsConfig{}, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.RoidsConfig{}, fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagSeed != 0 {
		cfg.RNG.Seed = rng.FromSeed(flagSeed).State()
	}
	return cfg, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
