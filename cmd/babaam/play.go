package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/babaam/internal/core"
	"github.com/vovakirdan/babaam/internal/platform/tui"
	"github.com/vovakirdan/babaam/internal/sim"
	"github.com/vovakirdan/babaam/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start playing.

Controls:
  W/A/S/D, Arrows - Move ship
  Space           - Fire (hold for the beam)
  1/2/3           - Select weapon
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower spawn ramp, extra starting health
  normal - Default pacing
  hard   - Faster ramp, less starting health
  fixed  - No progression, stays at the config's initial level

Examples:
  babaam play
  babaam play --difficulty hard
  babaam play --seed 12345
  babaam play --config ./my-babaam.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size for the playfield
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sim.SetConfigPath(flagConfig)
	sim.SetDifficultyPreset(flagDifficulty)

	game := sim.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
