// babaam is a terminal side-scrolling space shooter.
//
// Usage:
//
//	babaam play              - Play the game
//	babaam scores            - Show high scores
//	babaam serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.babaam/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "babaam",
	Short: "BA-BAAM! - A side-scrolling space shooter in your terminal",
	Long: `BA-BAAM! is a terminal-based space shooter. Pilot your ship, hold the
left wall against waves of hostiles, and work through three weapon systems
ending in an overheating energy beam.

Available commands:
  play     - Start a run
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  babaam play
  babaam play --difficulty hard
  babaam serve --ssh :2222
  babaam scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.babaam/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
