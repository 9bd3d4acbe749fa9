package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/babaam/internal/platform/tui"
	"github.com/vovakirdan/babaam/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [dimension]",
	Short: "Show high scores",
	Long: `Display the top scores. Scores are grouped by playfield dimension
(terminal width x height) since runs on different field sizes are not
comparable. Without an argument the current terminal's dimension is used.

Examples:
  babaam scores
  babaam scores 80x24
  babaam scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a full-screen table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagInteractive {
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	dimension := fmt.Sprintf("%dx%d", width, height)
	if len(args) == 1 {
		dimension = args[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	scores, err := store.TopScores(ctx, dimension, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores [%s]\n", dimension)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'babaam play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-4s  %-8s  %-6s  %-12s  %s\n", "Rank", "Name", "Score", "Kills", "Cause", "Date")
	fmt.Printf("  %-4s  %-4s  %-8s  %-6s  %-12s  %s\n", "----", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-4s  %-8d  %-6d  %-12s  %s\n",
			i+1, entry.Initials, entry.Score, entry.Kills, entry.Cause, dateStr)
	}

	if stats, err := store.GetStats(ctx, dimension); err == nil && stats.RunCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n",
			stats.RunCount, stats.HighScore, stats.AvgScore)
	}
}
