package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/midway/internal/registry"
	"github.com/vovakirdan/midway/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <edition>",
	Short: "Show high scores for an edition",
	Long: `Display the best runs of the specified edition.

Examples:
  midway scores midway
  midway scores midway_coins --limit 20
  midway scores midway_classic --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every run of the edition")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w; run 'midway list' to see available editions", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'midway play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-7s  %-3s  %s\n", "Rank", "Kills", "Lives", "Time", "POW", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-7s  %-3s  %s\n", "----", "-----", "-----", "----", "---", "----")
	for i, r := range runs {
		pow := ""
		if r.PowerUpCollected {
			pow = "*"
		}
		played := time.Duration(r.Ticks) * time.Second / time.Duration(max(flagFPS, 1)) //#nosec G115
		fmt.Printf("  %-4d  %-6d  %-5d  %-7s  %-3s  %s\n",
			i+1, r.Score, r.LivesLeft, played.Round(time.Second), pow, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if st, err := store.Stats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Power-ups: %d\n", st.HighScore, st.Runs, st.AvgScore, st.PowerUps)
	}
	return nil
}
