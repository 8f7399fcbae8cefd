package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pond/internal/games/fishing"
	"github.com/vovakirdan/tui-pond/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [minutes]",
	Short: "Show best scores per round length",
	Long: `Display the top 10 scores for each round length, or for one length.

Examples:
  pond scores
  pond scores 2
  pond scores 3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var flagClearScores bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the saved scores instead of showing them")
}

func runScores(cmd *cobra.Command, args []string) error {
	minutes := loadConfig().Session.TimeOptions
	if len(args) == 1 {
		m, err := strconv.Atoi(args[0])
		if err != nil || m <= 0 {
			return fmt.Errorf("invalid round length %q, expected minutes such as 1, 2 or 3", args[0])
		}
		minutes = []int{m}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClearScores {
		for _, m := range minutes {
			if err := store.ClearScores(fishing.ScoreKey(m)); err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleared %d minute scores.\n", m)
		}
		return nil
	}

	for i, m := range minutes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printBoard(out, store, m); err != nil {
			return err
		}
	}
	return nil
}

func printBoard(out io.Writer, store *storage.Store, minutes int) error {
	key := fishing.ScoreKey(minutes)
	scores, err := store.TopScores(key, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "Best Scores - %d minute round\n\n", minutes)
	if len(scores) == 0 {
		fmt.Fprintln(out, "  No rounds finished yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(key)
	if err == nil {
		fmt.Fprintf(out, "\nBest: %d   Rounds: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
