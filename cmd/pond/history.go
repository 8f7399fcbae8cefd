package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pond/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:       "history [mode]",
	Short:     "Show recent study rounds",
	Long:      `List recent recall, spelling and matching rounds, newest first.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"recall", "spelling", "matching"},
	RunE:      runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of rounds to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	sessions, err := store.RecentStudySessions(mode, flagHistoryLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No study rounds recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-8s  %-4s  %-16s  %-6s  %s\n", "Date", "Mode", "Page", "Word", "Result", "Errors")
	for _, s := range sessions {
		result := "left"
		if s.Completed {
			result = "done"
		}
		word := s.Word
		if word == "" {
			word = "-"
		}
		fmt.Fprintf(out, "  %-16s  %-8s  %-4d  %-16s  %-6s  %d\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Mode, s.Page, word, result, s.Errors)
	}

	totals, err := store.StudySummary()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	for _, t := range totals {
		fmt.Fprintf(out, "  %-8s  %d rounds, %d completed, %d errors\n", t.Mode, t.Rounds, t.Completed, t.Errors)
	}
	return nil
}
