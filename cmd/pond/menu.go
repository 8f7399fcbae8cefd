package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pond/internal/platform/tui"
	"github.com/vovakirdan/tui-pond/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start pond with an entry picker menu",
	Long: `Start pond in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an entry.
Quitting an entry returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select entry
  Tab          - Best scores
  H            - Study history
  Q            - Quit

Examples:
  pond menu
  pond menu --fps 30
  pond menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := fileLogger()
	defer closeLog()
	configureGames(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	boards := tui.ScoreBoards(loadConfig().Session.TimeOptions)

	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScores:
			goBack, err := tui.RunScoreboard(store, boards, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		case res.WantsHistory:
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(res.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating entry: %v\n", err)
				continue
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			logger.Info("play", "entry", res.GameID)
			if err := tui.Run(game, store, cfg, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running entry: %v\n", err)
			}
		}
	}
}
