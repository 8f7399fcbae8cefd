package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pond/internal/platform/tui"
	"github.com/vovakirdan/tui-pond/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [entry]",
	Short: "Play an entry",
	Long: `Start the full pond, or go straight to a study mode's word wall.

Entries:
  fishing   - Welcome screen, then amusement or study (default)
  recall    - Catch the word's fish twenty times
  spelling  - Catch the letters of the word in order
  matching  - Catch the meaning of each word on the page

Controls:
  A/D, Left/Right  - Move the angler (word wall: change page)
  W/S, Up/Down     - Aim the hook depth (menus: move cursor)
  Space            - Cast
  Enter            - Confirm
  Esc/B            - Back, end the round
  P                - Pause
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow fish, gentle speed-up over the round
  normal - Default pace
  hard   - Fast fish from the start
  fixed  - No speed-up during the round

Examples:
  pond play
  pond play recall --words ./words.tsv
  pond play fishing --difficulty hard --seed 42
  pond play --config ./my-pond.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "fishing"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown entry %q, run 'pond list' to see available entries", gameID)
	}

	logger, closeLog := fileLogger()
	defer closeLog()
	configureGames(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating %s: %w", gameID, err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("play", "entry", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
