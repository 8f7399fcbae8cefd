// pond is a terminal fishing game with vocabulary study modes.
//
// Usage:
//
//	pond list              - List playable entries
//	pond play [entry]      - Play an entry (default: fishing)
//	pond menu              - Pick entries from an interactive menu
//	pond serve             - Start SSH server for remote play
//	pond scores [minutes]  - Show best scores per round length
//	pond history [mode]    - Show recent study rounds
//	pond words             - Print the word list pages
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible play
//	--db <path>          - Set database path (default: ~/.pond/scores.db)
//	--config <path>      - Custom fishing config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--words <path>       - Word list file (word<TAB>meaning per line)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pond/internal/config"
	"github.com/vovakirdan/tui-pond/internal/core"
	"github.com/vovakirdan/tui-pond/internal/games/fishing"
	"github.com/vovakirdan/tui-pond/internal/logging"
	"github.com/vovakirdan/tui-pond/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWords      string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pond",
	Short: "Pond - fish and learn words in your terminal",
	Long: `Pond is a terminal fishing game. Cast a hook into the pond, catch fish
before the clock runs out, or use the study modes to practise vocabulary:
recall a word, spell it letter by letter, or match words to meanings.

Available commands:
  list     - Show all playable entries
  play     - Play an entry directly
  menu     - Interactive entry picker
  serve    - Start SSH server for remote play
  scores   - View best scores per round length
  history  - View recent study rounds
  words    - Print the loaded word list

Examples:
  pond play
  pond play spelling --words ./words.tsv
  pond menu --difficulty hard
  pond serve --ssh :2222
  pond scores 2`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.pond/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom fishing config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagWords, "words", "", "Word list file, one word<TAB>meaning per line")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(wordsCmd)
}

// configureGames passes the global game flags to the fishing package.
func configureGames(logger *log.Logger) {
	fishing.SetConfigPath(flagConfig)
	fishing.SetDifficultyPreset(flagDifficulty)
	fishing.SetWordsPath(flagWords)
	fishing.SetLogger(logger)
}

// fileLogger logs to ~/.pond/pond.log, since the alt screen owns stdout
// during play. The returned close func is never nil.
func fileLogger() (*log.Logger, func()) {
	path := config.AppPath("pond.log")
	if path == "" {
		return logging.Discard(), func() {}
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), func() {}
	}
	logger := logging.New("pond", f)
	if err := logging.SetLevel(logger, flagLogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return logger, func() { f.Close() }
}

// runtimeConfig sizes the screen from the terminal, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database, degrading to nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without persistence", "err", err)
		return nil
	}
	return store
}

// loadConfig loads the fishing config the way the game does.
func loadConfig() config.FishingConfig {
	cfg, err := config.LoadFishing(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return config.DefaultFishingConfig()
	}
	return cfg
}
