package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pond/internal/logging"
	"github.com/vovakirdan/tui-pond/internal/study"
)

var flagWordsPage int

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the word list as word wall pages",
	Long: `Load the word list the study modes would use and print it page by page.

The list comes from --words, then study.word_list in the config, then the
built-in ten words.

Examples:
  pond words
  pond words --words ./words.tsv --page 2`,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagWordsPage, "page", 0, "Print only this page (1-based)")
}

func runWords(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	path := cfg.Study.WordList
	if flagWords != "" {
		path = flagWords
	}

	logger := logging.New("pond", cmd.ErrOrStderr())
	pages := study.Pages(study.Load(path, logger), cfg.Study.WordsPerPage)
	if flagWordsPage < 0 || flagWordsPage > len(pages) {
		return fmt.Errorf("page %d out of range, the list has %d pages", flagWordsPage, len(pages))
	}

	out := cmd.OutOrStdout()
	for i, page := range pages {
		if flagWordsPage != 0 && i+1 != flagWordsPage {
			continue
		}
		fmt.Fprintf(out, "Page %d/%d\n", i+1, len(pages))
		for _, w := range page {
			fmt.Fprintf(out, "  %-16s  %s\n", w.Word, w.Meaning)
		}
		fmt.Fprintln(out)
	}
	return nil
}
