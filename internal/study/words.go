// Package study holds the vocabulary side of pond: the word list, the
// per-mode progress state and the judging of caught fish.
package study

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pond/internal/logging"
)

// ErrNoWords is returned when a word source yields no usable entries.
var ErrNoWords = errors.New("study: no words")

// WordEntry is one vocabulary item. Lists keep file order.
type WordEntry struct {
	Word    string
	Meaning string
}

var defaultWords = []WordEntry{
	{Word: "access", Meaning: "v. obtain; n. a way in"},
	{Word: "project", Meaning: "n. a planned piece of work"},
	{Word: "intention", Meaning: "n. a plan or aim"},
	{Word: "negotiate", Meaning: "v. discuss to reach agreement"},
	{Word: "alternative", Meaning: "n. another possible choice"},
	{Word: "generous", Meaning: "adj. willing to give freely"},
	{Word: "strategy", Meaning: "n. a plan to reach a goal"},
	{Word: "crucial", Meaning: "adj. extremely important"},
	{Word: "obstacle", Meaning: "n. something in the way"},
	{Word: "automatic", Meaning: "adj. working by itself"},
}

// DefaultWords returns a copy of the built-in ten-word list.
func DefaultWords() []WordEntry {
	out := make([]WordEntry, len(defaultWords))
	copy(out, defaultWords)
	return out
}

const maxLineSize = 1 << 20

// Parse reads word<TAB>meaning lines. Blank lines and lines without both
// fields are skipped; extra tab-separated fields are ignored.
// Lines longer than maxLineSize fail the whole parse.
func Parse(r io.Reader) ([]WordEntry, error) {
	var words []WordEntry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		meaning := strings.TrimSpace(parts[1])
		if word == "" || meaning == "" {
			continue
		}
		words = append(words, WordEntry{Word: word, Meaning: meaning})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("study: read words: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}

// LoadFile parses a word list from disk.
func LoadFile(path string) ([]WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("study: open %s: %w", path, err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("study: %s: %w", path, err)
	}
	return words, nil
}

// Load returns the words at path, falling back to the built-in list when path
// is empty or unusable. Failures are logged, never returned.
func Load(path string, logger *log.Logger) []WordEntry {
	if path == "" {
		return DefaultWords()
	}
	words, err := LoadFile(path)
	if err != nil {
		logging.OrDiscard(logger).Warn("word list unavailable, using built-in words", "path", path, "err", err)
		return DefaultWords()
	}
	return words
}

// Pages splits words into consecutive pages of size perPage.
func Pages(words []WordEntry, perPage int) [][]WordEntry {
	if perPage <= 0 {
		return nil
	}
	var pages [][]WordEntry
	for start := 0; start < len(words); start += perPage {
		end := start + perPage
		if end > len(words) {
			end = len(words)
		}
		pages = append(pages, words[start:end])
	}
	return pages
}
