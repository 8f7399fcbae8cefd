package study

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pond/internal/config"
	"github.com/vovakirdan/tui-pond/internal/logging"
	"github.com/vovakirdan/tui-pond/internal/pond"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Manager owns the word list and one progress value per study mode.
// It implements pond.SpawnSource, so the pond pulls fish payloads from it.
type Manager struct {
	words  []WordEntry
	cfg    config.StudyConfig
	rng    *rand.Rand
	logger *log.Logger

	mode     pond.Mode
	recall   RecallProgress
	spelling SpellingProgress
	matching MatchingProgress
}

var _ pond.SpawnSource = (*Manager)(nil)

// NewManager creates a manager in recall mode with fresh progress.
// The seed drives the matching shuffle.
func NewManager(words []WordEntry, cfg config.StudyConfig, seed int64, logger *log.Logger) *Manager {
	m := &Manager{
		words:  words,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logging.OrDiscard(logger),
		mode:   pond.ModeRecall,
	}
	m.ResetSession()
	return m
}

// Words returns the loaded word list.
func (m *Manager) Words() []WordEntry {
	return m.words
}

// Mode returns the active study mode.
func (m *Manager) Mode() pond.Mode {
	return m.mode
}

// SetMode switches the active mode. Amusement is not a study mode.
func (m *Manager) SetMode(mode pond.Mode) bool {
	switch mode {
	case pond.ModeRecall, pond.ModeSpelling, pond.ModeMatching:
		m.mode = mode
		return true
	}
	return false
}

// ResetSession clears the progress of every mode.
func (m *Manager) ResetSession() {
	m.recall = RecallProgress{Selection: newSelection()}
	m.spelling = SpellingProgress{Selection: newSelection()}
	m.matching = MatchingProgress{Selection: newSelection(), WordErrors: make(map[string]int)}
	m.resetSpelling()
}

func (m *Manager) selection() *Selection {
	switch m.mode {
	case pond.ModeSpelling:
		return &m.spelling.Selection
	case pond.ModeMatching:
		return &m.matching.Selection
	default:
		return &m.recall.Selection
	}
}

// Recall returns a copy of the recall progress.
func (m *Manager) Recall() RecallProgress { return m.recall }

// Spelling returns a copy of the spelling progress.
func (m *Manager) Spelling() SpellingProgress { return m.spelling }

// Matching returns a copy of the matching progress.
func (m *Manager) Matching() MatchingProgress { return m.matching }

func (m *Manager) perPage() int {
	if m.cfg.WordsPerPage <= 0 {
		return 10
	}
	return m.cfg.WordsPerPage
}

func (m *Manager) totalPages() int {
	return (len(m.words) + m.perPage() - 1) / m.perPage()
}

// pageBounds returns the absolute [start, end) range of a page.
func (m *Manager) pageBounds(page int) (int, int) {
	start := page * m.perPage()
	end := start + m.perPage()
	if end > len(m.words) {
		end = len(m.words)
	}
	return start, end
}

// SelectWord selects the word at a page-relative index and restarts the
// active mode's round for it. Out-of-range indices change nothing.
func (m *Manager) SelectWord(relative int) bool {
	sel := m.selection()
	start, end := m.pageBounds(sel.Page)
	if relative < 0 || start+relative >= end {
		return false
	}
	sel.Selected = start + relative

	switch m.mode {
	case pond.ModeRecall:
		m.recall.FishCaught = 0
	case pond.ModeSpelling:
		m.resetSpelling()
	}
	m.logger.Debug("word selected", "mode", m.mode, "word", m.words[sel.Selected].Word)
	return true
}

func (m *Manager) resetSpelling() {
	p := &m.spelling
	p.Spelled = nil
	p.Done = false
	p.Required = nil
	if p.Selected >= 0 && p.Selected < len(m.words) {
		p.Required = []rune(strings.ToLower(m.words[p.Selected].Word))
	}
}

// Selected returns the selected word of the active mode.
func (m *Manager) Selected() (WordEntry, bool) {
	return m.current()
}

func (m *Manager) current() (WordEntry, bool) {
	i := m.selection().Selected
	if i < 0 || i >= len(m.words) {
		return WordEntry{}, false
	}
	return m.words[i], true
}

// GoToNextPage moves the active mode's word wall forward. It fails on the last page.
func (m *Manager) GoToNextPage() bool {
	sel := m.selection()
	if sel.Page >= m.totalPages()-1 {
		return false
	}
	sel.Page++
	return true
}

// GoToPreviousPage moves the word wall back. It fails on the first page.
func (m *Manager) GoToPreviousPage() bool {
	sel := m.selection()
	if sel.Page <= 0 {
		return false
	}
	sel.Page--
	return true
}

// StartMatching builds the matching group from the current page and shuffles
// its meanings. It reports false when the page is empty.
func (m *Manager) StartMatching() bool {
	p := &m.matching
	start, end := m.pageBounds(p.Page)
	if end-start > m.cfg.MatchingGroup && m.cfg.MatchingGroup > 0 {
		end = start + m.cfg.MatchingGroup
	}
	if start >= end {
		p.Group, p.Meanings = nil, nil
		return false
	}

	p.Group = append([]WordEntry(nil), m.words[start:end]...)
	p.Meanings = make([]string, len(p.Group))
	for i, w := range p.Group {
		p.Meanings[i] = w.Meaning
	}
	m.rng.Shuffle(len(p.Meanings), func(i, j int) {
		p.Meanings[i], p.Meanings[j] = p.Meanings[j], p.Meanings[i]
	})
	p.Current = 0
	p.Errors = 0
	p.WordErrors = make(map[string]int)
	return true
}

// OnFishCaught judges a caught fish against the active mode.
// Rejections are normal outcomes, never errors.
func (m *Manager) OnFishCaught(d pond.WordDatum) Outcome {
	switch m.mode {
	case pond.ModeSpelling:
		return m.judgeSpelling(d)
	case pond.ModeMatching:
		return m.judgeMatching(d)
	default:
		return m.judgeRecall(d)
	}
}

func (m *Manager) judgeRecall(d pond.WordDatum) Outcome {
	p := &m.recall
	if !d.IsCorrect || p.FishCaught >= m.cfg.RecallTarget {
		return Outcome{}
	}

	p.FishCaught++
	out := Outcome{Accepted: true}
	if p.FishCaught == m.cfg.RecallStage {
		out.ClearBoard = true
	}
	if p.FishCaught >= m.cfg.RecallTarget {
		p.Completed[p.Selected] = true
		out.WordComplete = true
		out.PageAdvanced = m.advanceIfPageDone()
	}
	return out
}

// advanceIfPageDone moves recall to the next page's first word once every
// word on the current page is complete. The last page just stays put.
func (m *Manager) advanceIfPageDone() bool {
	sel := &m.recall.Selection
	start, end := m.pageBounds(sel.Page)
	for i := start; i < end; i++ {
		if !sel.Completed[i] {
			return false
		}
	}
	if !m.GoToNextPage() {
		m.logger.Info("all words learned", "mode", m.mode)
		return false
	}
	m.SelectWord(0)
	return true
}

func (m *Manager) judgeSpelling(d pond.WordDatum) Outcome {
	p := &m.spelling
	if p.Done || len(p.Spelled) >= len(p.Required) {
		return Outcome{}
	}

	want := p.Required[len(p.Spelled)]
	got := []rune(strings.ToLower(d.Letter))
	if len(got) != 1 || got[0] != want {
		p.Spelled = nil
		return Outcome{ClearBoard: true}
	}

	p.Spelled = append(p.Spelled, want)
	out := Outcome{Accepted: true}
	if len(p.Spelled) == len(p.Required) {
		p.Done = true
		p.Completed[p.Selected] = true
		out.WordComplete = true
	}
	return out
}

func (m *Manager) judgeMatching(d pond.WordDatum) Outcome {
	p := &m.matching
	if p.Current >= len(p.Group) {
		return Outcome{}
	}

	want := p.Group[p.Current]
	if d.Meaning == "" || d.Meaning != want.Meaning {
		p.Errors++
		p.WordErrors[wordKey(want)]++
		return Outcome{}
	}

	p.Current++
	return Outcome{Accepted: true, WordComplete: p.Current == len(p.Group)}
}

// IsComplete reports whether the active round is finished: recall and
// matching by count, spelling by its explicit flag.
func (m *Manager) IsComplete() bool {
	switch m.mode {
	case pond.ModeSpelling:
		return m.spelling.Done
	case pond.ModeMatching:
		return len(m.matching.Group) > 0 && m.matching.Current >= len(m.matching.Group)
	default:
		return m.recall.FishCaught >= m.cfg.RecallTarget
	}
}

// Progress summarises the active round.
func (m *Manager) Progress() ProgressInfo {
	sel := m.selection()
	info := ProgressInfo{CompletedCount: len(sel.Completed), Selected: sel.Selected}

	switch m.mode {
	case pond.ModeSpelling:
		info.Current, info.Target = len(m.spelling.Spelled), len(m.spelling.Required)
	case pond.ModeMatching:
		info.Current, info.Target = m.matching.Current, len(m.matching.Group)
	default:
		info.Current, info.Target = m.recall.FishCaught, m.cfg.RecallTarget
		info.ShowMeaning = m.recall.FishCaught >= m.cfg.RecallStage
	}
	if info.Target > 0 {
		info.Percentage = float64(info.Current) / float64(info.Target) * 100
	}
	return info
}

// DisplayText is the prompt shown above the pond.
// Recall shows the meaning while fish carry words, then the word;
// spelling shows the meaning and the letters spelled so far.
func (m *Manager) DisplayText() string {
	switch m.mode {
	case pond.ModeSpelling:
		w, ok := m.current()
		if !ok {
			return ""
		}
		spelled := strings.ToUpper(string(m.spelling.Spelled))
		rest := strings.Repeat("_", max(0, len(m.spelling.Required)-len(m.spelling.Spelled)))
		return w.Meaning + "\n" + spelled + rest
	case pond.ModeMatching:
		w, i, n, ok := m.MatchPrompt()
		if !ok {
			return ""
		}
		return w.Word + "\n" + strconv.Itoa(i+1) + "/" + strconv.Itoa(n)
	default:
		w, ok := m.current()
		if !ok {
			return ""
		}
		if m.recall.FishCaught < m.cfg.RecallStage {
			return w.Meaning
		}
		return w.Word
	}
}

// MatchPrompt returns the word to match, its index and the group size.
func (m *Manager) MatchPrompt() (WordEntry, int, int, bool) {
	p := &m.matching
	if p.Current >= len(p.Group) {
		return WordEntry{}, p.Current, len(p.Group), false
	}
	return p.Group[p.Current], p.Current, len(p.Group), true
}

// WallPage returns the rows of the active mode's current word wall page.
func (m *Manager) WallPage() []WallRow {
	sel := m.selection()
	start, end := m.pageBounds(sel.Page)

	rows := make([]WallRow, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, WallRow{
			Word:          m.words[i].Word,
			Meaning:       m.words[i].Meaning,
			Completed:     sel.Completed[i],
			Current:       i == sel.Selected,
			AbsoluteIndex: i,
			RelativeIndex: i - start,
		})
	}
	return rows
}

// PageInfo describes the active mode's word wall page.
func (m *Manager) PageInfo() PageInfo {
	sel := m.selection()
	start, end := m.pageBounds(sel.Page)
	total := m.totalPages()

	done := 0
	for i := start; i < end; i++ {
		if sel.Completed[i] {
			done++
		}
	}
	return PageInfo{
		Current:     sel.Page + 1,
		Total:       total,
		HasNext:     sel.Page < total-1,
		HasPrevious: sel.Page > 0,
		Completed:   done,
		Size:        max(0, end-start),
	}
}

// MatchingStats returns the matching recap.
func (m *Manager) MatchingStats() MatchingStats {
	p := &m.matching
	st := MatchingStats{
		Total:      len(p.Group),
		Completed:  p.Current,
		Errors:     p.Errors,
		Accuracy:   100,
		AllCorrect: p.Errors == 0,
	}
	if p.Errors+p.Current > 0 {
		st.Accuracy = float64(p.Current) / float64(p.Errors+p.Current) * 100
	}
	for _, w := range p.Group {
		st.Words = append(st.Words, WordError{Word: w.Word, Meaning: w.Meaning, Errors: p.WordErrors[wordKey(w)]})
	}
	return st
}

// RecallDatum is the payload every recall fish carries: the word during the
// first stage, the meaning after it.
func (m *Manager) RecallDatum() (pond.WordDatum, bool) {
	w, ok := m.current()
	if !ok {
		return pond.WordDatum{}, false
	}
	d := pond.WordDatum{IsCorrect: true, Word: w.Word, Meaning: w.Meaning, DisplayText: w.Word}
	if m.recall.FishCaught >= m.cfg.RecallStage {
		d.DisplayText = w.Meaning
	}
	return d, true
}

// SpellingDatum carries the next letter to catch.
func (m *Manager) SpellingDatum() (pond.WordDatum, bool) {
	p := &m.spelling
	w, ok := m.current()
	if !ok || p.Done || len(p.Spelled) >= len(p.Required) {
		return pond.WordDatum{}, false
	}
	letter := string(p.Required[len(p.Spelled)])
	return pond.WordDatum{
		DisplayText: strings.ToUpper(letter),
		IsCorrect:   true,
		Word:        w.Word,
		Meaning:     w.Meaning,
		Letter:      letter,
	}, true
}

// Distractor carries a uniformly random letter. It is not checked against the
// required letter, so a distractor can happen to be correct.
func (m *Manager) Distractor(rng *rand.Rand) pond.WordDatum {
	letter := string(alphabet[rng.Intn(len(alphabet))])
	d := pond.WordDatum{DisplayText: strings.ToUpper(letter), Letter: letter}
	if w, ok := m.current(); ok {
		d.Word, d.Meaning = w.Word, w.Meaning
	}
	return d
}

// MatchingTarget carries the meaning of the word being matched.
func (m *Manager) MatchingTarget() (pond.WordDatum, bool) {
	w, _, _, ok := m.MatchPrompt()
	if !ok {
		return pond.WordDatum{}, false
	}
	return pond.WordDatum{DisplayText: w.Meaning, IsCorrect: true, Word: w.Word, Meaning: w.Meaning}, true
}

// MatchingPick carries a random meaning from the shuffled pool.
func (m *Manager) MatchingPick(rng *rand.Rand) (pond.WordDatum, bool) {
	p := &m.matching
	if len(p.Meanings) == 0 {
		return pond.WordDatum{}, false
	}
	meaning := p.Meanings[rng.Intn(len(p.Meanings))]
	d := pond.WordDatum{DisplayText: meaning, Meaning: meaning}
	if w, _, _, ok := m.MatchPrompt(); ok {
		d.Word = w.Word
		d.IsCorrect = meaning == w.Meaning
	}
	return d, true
}
