package study

// Selection is the word-wall position shared by every study mode.
type Selection struct {
	Page      int          // zero-based page index
	Selected  int          // absolute index into the word list
	Completed map[int]bool // absolute indices of finished words
}

func newSelection() Selection {
	return Selection{Completed: make(map[int]bool)}
}

// RecallProgress tracks a recall round: catch the word form RecallStage times,
// then the meaning form until RecallTarget.
type RecallProgress struct {
	Selection
	FishCaught int
}

// SpellingProgress tracks a spelling round. Spelled is always a prefix of Required.
type SpellingProgress struct {
	Selection
	Spelled  []rune
	Required []rune
	Done     bool
}

// MatchingProgress tracks a matching round over one page of words.
type MatchingProgress struct {
	Selection
	Group      []WordEntry
	Meanings   []string // shuffled pool fish meanings are drawn from
	Current    int      // index into Group; only moves forward on a match
	Errors     int
	WordErrors map[string]int // keyed by wordKey
}

func wordKey(w WordEntry) string {
	return w.Word + "-" + w.Meaning
}

// Outcome is the result of judging one caught fish.
type Outcome struct {
	Accepted     bool
	ClearBoard   bool // every fish on screen must go (recall stage switch, spelling reset)
	WordComplete bool
	PageAdvanced bool
}

// ProgressInfo summarises the active round for the HUD.
type ProgressInfo struct {
	Current        int
	Target         int
	Percentage     float64
	CompletedCount int
	Selected       int
	ShowMeaning    bool // recall second stage
}

// WallRow is one word on the word wall.
type WallRow struct {
	Word          string
	Meaning       string
	Completed     bool
	Current       bool
	AbsoluteIndex int
	RelativeIndex int
}

// PageInfo describes the word wall page of the active mode.
type PageInfo struct {
	Current     int // one-based
	Total       int
	HasNext     bool
	HasPrevious bool
	Completed   int // finished words on this page
	Size        int // words on this page
}

// WordError is one row of the matching recap.
type WordError struct {
	Word    string
	Meaning string
	Errors  int
}

// MatchingStats is the matching recap.
type MatchingStats struct {
	Total      int
	Completed  int
	Errors     int
	Accuracy   float64 // percent
	AllCorrect bool
	Words      []WordError // group order; Errors == 0 means matched first time
}
