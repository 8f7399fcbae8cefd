package study

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/vovakirdan/tui-pond/internal/config"
	"github.com/vovakirdan/tui-pond/internal/pond"
)

func numberedWords(n int) []WordEntry {
	words := make([]WordEntry, n)
	for i := range words {
		words[i] = WordEntry{Word: "w" + strconv.Itoa(i), Meaning: "m" + strconv.Itoa(i)}
	}
	return words
}

func newTestManager(words []WordEntry, mode pond.Mode) *Manager {
	m := NewManager(words, config.DefaultFishingConfig().Study, 1, nil)
	m.SetMode(mode)
	return m
}

var correct = pond.WordDatum{IsCorrect: true}

func TestRecallStageBoundary(t *testing.T) {
	m := newTestManager(DefaultWords(), pond.ModeRecall)

	if d, _ := m.RecallDatum(); d.DisplayText != "access" {
		t.Errorf("first stage fish should show the word, got %q", d.DisplayText)
	}
	if m.DisplayText() != DefaultWords()[0].Meaning {
		t.Errorf("first stage prompt should be the meaning, got %q", m.DisplayText())
	}

	clears := 0
	for i := 1; i <= 10; i++ {
		out := m.OnFishCaught(correct)
		if !out.Accepted {
			t.Fatalf("catch %d rejected", i)
		}
		if out.ClearBoard {
			clears++
		}
	}
	if clears != 1 {
		t.Fatalf("expected exactly one clear in the first 10 catches, got %d", clears)
	}

	if d, _ := m.RecallDatum(); d.DisplayText != DefaultWords()[0].Meaning {
		t.Errorf("second stage fish should show the meaning, got %q", d.DisplayText)
	}
	if m.DisplayText() != "access" || !m.Progress().ShowMeaning {
		t.Errorf("second stage prompt should be the word, got %q", m.DisplayText())
	}

	for i := 11; i <= 19; i++ {
		if out := m.OnFishCaught(correct); out.ClearBoard || out.WordComplete {
			t.Fatalf("catch %d: unexpected outcome %+v", i, out)
		}
	}
	if m.IsComplete() {
		t.Fatal("complete before the 20th catch")
	}

	out := m.OnFishCaught(correct)
	if !out.WordComplete || out.PageAdvanced {
		t.Fatalf("20th catch outcome = %+v", out)
	}
	if !m.IsComplete() || !m.Recall().Completed[0] {
		t.Error("word 0 should be complete")
	}
	if out := m.OnFishCaught(correct); out.Accepted {
		t.Error("catches after completion should be rejected")
	}
}

func TestRecallRejectsIncorrect(t *testing.T) {
	m := newTestManager(DefaultWords(), pond.ModeRecall)
	m.OnFishCaught(correct)

	out := m.OnFishCaught(pond.WordDatum{IsCorrect: false, Word: "access"})
	if out != (Outcome{}) {
		t.Errorf("incorrect fish outcome = %+v", out)
	}
	if m.Recall().FishCaught != 1 {
		t.Errorf("rejected catch changed the count to %d", m.Recall().FishCaught)
	}
}

func TestRecallPageAdvance(t *testing.T) {
	m := newTestManager(numberedWords(12), pond.ModeRecall)

	for w := 0; w < 10; w++ {
		if !m.SelectWord(w) {
			t.Fatalf("SelectWord(%d) failed", w)
		}
		var out Outcome
		for i := 0; i < 20; i++ {
			out = m.OnFishCaught(correct)
		}
		if !out.WordComplete {
			t.Fatalf("word %d not completed", w)
		}
		if w < 9 && out.PageAdvanced {
			t.Fatalf("page advanced after word %d", w)
		}
		if w == 9 && !out.PageAdvanced {
			t.Fatal("page should advance once every word on it is complete")
		}
	}

	info := m.PageInfo()
	if info.Current != 2 || info.Size != 2 || info.HasNext || !info.HasPrevious {
		t.Errorf("page info after advance = %+v", info)
	}
	if m.Recall().Selected != 10 || m.Recall().FishCaught != 0 {
		t.Errorf("next page's first word should be selected fresh, got %+v", m.Recall())
	}
	if w, _ := m.Selected(); w.Word != "w10" {
		t.Errorf("selected %q, expected w10", w.Word)
	}
}

func TestRecallLastPageStays(t *testing.T) {
	m := newTestManager(numberedWords(2), pond.ModeRecall)
	for w := 0; w < 2; w++ {
		m.SelectWord(w)
		for i := 0; i < 20; i++ {
			m.OnFishCaught(correct)
		}
	}
	if m.PageInfo().Current != 1 || m.Recall().Selected != 1 {
		t.Errorf("learning should end on the last page, got %+v", m.Recall().Selection)
	}
}

func letter(l string) pond.WordDatum {
	return pond.WordDatum{Letter: l, DisplayText: l}
}

func TestSpellingResetLaw(t *testing.T) {
	m := newTestManager([]WordEntry{{Word: "cat", Meaning: "a small pet"}}, pond.ModeSpelling)

	m.OnFishCaught(letter("c"))
	m.OnFishCaught(letter("a"))
	if got := m.DisplayText(); got != "a small pet\nCA_" {
		t.Errorf("DisplayText() = %q", got)
	}

	out := m.OnFishCaught(letter("x"))
	if out.Accepted || !out.ClearBoard {
		t.Errorf("wrong letter outcome = %+v", out)
	}
	if len(m.Spelling().Spelled) != 0 {
		t.Errorf("spelled should reset to empty, got %q", string(m.Spelling().Spelled))
	}

	for _, l := range []string{"C", "a", "t"} {
		if !m.OnFishCaught(letter(l)).Accepted {
			t.Fatalf("letter %q rejected", l)
		}
	}
	if !m.IsComplete() || !m.Spelling().Done {
		t.Fatal("spelling should be done")
	}
	if out := m.OnFishCaught(letter("c")); out.Accepted || out.ClearBoard {
		t.Errorf("catch after completion should be a no-op, got %+v", out)
	}
	if string(m.Spelling().Spelled) != "cat" {
		t.Errorf("spelled = %q after completion", string(m.Spelling().Spelled))
	}
}

func TestSpellingPrefixInvariant(t *testing.T) {
	m := newTestManager([]WordEntry{{Word: "obstacle", Meaning: "n. something in the way"}}, pond.ModeSpelling)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 2000 && !m.IsComplete(); i++ {
		var d pond.WordDatum
		if rng.Intn(3) == 0 {
			d = m.Distractor(rng)
		} else {
			d, _ = m.SpellingDatum()
		}
		m.OnFishCaught(d)

		p := m.Spelling()
		if len(p.Spelled) > len(p.Required) || string(p.Spelled) != string(p.Required[:len(p.Spelled)]) {
			t.Fatalf("step %d: %q is not a prefix of %q", i, string(p.Spelled), string(p.Required))
		}
	}
}

func TestSpellingDatum(t *testing.T) {
	m := newTestManager([]WordEntry{{Word: "Go", Meaning: "a language"}}, pond.ModeSpelling)

	d, ok := m.SpellingDatum()
	if !ok || d.Letter != "g" || d.DisplayText != "G" || !d.IsCorrect {
		t.Errorf("SpellingDatum() = %+v, %v", d, ok)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		dd := m.Distractor(rng)
		if dd.IsCorrect || len(dd.Letter) != 1 || dd.Letter[0] < 'a' || dd.Letter[0] > 'z' {
			t.Fatalf("bad distractor %+v", dd)
		}
	}
}

func TestMatchingMonotonic(t *testing.T) {
	m := newTestManager(numberedWords(10), pond.ModeMatching)
	if !m.StartMatching() {
		t.Fatal("StartMatching failed")
	}
	rng := rand.New(rand.NewSource(11))

	prev := 0
	errs := 0
	for i := 0; i < 500 && !m.IsComplete(); i++ {
		d, _ := m.MatchingPick(rng)
		out := m.OnFishCaught(d)
		cur := m.Matching().Current

		switch {
		case out.Accepted && cur != prev+1:
			t.Fatalf("step %d: accepted match moved current %d -> %d", i, prev, cur)
		case !out.Accepted && cur != prev:
			t.Fatalf("step %d: mismatch moved current %d -> %d", i, prev, cur)
		}
		if !out.Accepted {
			errs++
		}
		prev = cur
	}

	if !m.IsComplete() {
		t.Fatal("matching never completed")
	}
	if m.Matching().Errors != errs {
		t.Errorf("errors = %d, expected %d", m.Matching().Errors, errs)
	}
	total := 0
	for _, n := range m.Matching().WordErrors {
		total += n
	}
	if total != errs {
		t.Errorf("per-word errors sum to %d, expected %d", total, errs)
	}
}

func TestMatchingErrorsAndStats(t *testing.T) {
	m := newTestManager(numberedWords(3), pond.ModeMatching)
	m.StartMatching()

	if out := m.OnFishCaught(pond.WordDatum{Meaning: "m2"}); out.Accepted {
		t.Fatal("wrong meaning accepted")
	}
	if m.Matching().WordErrors["w0-m0"] != 1 {
		t.Errorf("word errors = %v", m.Matching().WordErrors)
	}

	for _, meaning := range []string{"m0", "m1", "m2"} {
		if !m.OnFishCaught(pond.WordDatum{Meaning: meaning}).Accepted {
			t.Fatalf("meaning %s rejected", meaning)
		}
	}

	st := m.MatchingStats()
	if st.Total != 3 || st.Completed != 3 || st.Errors != 1 || st.AllCorrect {
		t.Errorf("stats = %+v", st)
	}
	if st.Accuracy != 75 {
		t.Errorf("accuracy = %v, expected 75", st.Accuracy)
	}
	if len(st.Words) != 3 || st.Words[0].Errors != 1 || st.Words[1].Errors != 0 {
		t.Errorf("recap rows = %+v", st.Words)
	}
	if out := m.OnFishCaught(pond.WordDatum{Meaning: "m0"}); out.Accepted || m.Matching().Errors != 1 {
		t.Error("catches after completion should change nothing")
	}
}

func TestMatchingSpawnPayloads(t *testing.T) {
	m := newTestManager(numberedWords(4), pond.ModeMatching)
	m.StartMatching()

	target, ok := m.MatchingTarget()
	if !ok || target.Meaning != "m0" || !target.IsCorrect {
		t.Errorf("MatchingTarget() = %+v", target)
	}

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		d, ok := m.MatchingPick(rng)
		if !ok {
			t.Fatal("pick failed")
		}
		if d.IsCorrect != (d.Meaning == "m0") {
			t.Fatalf("pick %+v has wrong IsCorrect", d)
		}
	}

	if got := m.DisplayText(); got != "w0\n1/4" {
		t.Errorf("DisplayText() = %q", got)
	}
}

func TestPaginationBounds(t *testing.T) {
	m := newTestManager(numberedWords(25), pond.ModeRecall)

	if m.GoToPreviousPage() {
		t.Error("previous page from the first page should fail")
	}
	if !m.GoToNextPage() || !m.GoToNextPage() {
		t.Fatal("next page failed")
	}
	if m.GoToNextPage() {
		t.Error("next page from the last page should fail")
	}
	if m.PageInfo().Current != 3 {
		t.Errorf("page = %d, expected 3", m.PageInfo().Current)
	}

	// Failed moves are idempotent
	before := m.Recall().Selection.Page
	m.GoToNextPage()
	m.GoToNextPage()
	if m.Recall().Selection.Page != before {
		t.Error("failed GoToNextPage mutated the page")
	}

	rows := m.WallPage()
	if len(rows) != 5 || rows[0].AbsoluteIndex != 20 || rows[4].RelativeIndex != 4 {
		t.Errorf("wall rows = %+v", rows)
	}
}

func TestSelectWordBounds(t *testing.T) {
	m := newTestManager(numberedWords(12), pond.ModeRecall)
	m.OnFishCaught(correct)

	for _, rel := range []int{-1, 10, 42} {
		if m.SelectWord(rel) {
			t.Errorf("SelectWord(%d) should fail", rel)
		}
	}
	if m.Recall().FishCaught != 1 || m.Recall().Selected != 0 {
		t.Errorf("failed selection mutated progress: %+v", m.Recall())
	}

	m.GoToNextPage()
	if m.SelectWord(2) {
		t.Error("SelectWord past a short last page should fail")
	}
	if !m.SelectWord(1) || m.Recall().Selected != 11 {
		t.Errorf("selected = %d, expected 11", m.Recall().Selected)
	}
	if !m.WallPage()[1].Current {
		t.Error("wall row should be marked current")
	}
}

func TestModesKeepSeparateProgress(t *testing.T) {
	m := newTestManager(numberedWords(12), pond.ModeRecall)
	m.SelectWord(3)
	m.OnFishCaught(correct)

	m.SetMode(pond.ModeSpelling)
	if m.Spelling().Selected != 0 || m.PageInfo().Current != 1 {
		t.Error("spelling should have its own selection")
	}
	m.GoToNextPage()

	m.SetMode(pond.ModeRecall)
	if m.Recall().Selected != 3 || m.Recall().FishCaught != 1 || m.PageInfo().Current != 1 {
		t.Errorf("recall progress disturbed: %+v", m.Recall())
	}

	if m.SetMode(pond.ModeAmusement) {
		t.Error("amusement is not a study mode")
	}

	m.ResetSession()
	if m.Recall().FishCaught != 0 || m.Recall().Selected != 0 || m.Spelling().Page != 0 {
		t.Error("ResetSession should clear every mode")
	}
}

func TestProgressPercentage(t *testing.T) {
	m := newTestManager(DefaultWords(), pond.ModeRecall)
	for i := 0; i < 5; i++ {
		m.OnFishCaught(correct)
	}
	p := m.Progress()
	if p.Current != 5 || p.Target != 20 || p.Percentage != 25 {
		t.Errorf("Progress() = %+v", p)
	}
}
