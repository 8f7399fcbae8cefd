// Package fishing implements the pond: timed amusement rounds scored by fish
// type, and the recall, spelling and matching vocabulary modes.
package fishing

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pond/internal/config"
	"github.com/vovakirdan/tui-pond/internal/core"
	"github.com/vovakirdan/tui-pond/internal/flow"
	"github.com/vovakirdan/tui-pond/internal/logging"
	"github.com/vovakirdan/tui-pond/internal/pond"
	"github.com/vovakirdan/tui-pond/internal/registry"
	"github.com/vovakirdan/tui-pond/internal/study"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// wordsPath overrides study.word_list from the config
var wordsPath string

var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetWordsPath sets the word list file used by the study modes.
func SetWordsPath(path string) {
	wordsPath = path
}

// SetLogger sets the logger new games write to.
func SetLogger(l *log.Logger) {
	logger = l
}

type entry struct {
	id    string
	title string
	start flow.State
	mode  pond.Mode
}

var entries = []entry{
	{id: "fishing", title: "Pond Fishing", start: flow.Welcome, mode: pond.ModeAmusement},
	{id: "recall", title: "Word Recall", start: flow.WordWall, mode: pond.ModeRecall},
	{id: "spelling", title: "Spelling", start: flow.WordWall, mode: pond.ModeSpelling},
	{id: "matching", title: "Word Matching", start: flow.WordWall, mode: pond.ModeMatching},
}

var studyModes = []pond.Mode{pond.ModeRecall, pond.ModeSpelling, pond.ModeMatching}

var chooseEvents = map[pond.Mode]flow.Event{
	pond.ModeRecall:   flow.EventChooseRecall,
	pond.ModeSpelling: flow.EventChooseSpelling,
	pond.ModeMatching: flow.EventChooseMatching,
}

var playEvents = map[pond.Mode]flow.Event{
	pond.ModeRecall:   flow.EventPlayRecall,
	pond.ModeSpelling: flow.EventPlaySpelling,
	pond.ModeMatching: flow.EventPlayMatching,
}

// Settlement summarises a finished amusement round.
type Settlement struct {
	Minutes  int
	Elapsed  float64 // seconds played
	Score    int
	Best     int
	Caught   int
	Average  float64
	NewBest  bool
	TimedOut bool // false when the player left early
}

// StudyResult summarises a finished study round.
type StudyResult struct {
	Mode         pond.Mode
	Word         study.WordEntry
	Page         int
	Completed    bool
	Misses       int
	PageAdvanced bool
	Matching     study.MatchingStats
}

// Game is one pond session, from the welcome screen through any number of rounds.
type Game struct {
	entry      entry
	runtime    core.RuntimeConfig
	cfg        config.FishingConfig
	difficulty *config.DifficultyManager
	log        *log.Logger

	state  flow.State
	cursor int
	paused bool

	pond     *pond.EntityManager
	player   *pond.Player
	hook     *pond.Hook
	detector *pond.CollisionDetector
	study    *study.Manager
	scores   *ScoreKeeper
	timer    *SessionTimer
	book     registry.ScoreBook

	round     int
	ticks     int
	aim       float64 // depth the next cast goes to
	minutes   int
	misses    int
	advanced  bool
	roundWord study.WordEntry
	roundPage int

	settlement Settlement
	result     StudyResult
	records    []registry.StudyRecord
}

var (
	_ registry.Game          = (*Game)(nil)
	_ registry.ScoreKeyed    = (*Game)(nil)
	_ registry.ScoreBookUser = (*Game)(nil)
	_ registry.StudyReporter = (*Game)(nil)
)

// New creates a game for a registered entry ID. Unknown IDs get the full pond.
func New(id string) *Game {
	g := &Game{entry: entries[0]}
	for _, e := range entries {
		if e.id == id {
			g.entry = e
		}
	}
	return g
}

// ID returns the unique identifier for this entry.
func (g *Game) ID() string {
	return g.entry.id
}

// Title returns the display name for this entry.
func (g *Game) Title() string {
	return g.entry.title
}

// Reset loads the config and word list and returns to the entry's first screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logging.OrDiscard(logger)

	cfg, err := config.LoadFishing(configPath)
	if err != nil {
		g.log.Warn("config unavailable, using defaults", "err", err)
		cfg = config.DefaultFishingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFishingPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	path := cfg.Study.WordList
	if wordsPath != "" {
		path = wordsPath
	}
	g.study = study.NewManager(study.Load(path, g.log), cfg.Study, runtime.Seed, g.log)

	g.pond = pond.NewEntityManager(cfg, runtime.Seed)
	g.detector = pond.NewCollisionDetector(g.log)
	g.scores = NewScoreKeeper(cfg.Session.PopupTTL)
	g.timer = nil
	g.round = 0
	g.minutes = cfg.Session.TimeOptions[cfg.Session.DefaultOption]
	g.settlement = Settlement{}
	g.result = StudyResult{}
	g.records = nil
	g.paused = false

	g.state = g.entry.start
	if g.entry.mode != pond.ModeAmusement {
		g.study.SetMode(g.entry.mode)
	}
	g.cursor = g.initialCursor()
}

// SetScoreBook gives the game access to stored best scores.
func (g *Game) SetScoreBook(book registry.ScoreBook) {
	g.book = book
}

// ScoreKey is the leaderboard of the current round length, e.g. "fishing-2m".
func (g *Game) ScoreKey() string {
	return ScoreKey(g.minutes)
}

// ScoreKey returns the leaderboard key for a round length in minutes.
func ScoreKey(minutes int) string {
	return "fishing-" + strconv.Itoa(minutes) + "m"
}

// DrainStudyRecords returns the study rounds finished since the last call.
func (g *Game) DrainStudyRecords() []registry.StudyRecord {
	out := g.records
	g.records = nil
	return out
}

// State returns the current game state. GameOver is only set on the
// settlement of a round that ran to time, which is when its score counts.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scores.Score(),
		GameOver: g.state == flow.Settlement && g.settlement.TimedOut,
		Paused:   g.paused && g.state.IsPlaying(),
	}
}

// Screen returns the current flow state.
func (g *Game) Screen() flow.State {
	return g.state
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	caught := 0
	if g.state.IsPlaying() {
		caught = g.stepPlaying(in)
	} else {
		g.stepMenu(in)
	}
	return core.StepResult{State: g.State(), Caught: caught}
}

func (g *Game) fire(e flow.Event) bool {
	next, ok := flow.Next(g.state, e)
	if !ok {
		return false
	}
	g.log.Debug("screen change", "from", g.state, "event", e, "to", next)
	g.state = next
	g.cursor = g.initialCursor()
	return true
}

func (g *Game) initialCursor() int {
	switch g.state {
	case flow.TimeSelection:
		return g.cfg.Session.DefaultOption
	case flow.WordWall:
		for _, row := range g.study.WallPage() {
			if row.Current {
				return row.RelativeIndex
			}
		}
	}
	return 0
}

// menuOptions lists the selectable lines of a menu screen.
func (g *Game) menuOptions() []string {
	switch g.state {
	case flow.Welcome:
		return []string{"Start"}
	case flow.ModeSelection:
		return []string{"Amusement", "Study"}
	case flow.TimeSelection:
		opts := make([]string, len(g.cfg.Session.TimeOptions))
		for i, m := range g.cfg.Session.TimeOptions {
			opts[i] = minutesLabel(m)
		}
		return opts
	case flow.EndDialog:
		return []string{"Play again", "Change mode"}
	case flow.StudySelection:
		return []string{"Recall", "Spelling", "Matching"}
	case flow.WordWall:
		rows := g.study.WallPage()
		opts := make([]string, len(rows))
		for i, r := range rows {
			opts[i] = r.Word
		}
		return opts
	default:
		return []string{"Continue"}
	}
}

func minutesLabel(m int) string {
	if m == 1 {
		return "1 minute"
	}
	return strconv.Itoa(m) + " minutes"
}

func (g *Game) stepMenu(in core.InputFrame) {
	opts := g.menuOptions()
	if in.Has(core.ActionUp) && g.cursor > 0 {
		g.cursor--
	}
	if in.Has(core.ActionDown) && g.cursor < len(opts)-1 {
		g.cursor++
	}

	if g.state == flow.WordWall {
		g.stepWordWall(in)
		return
	}
	if in.Has(core.ActionBack) {
		g.fire(flow.EventBack)
		return
	}
	if !in.Has(core.ActionConfirm) && !in.Has(core.ActionCast) {
		return
	}

	switch g.state {
	case flow.Welcome:
		g.fire(flow.EventStart)
	case flow.ModeSelection:
		if g.cursor == 0 {
			g.fire(flow.EventChooseAmusement)
		} else {
			g.study.ResetSession()
			g.fire(flow.EventChooseStudy)
		}
	case flow.TimeSelection:
		g.startAmusement(g.cfg.Session.TimeOptions[g.cursor])
	case flow.Settlement:
		g.fire(flow.EventDismiss)
	case flow.EndDialog:
		if g.cursor == 0 {
			g.fire(flow.EventReplay)
		} else {
			g.fire(flow.EventBack)
		}
	case flow.StudySelection:
		mode := studyModes[g.cursor]
		g.study.SetMode(mode)
		g.fire(chooseEvents[mode])
	case flow.StudySettlement:
		g.fire(flow.EventDismiss)
	}
}

func (g *Game) stepWordWall(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.fire(flow.EventBack)
	case in.Has(core.ActionLeft):
		if g.study.GoToPreviousPage() {
			g.cursor = 0
		}
	case in.Has(core.ActionRight):
		if g.study.GoToNextPage() {
			g.cursor = 0
		}
	case in.Has(core.ActionConfirm), in.Has(core.ActionCast):
		if g.study.SelectWord(g.cursor) {
			g.startStudy()
		}
	}
}

// setupPond clears the pond and places the angler for a new round.
func (g *Game) setupPond() {
	g.round++
	g.pond.Reset(g.runtime.Seed + int64(g.round))
	g.player = g.pond.AddPlayer(pond.NewPlayer(g.cfg.Player, g.cfg.Playfield))
	g.hook = g.pond.AddHook(pond.NewHook(g.cfg.Hook, g.player.HookAnchor()))

	band := g.pond.Band()
	g.aim = (band.Top + band.Bottom) / 2
	g.ticks = 0
	g.misses = 0
	g.advanced = false
	g.paused = false
}

func (g *Game) startAmusement(minutes int) {
	g.minutes = minutes
	g.setupPond()
	g.timer = NewSessionTimer(minutes)
	g.scores.Reset(g.storedBest(minutes))
	g.settlement = Settlement{}
	g.fire(flow.EventChooseTime)
	g.log.Info("round started", "minutes", minutes, "best", g.scores.Best())
}

func (g *Game) storedBest(minutes int) int {
	if g.book == nil {
		return 0
	}
	best, err := g.book.HighScore(ScoreKey(minutes))
	if err != nil {
		g.log.Warn("best score unavailable", "key", ScoreKey(minutes), "err", err)
		return 0
	}
	return best
}

func (g *Game) startStudy() {
	mode := g.study.Mode()
	if mode == pond.ModeMatching && !g.study.StartMatching() {
		return
	}
	g.roundWord, _ = g.study.Selected()
	g.roundPage = g.study.PageInfo().Current

	g.setupPond()
	g.result = StudyResult{}
	g.fire(playEvents[mode])
	g.pond.ForceSpawn(g.study)
	g.log.Info("study round started", "mode", mode, "word", g.roundWord.Word, "page", g.roundPage)
}

// spawnSource returns the payload source for the current round.
func (g *Game) spawnSource() pond.SpawnSource {
	if g.state == flow.Playing {
		return nil
	}
	return g.study
}

func (g *Game) stepPlaying(in core.InputFrame) int {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionBack) {
		g.quitRound()
		return 0
	}
	if g.paused {
		return 0
	}

	if in.Has(core.ActionLeft) {
		g.player.Nudge(-1)
	}
	if in.Has(core.ActionRight) {
		g.player.Nudge(1)
	}
	band := g.pond.Band()
	aimStep := (band.Bottom - band.Top) / 10
	if in.Has(core.ActionUp) {
		g.aim = core.ClampF(g.aim-aimStep, band.Top, band.Bottom)
	}
	if in.Has(core.ActionDown) {
		g.aim = core.ClampF(g.aim+aimStep, band.Top, band.Bottom)
	}
	if in.Has(core.ActionCast) || in.Has(core.ActionConfirm) {
		g.hook.Cast(g.aim)
	}

	dt := g.runtime.Dt()
	g.ticks++
	if g.state == flow.Playing {
		score := g.scores.Score()
		g.pond.SetPace(
			g.difficulty.Interval(g.cfg.Spawn.Interval, score, g.ticks),
			g.difficulty.SpeedScale(score, g.ticks),
		)
	}

	g.pond.Update(dt, g.spawnSource())
	events := g.detector.CheckCollisions(g.pond)
	for _, ev := range events {
		if !g.state.IsPlaying() {
			break
		}
		if g.state == flow.Playing {
			g.scores.Add(ev.Score, ev.Fish.X, ev.Fish.Y)
			continue
		}
		g.judge(ev)
	}
	g.scores.Advance(dt)

	if g.state == flow.Playing && g.timer.Advance(dt) {
		g.finishAmusement(true)
	}
	return len(events)
}

// judge applies one study catch.
func (g *Game) judge(ev pond.CatchEvent) {
	if !ev.HasDatum {
		return
	}
	out := g.study.OnFishCaught(ev.Datum)
	if !out.Accepted {
		g.misses++
	}
	if out.PageAdvanced {
		g.advanced = true
	}
	if out.WordComplete || g.study.IsComplete() {
		g.finishStudy(true)
		return
	}
	if out.ClearBoard {
		g.pond.ClearFishes()
		g.pond.ForceSpawn(g.study)
	}
}

func (g *Game) quitRound() {
	if g.state == flow.Playing {
		g.finishAmusement(false)
		return
	}
	g.finishStudy(false)
}

func (g *Game) finishAmusement(timedOut bool) {
	g.settlement = Settlement{
		Minutes:  g.minutes,
		Elapsed:  g.timer.Elapsed(),
		Score:    g.scores.Score(),
		Best:     g.scores.Best(),
		Caught:   g.scores.Caught(),
		Average:  g.scores.Average(),
		NewBest:  timedOut && g.scores.NewBest(),
		TimedOut: timedOut,
	}
	if timedOut {
		g.fire(flow.EventTimeUp)
	} else {
		g.fire(flow.EventQuitRound)
	}
	g.log.Info("round over", "minutes", g.minutes, "score", g.settlement.Score, "caught", g.settlement.Caught, "timed_out", timedOut)
}

func (g *Game) finishStudy(completed bool) {
	mode := g.study.Mode()
	g.result = StudyResult{
		Mode:         mode,
		Word:         g.roundWord,
		Page:         g.roundPage,
		Completed:    completed,
		Misses:       g.misses,
		PageAdvanced: g.advanced,
	}
	if mode == pond.ModeMatching {
		g.result.Matching = g.study.MatchingStats()
	}

	word := g.roundWord.Word
	if mode == pond.ModeMatching {
		word = ""
	}
	g.records = append(g.records, registry.StudyRecord{
		Mode:      mode.String(),
		Page:      g.roundPage,
		Word:      word,
		Completed: completed,
		Errors:    g.misses,
	})

	if completed {
		g.fire(flow.EventWordDone)
	} else {
		g.fire(flow.EventQuitRound)
	}
	g.log.Info("study round over", "mode", mode, "word", word, "completed", completed, "misses", g.misses)
}

func init() {
	for _, e := range entries {
		id := e.id
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
