// Package flow is the screen state machine of a pond session.
// Transitions live in one table; Next is a pure lookup.
package flow

// State is a screen of the game.
type State uint8

const (
	Welcome State = iota
	ModeSelection
	TimeSelection
	Playing
	Settlement
	EndDialog
	StudySelection
	WordWall
	PlayingWord
	PlayingSpell
	PlayingMatch
	StudySettlement
)

var stateNames = [...]string{
	Welcome:         "welcome",
	ModeSelection:   "mode_selection",
	TimeSelection:   "time_selection",
	Playing:         "playing",
	Settlement:      "settlement",
	EndDialog:       "end_dialog",
	StudySelection:  "study_selection",
	WordWall:        "word_wall",
	PlayingWord:     "playing_word",
	PlayingSpell:    "playing_spell",
	PlayingMatch:    "playing_match",
	StudySettlement: "study_settlement",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// IsPlaying reports whether entities tick in this state.
func (s State) IsPlaying() bool {
	switch s {
	case Playing, PlayingWord, PlayingSpell, PlayingMatch:
		return true
	}
	return false
}

// IsStudy reports whether the state belongs to the study branch.
func (s State) IsStudy() bool {
	switch s {
	case StudySelection, WordWall, PlayingWord, PlayingSpell, PlayingMatch, StudySettlement:
		return true
	}
	return false
}

// Event is a user or timer trigger.
type Event uint8

const (
	EventStart Event = iota
	EventChooseAmusement
	EventChooseStudy
	EventChooseTime
	EventTimeUp
	EventQuitRound
	EventDismiss
	EventReplay
	EventBack
	EventChooseRecall
	EventChooseSpelling
	EventChooseMatching
	EventPlayRecall
	EventPlaySpelling
	EventPlayMatching
	EventWordDone
)

var eventNames = [...]string{
	EventStart:           "start",
	EventChooseAmusement: "choose_amusement",
	EventChooseStudy:     "choose_study",
	EventChooseTime:      "choose_time",
	EventTimeUp:          "time_up",
	EventQuitRound:       "quit_round",
	EventDismiss:         "dismiss",
	EventReplay:          "replay",
	EventBack:            "back",
	EventChooseRecall:    "choose_recall",
	EventChooseSpelling:  "choose_spelling",
	EventChooseMatching:  "choose_matching",
	EventPlayRecall:      "play_recall",
	EventPlaySpelling:    "play_spelling",
	EventPlayMatching:    "play_matching",
	EventWordDone:        "word_done",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

type edge struct {
	from State
	on   Event
}

var transitions = map[edge]State{
	{Welcome, EventStart}: ModeSelection,

	{ModeSelection, EventChooseAmusement}: TimeSelection,
	{ModeSelection, EventChooseStudy}:     StudySelection,
	{ModeSelection, EventBack}:            Welcome,

	// Amusement branch
	{TimeSelection, EventChooseTime}: Playing,
	{TimeSelection, EventBack}:       ModeSelection,
	{Playing, EventTimeUp}:           Settlement,
	{Playing, EventQuitRound}:        Settlement,
	{Settlement, EventDismiss}:       EndDialog,
	{EndDialog, EventReplay}:         TimeSelection,
	{EndDialog, EventBack}:           ModeSelection,

	// Study branch
	{StudySelection, EventChooseRecall}:   WordWall,
	{StudySelection, EventChooseSpelling}: WordWall,
	{StudySelection, EventChooseMatching}: WordWall,
	{StudySelection, EventBack}:           ModeSelection,
	{WordWall, EventPlayRecall}:           PlayingWord,
	{WordWall, EventPlaySpelling}:         PlayingSpell,
	{WordWall, EventPlayMatching}:         PlayingMatch,
	{WordWall, EventBack}:                 StudySelection,
	{PlayingWord, EventWordDone}:          StudySettlement,
	{PlayingSpell, EventWordDone}:         StudySettlement,
	{PlayingMatch, EventWordDone}:         StudySettlement,
	{PlayingWord, EventQuitRound}:         WordWall,
	{PlayingSpell, EventQuitRound}:        WordWall,
	{PlayingMatch, EventQuitRound}:        WordWall,
	{StudySettlement, EventDismiss}:       WordWall,
}

// Next returns the state reached from s on e. Unknown pairs are rejected and
// the returned state is s itself.
func Next(s State, e Event) (State, bool) {
	to, ok := transitions[edge{s, e}]
	if !ok {
		return s, false
	}
	return to, true
}

// Events lists the events s accepts, in event order.
func Events(s State) []Event {
	var out []Event
	for e := EventStart; e <= EventWordDone; e++ {
		if _, ok := transitions[edge{s, e}]; ok {
			out = append(out, e)
		}
	}
	return out
}
