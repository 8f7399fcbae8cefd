package flow

import "testing"

func TestAmusementPath(t *testing.T) {
	path := []struct {
		on   Event
		want State
	}{
		{EventStart, ModeSelection},
		{EventChooseAmusement, TimeSelection},
		{EventChooseTime, Playing},
		{EventTimeUp, Settlement},
		{EventDismiss, EndDialog},
		{EventReplay, TimeSelection},
		{EventChooseTime, Playing},
		{EventTimeUp, Settlement},
		{EventDismiss, EndDialog},
		{EventBack, ModeSelection},
	}

	s := Welcome
	for i, step := range path {
		next, ok := Next(s, step.on)
		if !ok || next != step.want {
			t.Fatalf("step %d: Next(%v, %v) = %v, %v; expected %v", i, s, step.on, next, ok, step.want)
		}
		s = next
	}
}

func TestStudyPath(t *testing.T) {
	tests := []struct {
		choose Event
		play   Event
		state  State
	}{
		{EventChooseRecall, EventPlayRecall, PlayingWord},
		{EventChooseSpelling, EventPlaySpelling, PlayingSpell},
		{EventChooseMatching, EventPlayMatching, PlayingMatch},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			steps := []struct {
				on   Event
				want State
			}{
				{EventChooseStudy, StudySelection},
				{tc.choose, WordWall},
				{tc.play, tc.state},
				{EventWordDone, StudySettlement},
				{EventDismiss, WordWall},
				{tc.play, tc.state},
				{EventQuitRound, WordWall},
				{EventBack, StudySelection},
				{EventBack, ModeSelection},
			}

			s := ModeSelection
			for i, step := range steps {
				next, ok := Next(s, step.on)
				if !ok || next != step.want {
					t.Fatalf("step %d: Next(%v, %v) = %v, %v; expected %v", i, s, step.on, next, ok, step.want)
				}
				s = next
			}
		})
	}
}

func TestUnknownTransitionsRejected(t *testing.T) {
	tests := []struct {
		from State
		on   Event
	}{
		{Welcome, EventTimeUp},
		{Playing, EventWordDone},
		{PlayingWord, EventTimeUp},
		{Settlement, EventBack},
		{WordWall, EventChooseTime},
		{StudySettlement, EventReplay},
	}

	for _, tc := range tests {
		next, ok := Next(tc.from, tc.on)
		if ok || next != tc.from {
			t.Errorf("Next(%v, %v) = %v, %v; expected rejection", tc.from, tc.on, next, ok)
		}
	}
}

func TestOnlyPlayingStatesTick(t *testing.T) {
	playing := map[State]bool{Playing: true, PlayingWord: true, PlayingSpell: true, PlayingMatch: true}
	for s := Welcome; s <= StudySettlement; s++ {
		if s.IsPlaying() != playing[s] {
			t.Errorf("%v.IsPlaying() = %v", s, s.IsPlaying())
		}
	}
}

func TestStudyBranch(t *testing.T) {
	study := map[State]bool{
		StudySelection: true, WordWall: true, PlayingWord: true,
		PlayingSpell: true, PlayingMatch: true, StudySettlement: true,
	}
	for s := Welcome; s <= StudySettlement; s++ {
		if s.IsStudy() != study[s] {
			t.Errorf("%v.IsStudy() = %v", s, s.IsStudy())
		}
	}
}

func TestEveryStateReachable(t *testing.T) {
	seen := map[State]bool{Welcome: true}
	queue := []State{Welcome}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range Events(s) {
			next, _ := Next(s, e)
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	for s := Welcome; s <= StudySettlement; s++ {
		if !seen[s] {
			t.Errorf("%v is unreachable", s)
		}
		if len(Events(s)) == 0 {
			t.Errorf("%v is a dead end", s)
		}
	}
}

func TestNames(t *testing.T) {
	if PlayingSpell.String() != "playing_spell" || EventWordDone.String() != "word_done" {
		t.Error("unexpected names")
	}
	if State(99).String() != "unknown" || Event(99).String() != "unknown" {
		t.Error("out of range values should be unknown")
	}
}
