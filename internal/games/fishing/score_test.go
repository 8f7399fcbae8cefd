package fishing

import "testing"

func TestScoreKeeper(t *testing.T) {
	k := NewScoreKeeper(2.0)
	k.Reset(25)

	k.Add(10, 100, 300)
	k.Add(30, 200, 300)

	if k.Score() != 40 || k.Caught() != 2 {
		t.Errorf("score=%d caught=%d, expected 40/2", k.Score(), k.Caught())
	}
	if k.Best() != 40 || !k.NewBest() {
		t.Errorf("best=%d newBest=%v, expected 40/true", k.Best(), k.NewBest())
	}
	if k.Average() != 20 {
		t.Errorf("average = %v, expected 20", k.Average())
	}
	if len(k.Popups()) != 2 || k.Popups()[1].Text != "+30" {
		t.Errorf("popups = %+v", k.Popups())
	}
}

func TestScoreKeeperPopupsExpire(t *testing.T) {
	k := NewScoreKeeper(2.0)
	k.Reset(0)
	k.Add(10, 0, 0)

	k.Advance(1.0)
	k.Add(20, 0, 0)
	k.Advance(1.5)

	pops := k.Popups()
	if len(pops) != 1 || pops[0].Text != "+20" {
		t.Errorf("expected only the younger popup to survive, got %+v", pops)
	}
	k.Advance(1.0)
	if len(k.Popups()) != 0 {
		t.Errorf("popups should be gone, got %+v", k.Popups())
	}
}

func TestScoreKeeperBestNotBeaten(t *testing.T) {
	k := NewScoreKeeper(2.0)
	k.Reset(100)
	k.Add(50, 0, 0)

	if k.Best() != 100 || k.NewBest() {
		t.Errorf("best=%d newBest=%v, expected 100/false", k.Best(), k.NewBest())
	}
	if NewScoreKeeper(1).Average() != 0 {
		t.Error("average with no fish should be 0")
	}
}

func TestSessionTimer(t *testing.T) {
	timer := NewSessionTimer(1)

	tests := []struct {
		advance float64
		clock   string
		expired bool
	}{
		{0, "1:00", false},
		{0.5, "1:00", false},
		{0.5, "0:59", false},
		{58.5, "0:01", false},
		{0.5, "0:00", true},
	}

	for i, tc := range tests {
		fired := timer.Advance(tc.advance)
		if got := timer.String(); got != tc.clock {
			t.Errorf("step %d: clock = %q, expected %q", i, got, tc.clock)
		}
		if timer.Expired() != tc.expired || fired != tc.expired {
			t.Errorf("step %d: expired=%v fired=%v, expected %v", i, timer.Expired(), fired, tc.expired)
		}
	}

	if timer.Advance(1) {
		t.Error("an expired timer must not fire again")
	}
	if timer.Elapsed() != 60 || timer.Remaining() != 0 {
		t.Errorf("elapsed=%v remaining=%v", timer.Elapsed(), timer.Remaining())
	}
}
