package pond

import (
	"testing"
)

func testFish(spec FishSpec) *Fish {
	if spec.W == 0 {
		spec.W, spec.H = 60, 40
	}
	return NewFish(spec, Band{Top: 230, Bottom: 550}, 800, 0.15)
}

func TestScoreForType(t *testing.T) {
	tests := []struct {
		fishType int
		want     int
	}{
		{1, 10},
		{5, 50},
		{10, 100},
		{11, 20},
		{13, 50},
		{15, 80},
		{0, 10},
		{16, 10},
	}
	for _, tc := range tests {
		if got := ScoreForType(tc.fishType); got != tc.want {
			t.Errorf("ScoreForType(%d) = %d, expected %d", tc.fishType, got, tc.want)
		}
	}
}

func TestFishMovesAndBobs(t *testing.T) {
	f := testFish(FishSpec{Type: 3, Direction: DirRight, Speed: 100, X: 0, BaseY: 350, Amplitude: 20})

	f.Update(0.5)
	if f.X != 50 {
		t.Errorf("x = %v, expected 50", f.X)
	}
	if f.Y < 330 || f.Y > 370 {
		t.Errorf("y = %v, expected within amplitude of the baseline", f.Y)
	}
	if f.Score != 30 {
		t.Errorf("score = %d, expected 30", f.Score)
	}
}

func TestFishClampedToBand(t *testing.T) {
	f := testFish(FishSpec{Type: 1, Direction: DirRight, Speed: 0, BaseY: 540, Amplitude: 50})
	for i := 0; i < 100; i++ {
		f.Update(0.1)
		if f.Y < 230 || f.Y > 550-40 {
			t.Fatalf("fish left the band: y=%v", f.Y)
		}
	}

	top := testFish(FishSpec{Type: 1, Direction: DirRight, BaseY: 200})
	if top.Y != 230 {
		t.Errorf("fish above the water should clamp to 230, got %v", top.Y)
	}
}

func TestFishExitsOnItsSide(t *testing.T) {
	tests := []struct {
		name string
		spec FishSpec
	}{
		{"right mover", FishSpec{Type: 1, Direction: DirRight, Speed: 100, X: 850, BaseY: 300}},
		{"left mover", FishSpec{Type: 12, Direction: DirLeft, Speed: 100, X: -50, BaseY: 300}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := testFish(tc.spec)
			f.Update(0.05) // still within one body width of the edge
			if !f.Active() {
				t.Fatal("fish destroyed too early")
			}
			f.Update(0.2)
			if f.Active() {
				t.Errorf("fish at x=%v should be destroyed", f.X)
			}
		})
	}

	// Entering from the far side is not an exit
	f := testFish(FishSpec{Type: 1, Direction: DirRight, Speed: 100, X: -100, BaseY: 300})
	f.Update(0.1)
	if !f.Active() {
		t.Error("right mover entering from the left must stay active")
	}
}

func TestFishHitBounds(t *testing.T) {
	f := testFish(FishSpec{Type: 1, Direction: DirRight, X: 100, BaseY: 300})
	b := f.HitBounds()

	want := Bounds{X: 109, Y: 306, W: 42, H: 28}
	const eps = 1e-9
	if abs(b.X-want.X) > eps || abs(b.Y-want.Y) > eps || abs(b.W-want.W) > eps || abs(b.H-want.H) > eps {
		t.Errorf("HitBounds() = %+v, expected %+v", b, want)
	}
}

func TestFishOnCaughtOnce(t *testing.T) {
	f := testFish(FishSpec{Type: 1, Direction: DirRight, BaseY: 300})

	if !f.OnCaught() {
		t.Fatal("first OnCaught should report the catch")
	}
	if f.OnCaught() {
		t.Error("second OnCaught must not catch again")
	}
	if f.Active() {
		t.Error("caught fish should be inactive")
	}
}

func TestFishDatum(t *testing.T) {
	f := testFish(FishSpec{Type: 1, Direction: DirRight, BaseY: 300})
	if _, ok := f.Datum(); ok {
		t.Error("plain fish should carry no datum")
	}

	f.WithDatum(WordDatum{DisplayText: "access", IsCorrect: true, Word: "access"})
	d, ok := f.Datum()
	if !ok || d.Word != "access" || !d.IsCorrect {
		t.Errorf("Datum() = %+v, %v", d, ok)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
