package pond

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pond/internal/config"
)

func testHook() *Hook {
	return NewHook(config.DefaultFishingConfig().Hook, Point{X: 100, Y: 100})
}

func TestHookCastOnlyFromIdle(t *testing.T) {
	h := testHook()

	if !h.Cast(400) {
		t.Fatal("cast from idle should be accepted")
	}
	if h.State() != HookCasting {
		t.Fatalf("state = %v, expected casting", h.State())
	}
	if h.Cast(500) {
		t.Error("cast while casting should be rejected")
	}
	if h.TargetDepth() != 400 {
		t.Errorf("rejected cast changed target depth to %v", h.TargetDepth())
	}

	h.ForceReturn()
	if h.Cast(500) {
		t.Error("cast while returning should be rejected")
	}
	if h.State() != HookReturning {
		t.Errorf("rejected cast changed state to %v", h.State())
	}
}

func TestHookForceReturnOnlyFromCasting(t *testing.T) {
	h := testHook()

	if h.ForceReturn() {
		t.Error("ForceReturn from idle should fail")
	}
	h.Cast(400)
	if !h.ForceReturn() {
		t.Error("ForceReturn from casting should succeed")
	}
	if h.ForceReturn() {
		t.Error("ForceReturn from returning should fail")
	}
}

func TestHookFullCycle(t *testing.T) {
	h := testHook()
	anchor := Point{X: 100, Y: 100}
	h.Cast(400)

	dt := 0.05
	sawReturning := false
	for i := 0; i < 200 && !(sawReturning && h.State() == HookIdle); i++ {
		h.Update(dt, anchor)
		if h.State() == HookReturning {
			sawReturning = true
		}
		if h.Y > 400 {
			t.Fatalf("hook overshot target depth: y=%v", h.Y)
		}
	}

	if !sawReturning {
		t.Fatal("hook never returned")
	}
	if h.State() != HookIdle {
		t.Fatalf("hook did not come home, state=%v pos=(%v, %v)", h.State(), h.X, h.Y)
	}
	if h.X != anchor.X || h.Y != anchor.Y {
		t.Errorf("idle hook should snap to anchor, got (%v, %v)", h.X, h.Y)
	}
	if h.LineLength() != 0 {
		t.Errorf("line length should reset, got %v", h.LineLength())
	}
}

func TestHookTracksAnchor(t *testing.T) {
	h := testHook()

	h.Update(0.01, Point{X: 150, Y: 90})
	if h.X != 150 || h.Y != 90 {
		t.Errorf("idle hook should follow anchor, got (%v, %v)", h.X, h.Y)
	}

	h.Cast(400)
	h.Update(0.01, Point{X: 170, Y: 90})
	if h.Start() != (Point{X: 170, Y: 90}) {
		t.Errorf("anchor should be re-read while casting, got %+v", h.Start())
	}
	if h.X != 150 {
		t.Errorf("casting hook drops straight down, x moved to %v", h.X)
	}

	// Returning heads for the moved anchor
	h.ForceReturn()
	for i := 0; i < 200 && h.State() != HookIdle; i++ {
		h.Update(0.05, Point{X: 170, Y: 90})
	}
	if h.X != 170 || h.Y != 90 {
		t.Errorf("hook should return to the moved anchor, got (%v, %v)", h.X, h.Y)
	}
}

// TestHookStateInvariant drives random cast/update sequences and checks that
// casting and returning are only ever entered through an accepted cast.
func TestHookStateInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := testHook()
	anchor := Point{X: 100, Y: 100}

	for i := 0; i < 5000; i++ {
		before := h.State()

		if rng.Intn(4) == 0 {
			depth := 150 + rng.Float64()*400
			ok := h.Cast(depth)
			switch {
			case before == HookIdle && (!ok || h.State() != HookCasting):
				t.Fatalf("step %d: cast from idle not accepted", i)
			case before != HookIdle && (ok || h.State() != before):
				t.Fatalf("step %d: cast from %v accepted or changed state to %v", i, before, h.State())
			}
			continue
		}

		if rng.Intn(3) == 0 {
			anchor.X = 60 + rng.Float64()*100
		}
		h.Update(rng.Float64()*0.2, anchor)
		after := h.State()

		valid := map[HookState][]HookState{
			HookIdle:      {HookIdle},
			HookCasting:   {HookCasting, HookReturning},
			HookReturning: {HookReturning, HookIdle},
		}
		ok := false
		for _, s := range valid[before] {
			if s == after {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("step %d: illegal transition %v -> %v", i, before, after)
		}
	}
}

func TestHookStateString(t *testing.T) {
	if HookReturning.String() != "returning" || HookState(9).String() != "unknown" {
		t.Error("unexpected HookState names")
	}
}
