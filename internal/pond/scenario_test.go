package pond

import (
	"testing"

	"github.com/vovakirdan/tui-pond/internal/config"
)

// TestCatchScenario swims a single type-1 fish in from the left, casts when it
// approaches the rod and checks it is landed exactly once for 10 points.
func TestCatchScenario(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	cfg.Spawn.Interval = 1e9
	dt := 1.0 / 60

	m := NewEntityManager(cfg, 1)
	p := m.AddPlayer(NewPlayer(cfg.Player, cfg.Playfield))
	h := m.AddHook(NewHook(cfg.Hook, p.HookAnchor()))
	f := m.AddFish(NewFish(
		FishSpec{Type: 1, Direction: DirRight, Speed: 100, X: -100, BaseY: 300, W: cfg.Fish.Width, H: cfg.Fish.Height},
		m.Band(), cfg.Playfield.Width, cfg.Fish.HitboxMargin,
	))

	det := NewCollisionDetector(nil)
	total := 0
	det.AddListener(func(ev CatchEvent) { total += ev.Score })

	step := func() []CatchEvent {
		m.Update(dt, nil)
		return det.CheckCollisions(m)
	}

	for i := 0; f.X < 0; i++ {
		if i > 600 {
			t.Fatal("fish never entered the playfield")
		}
		if evs := step(); len(evs) != 0 {
			t.Fatal("catch before any cast")
		}
	}
	for f.X < 55 {
		step()
	}

	depth := f.HitBounds().Y + f.HitBounds().H/2
	if !h.Cast(depth) {
		t.Fatal("cast rejected")
	}

	var events []CatchEvent
	for i := 0; i < 240 && len(events) == 0; i++ {
		evs := step()
		events = append(events, evs...)
		if len(evs) == 0 && h.State() != HookIdle && Overlaps(h.Bounds(), f.HitBounds()) {
			t.Fatalf("frame %d: hook overlaps a live fish without a catch", i)
		}
	}

	if len(events) != 1 {
		t.Fatalf("expected exactly one catch, got %d", len(events))
	}
	if events[0].Fish != f || events[0].Score != 10 || total != 10 {
		t.Errorf("catch = %+v, total = %d; expected fish type 1 worth 10", events[0], total)
	}

	// The hook comes home and the fish is swept
	for i := 0; i < 600 && h.State() != HookIdle; i++ {
		if evs := step(); len(evs) != 0 {
			t.Fatal("caught twice")
		}
	}
	if h.State() != HookIdle {
		t.Error("hook never returned home")
	}
	if m.LiveFish() != 0 || m.Stats().Fish != 0 {
		t.Errorf("caught fish not swept: %+v", m.Stats())
	}
}
