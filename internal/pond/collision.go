package pond

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pond/internal/logging"
)

// CatchEvent reports one fish landed by one hook.
type CatchEvent struct {
	Hook     *Hook
	Fish     *Fish
	FishType int
	Score    int
	Datum    WordDatum
	HasDatum bool
}

// CatchListener is notified of each catch after CheckCollisions resolves it.
type CatchListener func(CatchEvent)

// CollisionDetector resolves hook-versus-fish overlaps.
type CollisionDetector struct {
	listeners []CatchListener
	logger    *log.Logger
}

// NewCollisionDetector creates a detector. A nil logger discards output.
func NewCollisionDetector(logger *log.Logger) *CollisionDetector {
	return &CollisionDetector{logger: logging.OrDiscard(logger)}
}

// AddListener registers a listener. Listeners run in registration order.
func (d *CollisionDetector) AddListener(l CatchListener) {
	d.listeners = append(d.listeners, l)
}

// CheckCollisions tests every moving hook against every live fish.
// Each overlapping fish is caught exactly once and pulls its hook back.
// The returned events are the primary result; listeners are extra observers.
func (d *CollisionDetector) CheckCollisions(m *EntityManager) []CatchEvent {
	var events []CatchEvent

	fishes := m.Fishes()
	for _, h := range m.Hooks() {
		if h.State() == HookIdle {
			continue
		}
		hb := h.Bounds()
		for _, f := range fishes {
			if !f.Active() || !Overlaps(hb, f.HitBounds()) {
				continue
			}
			if !f.OnCaught() {
				continue
			}
			h.ForceReturn()

			ev := CatchEvent{Hook: h, Fish: f, FishType: f.Type, Score: f.Score}
			ev.Datum, ev.HasDatum = f.Datum()
			events = append(events, ev)
		}
	}

	for _, ev := range events {
		d.notify(ev)
	}
	return events
}

func (d *CollisionDetector) notify(ev CatchEvent) {
	for i, l := range d.listeners {
		d.safeCall(i, l, ev)
	}
}

func (d *CollisionDetector) safeCall(i int, l CatchListener, ev CatchEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("catch listener panicked", "listener", i, "fish", ev.Fish.ID, "panic", r)
		}
	}()
	l(ev)
}
