package pond

import (
	"math/rand"

	"github.com/vovakirdan/tui-pond/internal/config"
)

// Stats is a snapshot of the manager's arenas.
type Stats struct {
	Players int
	Hooks   int
	Fish    int
	Spawned int // fish spawned since the last reset
	Removed int // entities swept since the last reset
}

// EntityManager owns every pond entity in typed arenas and runs the spawn policy.
// Removal is O(1): arenas are swap-removed and slot maps an ID to its index.
type EntityManager struct {
	cfg    config.FishingConfig
	rng    *rand.Rand
	nextID EntityID

	players []*Player
	hooks   []*Hook
	fishes  []*Fish
	slot    map[EntityID]int

	spawnAcc   float64
	interval   float64
	speedScale float64
	spawned    int
	removed    int
}

// NewEntityManager creates an empty manager seeded for deterministic spawns.
func NewEntityManager(cfg config.FishingConfig, seed int64) *EntityManager {
	m := &EntityManager{cfg: cfg}
	m.Reset(seed)
	return m
}

// Reset drops every entity and restarts the spawn clock.
func (m *EntityManager) Reset(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
	m.players = nil
	m.hooks = nil
	m.fishes = nil
	m.slot = make(map[EntityID]int)
	m.spawnAcc = 0
	m.interval = m.cfg.Spawn.Interval
	m.speedScale = 1
	m.spawned = 0
	m.removed = 0
}

// SetPace overrides the spawn interval and fish speed factor (difficulty).
func (m *EntityManager) SetPace(interval, speedScale float64) {
	if interval > 0 {
		m.interval = interval
	}
	if speedScale > 0 {
		m.speedScale = speedScale
	}
}

// Band returns the vertical range fish swim in.
func (m *EntityManager) Band() Band {
	return Band{
		Top:    m.cfg.Playfield.WaterTop,
		Bottom: m.cfg.Playfield.Height - m.cfg.Playfield.BottomMargin,
	}
}

func (m *EntityManager) assign(e *Entity) {
	m.nextID++
	e.ID = m.nextID
}

// AddPlayer registers the angler.
func (m *EntityManager) AddPlayer(p *Player) *Player {
	m.assign(&p.Entity)
	m.slot[p.ID] = len(m.players)
	m.players = append(m.players, p)
	return p
}

// AddHook registers a hook.
func (m *EntityManager) AddHook(h *Hook) *Hook {
	m.assign(&h.Entity)
	m.slot[h.ID] = len(m.hooks)
	m.hooks = append(m.hooks, h)
	return h
}

// AddFish registers a fish.
func (m *EntityManager) AddFish(f *Fish) *Fish {
	m.assign(&f.Entity)
	m.slot[f.ID] = len(m.fishes)
	m.fishes = append(m.fishes, f)
	return f
}

// Player returns the first active player, or nil.
func (m *EntityManager) Player() *Player {
	for _, p := range m.players {
		if p.active {
			return p
		}
	}
	return nil
}

// Fishes returns the active fish.
func (m *EntityManager) Fishes() []*Fish {
	out := make([]*Fish, 0, len(m.fishes))
	for _, f := range m.fishes {
		if f.active {
			out = append(out, f)
		}
	}
	return out
}

// Hooks returns the active hooks.
func (m *EntityManager) Hooks() []*Hook {
	out := make([]*Hook, 0, len(m.hooks))
	for _, h := range m.hooks {
		if h.active {
			out = append(out, h)
		}
	}
	return out
}

// LiveFish counts active fish.
func (m *EntityManager) LiveFish() int {
	n := 0
	for _, f := range m.fishes {
		if f.active {
			n++
		}
	}
	return n
}

// Update runs one frame: spawn cadence, entity updates, then a sweep of
// everything that went inactive. src selects the spawn policy; nil means amusement.
func (m *EntityManager) Update(dt float64, src SpawnSource) {
	m.spawnAcc += dt
	if m.spawnAcc >= m.interval {
		if m.LiveFish() < m.cfg.Spawn.MaxFish {
			m.spawn(src)
		}
		m.spawnAcc = 0
	}

	for _, p := range m.players {
		if p.active {
			p.Update(dt)
		}
	}
	anchor, hasAnchor := m.anchor()
	for _, h := range m.hooks {
		if !h.active {
			continue
		}
		if hasAnchor {
			h.Update(dt, anchor)
		} else {
			h.Update(dt, h.Start())
		}
	}
	for _, f := range m.fishes {
		if f.active {
			f.Update(dt)
		}
	}

	m.sweep()
}

func (m *EntityManager) anchor() (Point, bool) {
	if p := m.Player(); p != nil {
		return p.HookAnchor(), true
	}
	return Point{}, false
}

// sweep removes inactive entities. Iterating backwards keeps swap-remove safe:
// the element swapped in has already been visited.
func (m *EntityManager) sweep() {
	for i := len(m.fishes) - 1; i >= 0; i-- {
		if !m.fishes[i].active {
			m.fishes = removeAt(m.fishes, i, m.slot)
			m.removed++
		}
	}
	for i := len(m.hooks) - 1; i >= 0; i-- {
		if !m.hooks[i].active {
			m.hooks = removeAt(m.hooks, i, m.slot)
			m.removed++
		}
	}
	for i := len(m.players) - 1; i >= 0; i-- {
		if !m.players[i].active {
			m.players = removeAt(m.players, i, m.slot)
			m.removed++
		}
	}
}

type identified interface {
	entityID() EntityID
}

func (e *Entity) entityID() EntityID { return e.ID }

func removeAt[T identified](arena []T, i int, slot map[EntityID]int) []T {
	last := len(arena) - 1
	delete(slot, arena[i].entityID())
	if i != last {
		arena[i] = arena[last]
		slot[arena[i].entityID()] = i
	}
	var zero T
	arena[last] = zero
	return arena[:last]
}

// Remove deactivates and immediately purges one entity by ID.
func (m *EntityManager) Remove(id EntityID) bool {
	i, ok := m.slot[id]
	if !ok {
		return false
	}
	switch {
	case i < len(m.fishes) && m.fishes[i].ID == id:
		m.fishes[i].Destroy()
		m.fishes = removeAt(m.fishes, i, m.slot)
	case i < len(m.hooks) && m.hooks[i].ID == id:
		m.hooks[i].Destroy()
		m.hooks = removeAt(m.hooks, i, m.slot)
	case i < len(m.players) && m.players[i].ID == id:
		m.players[i].Destroy()
		m.players = removeAt(m.players, i, m.slot)
	default:
		return false
	}
	m.removed++
	return true
}

// ClearFishes removes every fish at once (study board clears).
func (m *EntityManager) ClearFishes() {
	for _, f := range m.fishes {
		f.Destroy()
		delete(m.slot, f.ID)
		m.removed++
	}
	m.fishes = nil
}

// FishAt returns the topmost active fish whose full box contains the point.
func (m *EntityManager) FishAt(x, y float64) *Fish {
	for i := len(m.fishes) - 1; i >= 0; i-- {
		f := m.fishes[i]
		if f.active && f.Bounds().Contains(x, y) {
			return f
		}
	}
	return nil
}

// ForceSpawn spawns immediately, ignoring cadence but not the cap.
// It returns the number of fish added.
func (m *EntityManager) ForceSpawn(src SpawnSource) int {
	if m.LiveFish() >= m.cfg.Spawn.MaxFish {
		return 0
	}
	return m.spawn(src)
}

// Stats returns arena counts.
func (m *EntityManager) Stats() Stats {
	return Stats{
		Players: len(m.players),
		Hooks:   len(m.hooks),
		Fish:    len(m.fishes),
		Spawned: m.spawned,
		Removed: m.removed,
	}
}
