package pond

import (
	"github.com/vovakirdan/tui-pond/internal/config"
	"github.com/vovakirdan/tui-pond/internal/core"
)

// Point is a world position.
type Point struct {
	X, Y float64
}

// Player is the angler on the bank. It only moves horizontally.
type Player struct {
	Entity
	speed     float64
	anchorX   float64
	anchorY   float64
	minX      float64
	maxX      float64
	nudgeTime float64
	dir       int     // -1, 0, +1
	moveLeft  float64 // seconds of movement remaining
}

// NewPlayer creates the angler from config, clamped to the playfield width.
func NewPlayer(cfg config.PlayerConfig, field config.PlayfieldConfig) *Player {
	return &Player{
		Entity:    newEntity(KindPlayer, cfg.X, cfg.Y, cfg.Width, cfg.Height),
		speed:     cfg.Speed,
		anchorX:   cfg.AnchorX,
		anchorY:   cfg.AnchorY,
		minX:      0,
		maxX:      field.Width - cfg.Width,
		nudgeTime: cfg.NudgeTime,
	}
}

// Nudge starts (or extends) movement in a direction for one nudge period.
// Terminals report key presses without releases, so each press moves a step.
func (p *Player) Nudge(dir int) {
	if dir == 0 {
		return
	}
	if dir != p.dir {
		p.moveLeft = 0
	}
	p.dir = dir
	p.moveLeft = p.nudgeTime
}

// Moving reports whether the player is still travelling from a nudge.
func (p *Player) Moving() bool {
	return p.moveLeft > 0
}

// Update advances movement by dt.
func (p *Player) Update(dt float64) {
	if p.moveLeft <= 0 {
		return
	}
	step := dt
	if step > p.moveLeft {
		step = p.moveLeft
	}
	p.moveLeft -= step
	p.X = core.ClampF(p.X+float64(p.dir)*p.speed*step, p.minX, p.maxX)
	if p.moveLeft <= 0 {
		p.dir = 0
	}
}

// HookAnchor returns the rod tip the hook hangs from.
func (p *Player) HookAnchor() Point {
	return Point{
		X: p.X + p.W*p.anchorX,
		Y: p.Y + p.H*p.anchorY,
	}
}
