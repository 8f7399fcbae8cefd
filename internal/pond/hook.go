package pond

import (
	"math"

	"github.com/vovakirdan/tui-pond/internal/config"
)

// HookState is the hook's position in its cast cycle.
type HookState uint8

const (
	HookIdle HookState = iota
	HookCasting
	HookReturning
)

// String returns the state name.
func (s HookState) String() string {
	switch s {
	case HookIdle:
		return "idle"
	case HookCasting:
		return "casting"
	case HookReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Hook is the fishing hook. It cycles idle -> casting -> returning -> idle;
// a cast is only accepted from idle and no transition skips returning.
type Hook struct {
	Entity
	state       HookState
	start       Point // current anchor, re-read every update
	targetDepth float64
	lineLength  float64
	maxLine     float64
	speed       float64
	epsilon     float64
}

// NewHook creates an idle hook hanging from anchor.
func NewHook(cfg config.HookConfig, anchor Point) *Hook {
	return &Hook{
		Entity:  newEntity(KindHook, anchor.X, anchor.Y, cfg.Width, cfg.Height),
		state:   HookIdle,
		start:   anchor,
		speed:   cfg.Speed,
		epsilon: cfg.Epsilon,
	}
}

// State returns the current cast state.
func (h *Hook) State() HookState { return h.state }

// Start returns the anchor the line is tied to.
func (h *Hook) Start() Point { return h.start }

// TargetDepth returns the y the current cast descends to.
func (h *Hook) TargetDepth() float64 { return h.targetDepth }

// LineLength returns how much line is out.
func (h *Hook) LineLength() float64 { return h.lineLength }

// Center returns the middle of the hook box, where the line attaches.
func (h *Hook) Center() Point {
	return Point{X: h.X + h.W/2, Y: h.Y + h.H/2}
}

// Cast drops the hook straight down to targetDepth.
// It returns false, changing nothing, unless the hook is idle.
func (h *Hook) Cast(targetDepth float64) bool {
	if h.state != HookIdle {
		return false
	}
	h.state = HookCasting
	h.targetDepth = targetDepth
	h.maxLine = math.Abs(targetDepth - h.start.Y)
	h.lineLength = 0
	return true
}

// ForceReturn cuts a cast short after a catch. Only valid while casting.
func (h *Hook) ForceReturn() bool {
	if h.state != HookCasting {
		return false
	}
	h.state = HookReturning
	return true
}

// Update advances the hook by dt, tracking anchor in every state.
func (h *Hook) Update(dt float64, anchor Point) {
	if !h.active {
		return
	}
	h.start = anchor

	switch h.state {
	case HookIdle:
		h.X, h.Y = anchor.X, anchor.Y
	case HookCasting:
		h.updateCasting(dt)
	case HookReturning:
		h.updateReturning(dt)
	}
}

func (h *Hook) updateCasting(dt float64) {
	move := h.speed * dt
	h.Y += move
	h.lineLength += move

	if h.Y >= h.targetDepth || h.lineLength >= h.maxLine {
		h.Y = h.targetDepth
		h.state = HookReturning
	}
}

func (h *Hook) updateReturning(dt float64) {
	dx := h.start.X - h.X
	dy := h.start.Y - h.Y
	dist := math.Hypot(dx, dy)

	if dist <= h.epsilon {
		h.X, h.Y = h.start.X, h.start.Y
		h.state = HookIdle
		h.lineLength = 0
		return
	}

	move := math.Min(h.speed*dt, dist)
	h.X += dx / dist * move
	h.Y += dy / dist * move
	h.lineLength = math.Max(0, h.lineLength-move)
}
