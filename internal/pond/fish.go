package pond

import (
	"math"
)

// Fish type ranges. Right movers enter from the left edge, left movers from the right.
const (
	MinRightType = 1
	MaxRightType = 10
	MinLeftType  = 11
	MaxLeftType  = 15
)

// Direction of horizontal travel.
const (
	DirLeft  = -1
	DirRight = 1
)

// WordDatum is the study payload a fish carries. It never changes after spawn.
type WordDatum struct {
	DisplayText string
	IsCorrect   bool
	Word        string
	Meaning     string
	Letter      string
}

// Band is the vertical range fish are kept inside.
type Band struct {
	Top    float64
	Bottom float64
}

// FishSpec describes a fish to spawn.
type FishSpec struct {
	Type      int
	Direction int
	Speed     float64
	X         float64
	BaseY     float64
	Amplitude float64
	Phase     float64
	W, H      float64
}

// Fish swims horizontally while bobbing on a sine wave.
type Fish struct {
	Entity
	Type      int
	Direction int
	Speed     float64
	Score     int

	baseY     float64
	amplitude float64
	phase     float64
	band      Band
	fieldW    float64
	margin    float64
	datum     *WordDatum
}

// ScoreForType returns the fixed points a fish type is worth.
func ScoreForType(t int) int {
	switch {
	case t >= MinRightType && t <= MaxRightType:
		return 10 + (t-MinRightType)*10
	case t >= MinLeftType && t <= MaxLeftType:
		return 20 + (t-MinLeftType)*15
	default:
		return 10
	}
}

// NewFish creates an active fish. fieldW is the playfield width used for
// the exit check; margin is the per-side hitbox inset fraction.
func NewFish(spec FishSpec, band Band, fieldW, margin float64) *Fish {
	f := &Fish{
		Entity:    newEntity(KindFish, spec.X, spec.BaseY, spec.W, spec.H),
		Type:      spec.Type,
		Direction: spec.Direction,
		Speed:     spec.Speed,
		Score:     ScoreForType(spec.Type),
		baseY:     spec.BaseY,
		amplitude: spec.Amplitude,
		phase:     spec.Phase,
		band:      band,
		fieldW:    fieldW,
		margin:    margin,
	}
	f.Y = f.bobY()
	return f
}

// WithDatum attaches a study payload and returns the fish.
func (f *Fish) WithDatum(d WordDatum) *Fish {
	f.datum = &d
	return f
}

// Datum returns the study payload, if any.
func (f *Fish) Datum() (WordDatum, bool) {
	if f.datum == nil {
		return WordDatum{}, false
	}
	return *f.datum, true
}

// Update moves the fish by dt and destroys it once it has left on its exit side.
func (f *Fish) Update(dt float64) {
	if !f.active {
		return
	}

	f.X += float64(f.Direction) * f.Speed * dt
	f.phase += dt
	f.Y = f.bobY()

	if f.Direction > 0 {
		if f.X > f.fieldW+f.W {
			f.Destroy()
		}
	} else if f.X < -f.W {
		f.Destroy()
	}
}

func (f *Fish) bobY() float64 {
	y := f.baseY + math.Sin(f.phase)*f.amplitude
	return math.Max(f.band.Top, math.Min(y, f.band.Bottom-f.H))
}

// HitBounds returns the collision box, inset by the margin on every side.
func (f *Fish) HitBounds() Bounds {
	ox := f.W * f.margin
	oy := f.H * f.margin
	return Bounds{
		X: f.X + ox,
		Y: f.Y + oy,
		W: f.W * (1 - 2*f.margin),
		H: f.H * (1 - 2*f.margin),
	}
}

// OnCaught deactivates the fish. It reports whether this call did the catching,
// so repeated calls never credit twice.
func (f *Fish) OnCaught() bool {
	if !f.active {
		return false
	}
	f.Destroy()
	return true
}
