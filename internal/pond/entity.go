// Package pond implements the fishing simulation: the angler, the hook state
// machine, swimming fish, the entity arenas and hook-versus-fish collisions.
// Everything is advanced by an explicit dt so a run is fully determined by its
// seed and inputs.
package pond

// Kind tags every entity with its concrete role.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindHook
	KindFish
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHook:
		return "hook"
	case KindFish:
		return "fish"
	default:
		return "unknown"
	}
}

// EntityID identifies an entity for the lifetime of a manager.
type EntityID uint64

// Bounds is an axis-aligned box in world units.
type Bounds struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Y + b.H }

// Contains reports whether the point lies inside the box, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x <= b.Right() && y >= b.Y && y <= b.Bottom()
}

// Overlaps reports closed-interval overlap: boxes that share only an edge collide.
func Overlaps(a, b Bounds) bool {
	return !(a.Right() < b.X || a.X > b.Right() || a.Bottom() < b.Y || a.Y > b.Bottom())
}

// Entity is the record shared by every pond object.
type Entity struct {
	ID     EntityID
	Kind   Kind
	X, Y   float64
	W, H   float64
	active bool
}

func newEntity(kind Kind, x, y, w, h float64) Entity {
	return Entity{Kind: kind, X: x, Y: y, W: w, H: h, active: true}
}

// Active reports whether the entity still takes part in updates and collisions.
func (e *Entity) Active() bool { return e.active }

// Destroy deactivates the entity; the manager purges it on its next sweep.
func (e *Entity) Destroy() { e.active = false }

// Bounds returns the entity's full box.
func (e *Entity) Bounds() Bounds {
	return Bounds{X: e.X, Y: e.Y, W: e.W, H: e.H}
}
