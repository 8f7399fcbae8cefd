// Package core provides fundamental types shared by the pond game and the
// terminal platform. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

import "math"

// Rect is an integer cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps continuous world coordinates onto screen cells.
// The world is a fixed logical playfield; the screen is whatever size the
// terminal currently has, so resizing never touches simulation state.
type Viewport struct {
	WorldW, WorldH float64
	ScreenW        int
	ScreenH        int
	OffsetY        int // rows reserved above the playfield (HUD)
}

// NewViewport creates a viewport for the given world and screen sizes.
func NewViewport(worldW, worldH float64, screenW, screenH, offsetY int) Viewport {
	return Viewport{
		WorldW:  worldW,
		WorldH:  worldH,
		ScreenW: screenW,
		ScreenH: screenH,
		OffsetY: offsetY,
	}
}

// rows is the number of screen rows available to the playfield.
func (v Viewport) rows() int {
	return Max(v.ScreenH-v.OffsetY, 1)
}

// Point projects a world point to a screen cell.
func (v Viewport) Point(x, y float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, v.OffsetY
	}
	sx := int(math.Floor(x * float64(v.ScreenW) / v.WorldW))
	sy := int(math.Floor(y*float64(v.rows())/v.WorldH)) + v.OffsetY
	return sx, sy
}

// Rect projects a world box to a screen rectangle at least one cell in size.
func (v Viewport) Rect(x, y, w, h float64) Rect {
	x0, y0 := v.Point(x, y)
	x1, y1 := v.Point(x+w, y+h)
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// World converts a screen cell back to the world point at its top-left corner.
func (v Viewport) World(sx, sy int) (float64, float64) {
	if v.ScreenW <= 0 {
		return 0, 0
	}
	x := float64(sx) * v.WorldW / float64(v.ScreenW)
	y := float64(sy-v.OffsetY) * v.WorldH / float64(v.rows())
	return x, y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
