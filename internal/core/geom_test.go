package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestViewportPoint(t *testing.T) {
	v := NewViewport(800, 600, 80, 25, 1) // 24 playfield rows

	tests := []struct {
		name  string
		x, y  float64
		wantX int
		wantY int
	}{
		{"origin", 0, 0, 0, 1},
		{"centre", 400, 300, 40, 13},
		{"bottom right", 799, 599, 79, 24},
		{"left of screen", -100, 0, -10, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := v.Point(tc.x, tc.y)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("Point(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestViewportRectMinimumSize(t *testing.T) {
	v := NewViewport(800, 600, 80, 24, 0)

	r := v.Rect(100, 100, 1, 1)
	if r.W != 1 || r.H != 1 {
		t.Errorf("tiny world box should project to 1x1, got %dx%d", r.W, r.H)
	}

	r = v.Rect(0, 0, 60, 50)
	if r.W != 6 || r.H != 2 {
		t.Errorf("Rect(0,0,60,50) = %dx%d, expected 6x2", r.W, r.H)
	}
}

func TestViewportWorldRoundTrip(t *testing.T) {
	v := NewViewport(800, 600, 80, 24, 0)

	wx, wy := v.World(40, 12)
	sx, sy := v.Point(wx, wy)
	if sx != 40 || sy != 12 {
		t.Errorf("round trip gave (%d, %d), expected (40, 12)", sx, sy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
