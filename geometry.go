package gridview

import "math"

// Rect is an axis-aligned box in viewport coordinates.
// Top/Left are the offsets from the viewport origin, so a negative Top
// means the box has been scrolled above the visible area.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns the y coordinate just past the box.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Right returns the x coordinate just past the box.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Size returns the box dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Size holds two-dimensional extents.
type Size struct {
	Width  float64
	Height float64
}

// DiffersBy reports whether either dimension changed by at least delta.
func (s Size) DiffersBy(other Size, delta float64) bool {
	return math.Abs(s.Width-other.Width) >= delta ||
		math.Abs(s.Height-other.Height) >= delta
}

// Metrics is a snapshot of a scroll viewport taken for one positioning
// tick. Outer is the viewport's own bounding box. Snapshots are never
// cached across ticks; every tick samples fresh.
type Metrics struct {
	Outer Rect
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// finite reports whether v is a usable number (not NaN or infinite).
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
