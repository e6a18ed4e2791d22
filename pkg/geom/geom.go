// Package geom provides the small geometric value types shared by the
// grid model and the match resolver: points, rectangles, and the axis
// discriminator used when a computation applies to either columns or rows.
package geom

import "math"

// Axis identifies one of the two grid axes.
type Axis int

const (
	// AxisColumns is the horizontal axis (vertical column lines).
	AxisColumns Axis = iota
	// AxisRows is the vertical axis (horizontal row lines).
	AxisRows
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	if a == AxisColumns {
		return "columns"
	}
	return "rows"
}

// Point is a position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in pixel coordinates.
// Left <= Right and Top <= Bottom for a well-formed rectangle.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewRect builds a rectangle from an origin and a size.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// At returns a rectangle of the same size with its top-left corner at p.
func (r Rect) At(p Point) Rect {
	return NewRect(p.X, p.Y, r.Width(), r.Height())
}

// OverlapsVertically reports whether the open vertical interval (top, bottom)
// intersects the rectangle's vertical span.
func (r Rect) OverlapsVertically(top, bottom float64) bool {
	return r.Top < bottom && r.Bottom > top
}

// OverlapsHorizontally reports whether the open horizontal interval
// (left, right) intersects the rectangle's horizontal span.
func (r Rect) OverlapsHorizontally(left, right float64) bool {
	return r.Left < right && r.Right > left
}

// Dist returns the unsigned distance between two coordinates.
func Dist(a, b float64) float64 { return math.Abs(a - b) }

// Clamp limits v to the interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
