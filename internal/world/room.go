package world

// Rect is an axis-aligned rectangle of cells. BSP leaves, carved rooms and
// overworld zones all use it.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Center returns the center cell, rounding toward the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the given point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects returns true if this rectangle overlaps another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
