// Package entity provides the things that move around the world.
package entity

import "github.com/samdwyer/delvewood/internal/world"

// Explorer is the player character. Besides its position it carries a
// queued route for click-to-move travel.
type Explorer struct {
	X, Y   int  // Current position on the current map
	Symbol rune // Display symbol

	route []world.Point
}

// NewExplorer creates an explorer at the given position.
func NewExplorer(p world.Point) *Explorer {
	return &Explorer{
		X:      p.X,
		Y:      p.Y,
		Symbol: '@',
	}
}

// Position returns the current position.
func (e *Explorer) Position() world.Point {
	return world.Point{X: e.X, Y: e.Y}
}

// Move updates the position by the given delta.
func (e *Explorer) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Place puts the explorer at p and drops any queued route.
func (e *Explorer) Place(p world.Point) {
	e.X, e.Y = p.X, p.Y
	e.route = nil
}

// SetRoute queues a path to follow. The path must start at the current
// position, as returned by TileGrid.FindPath.
func (e *Explorer) SetRoute(path []world.Point) {
	if len(path) < 2 || path[0] != e.Position() {
		e.route = nil
		return
	}
	e.route = append([]world.Point(nil), path[1:]...)
}

// Traveling returns true while a route is queued.
func (e *Explorer) Traveling() bool {
	return len(e.route) > 0
}

// NextStep pops the next cell of the route as a delta from the current
// position.
func (e *Explorer) NextStep() (dx, dy int, ok bool) {
	if len(e.route) == 0 {
		return 0, 0, false
	}
	next := e.route[0]
	e.route = e.route[1:]
	return next.X - e.X, next.Y - e.Y, true
}

// CancelRoute drops any queued route.
func (e *Explorer) CancelRoute() {
	e.route = nil
}
