package ui

import "github.com/samdwyer/delvewood/internal/world"

// Camera translates between map cells and screen cells. Each map cell is
// one terminal column wide.
type Camera struct {
	OffsetX, OffsetY int
	ViewWidth        int
	ViewHeight       int
}

// Follow centers the camera on p, clamped so the view never scrolls past
// the edges of a map of the given size.
func (c *Camera) Follow(p world.Point, mapWidth, mapHeight int) {
	c.OffsetX = clampOffset(p.X-c.ViewWidth/2, c.ViewWidth, mapWidth)
	c.OffsetY = clampOffset(p.Y-c.ViewHeight/2, c.ViewHeight, mapHeight)
}

// MapToScreen converts a map cell to a screen cell. visible is false when
// the cell falls outside the viewport.
func (c *Camera) MapToScreen(p world.Point) (sx, sy int, visible bool) {
	sx, sy = p.X-c.OffsetX, p.Y-c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToMap converts a screen cell to a map cell. ok is false outside the
// viewport.
func (c *Camera) ScreenToMap(sx, sy int) (p world.Point, ok bool) {
	if sx < 0 || sy < 0 || sx >= c.ViewWidth || sy >= c.ViewHeight {
		return world.Point{}, false
	}
	return world.Point{X: sx + c.OffsetX, Y: sy + c.OffsetY}, true
}

func clampOffset(offset, view, size int) int {
	if size <= view {
		return 0
	}
	return min(max(offset, 0), size-view)
}
