package world

// GetVisibility returns the fog-of-war state of a cell. Cells off the grid
// are always Hidden.
func (g *TileGrid) GetVisibility(x, y int) Visibility {
	if !g.InBounds(x, y) {
		return Hidden
	}
	return g.visibility[g.index(x, y)]
}

func (g *TileGrid) setVisible(x, y int) {
	if g.InBounds(x, y) {
		g.visibility[g.index(x, y)] = Visible
	}
}

// Age demotes every Visible cell to Seen. Call it before ComputeFOV so that
// cells which drop out of view stay remembered.
func (g *TileGrid) Age() {
	for i, v := range g.visibility {
		if v == Visible {
			g.visibility[i] = Seen
		}
	}
}

// ComputeFOV marks every cell visible from (ox, oy) within radius. A line is
// cast to each cell inside the circle; the line stops after the first cell
// that blocks sight, so walls and trees are lit but hide what lies behind
// them. Nothing is cleared here.
func (g *TileGrid) ComputeFOV(ox, oy, radius int) {
	if !g.InBounds(ox, oy) {
		return
	}
	g.setVisible(ox, oy)

	r2 := radius * radius
	for ty := oy - radius; ty <= oy+radius; ty++ {
		for tx := ox - radius; tx <= ox+radius; tx++ {
			dx, dy := tx-ox, ty-oy
			if dx*dx+dy*dy > r2 {
				continue
			}
			g.castRay(ox, oy, tx, ty)
		}
	}
}

func (g *TileGrid) castRay(ox, oy, tx, ty int) {
	line := BresenhamLine(ox, oy, tx, ty)
	for _, p := range line[1:] {
		if !g.InBounds(p.X, p.Y) {
			return
		}
		g.setVisible(p.X, p.Y)
		if g.Get(p.X, p.Y).BlocksSight() {
			return
		}
	}
}

// HasLineOfSight reports whether the straight line between two cells is
// clear. Only the cells strictly between the endpoints can block; a line
// that leaves the grid is never clear.
func (g *TileGrid) HasLineOfSight(x1, y1, x2, y2 int) bool {
	line := BresenhamLine(x1, y1, x2, y2)
	for i, p := range line {
		if !g.InBounds(p.X, p.Y) {
			return false
		}
		if i == 0 || i == len(line)-1 {
			continue
		}
		if g.Get(p.X, p.Y).BlocksSight() {
			return false
		}
	}
	return true
}

// BresenhamLine returns the cells on the line from (x0, y0) to (x1, y1),
// both endpoints included.
func BresenhamLine(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	x, y := x0, y0
	for {
		points = append(points, Point{X: x, Y: y})
		if x == x1 && y == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}
