package world

// Point is a cell position on a grid.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev returns the king-move distance between p and q.
func (p Point) Chebyshev(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// Manhattan returns the 4-directional distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// TileGrid is a rectangular map of tiles with a parallel fog-of-war layer.
// Reads outside the grid return TileWall and writes outside it are ignored.
type TileGrid struct {
	Width  int
	Height int

	tiles      []Tile
	visibility []Visibility
}

// NewTileGrid creates a grid filled with a single tile. Every cell starts
// Hidden. Non-positive dimensions produce an empty grid.
func NewTileGrid(width, height int, fill Tile) *TileGrid {
	if width <= 0 || height <= 0 {
		return &TileGrid{}
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = fill
	}
	return &TileGrid{
		Width:      width,
		Height:     height,
		tiles:      tiles,
		visibility: make([]Visibility, width*height),
	}
}

// InBounds returns true if (x, y) lies on the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// OnBorder returns true if (x, y) lies on the outermost ring of the grid.
func (g *TileGrid) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
}

func (g *TileGrid) index(x, y int) int {
	return y*g.Width + x
}

// Get returns the tile at the given position.
func (g *TileGrid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[g.index(x, y)]
}

// Set replaces the tile at the given position.
func (g *TileGrid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[g.index(x, y)] = t
}

// IsWalkable returns true if the given position can be walked on.
func (g *TileGrid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.tiles[g.index(x, y)].Walkable()
}

// Count returns how many cells hold the given tile.
func (g *TileGrid) Count(t Tile) int {
	n := 0
	for _, cell := range g.tiles {
		if cell == t {
			n++
		}
	}
	return n
}

// FindTile returns the first cell holding the given tile, scanning rows
// top to bottom and each row left to right.
func (g *TileGrid) FindTile(t Tile) (Point, bool) {
	for i, cell := range g.tiles {
		if cell == t {
			return Point{X: i % g.Width, Y: i / g.Width}, true
		}
	}
	return Point{}, false
}

// FindSpawn returns the walkable cell nearest the grid center, searching in
// growing square rings. The center itself is returned when nothing on the
// grid is walkable.
func (g *TileGrid) FindSpawn() Point {
	return g.searchFromCenter(func(x, y int) bool {
		return g.IsWalkable(x, y)
	})
}

// FindRoadSpawn prefers the road cell nearest the grid center and falls
// back to FindSpawn when the grid has no road.
func (g *TileGrid) FindRoadSpawn() Point {
	if g.Count(TileRoad) == 0 {
		return g.FindSpawn()
	}
	return g.searchFromCenter(func(x, y int) bool {
		return g.Get(x, y) == TileRoad
	})
}

func (g *TileGrid) searchFromCenter(match func(x, y int) bool) Point {
	cx, cy := g.Width/2, g.Height/2
	maxR := max(g.Width, g.Height)
	for r := 0; r < maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				// Only the ring at distance r is new.
				if abs(dx) != r && abs(dy) != r {
					continue
				}
				if match(cx+dx, cy+dy) {
					return Point{X: cx + dx, Y: cy + dy}
				}
			}
		}
	}
	return Point{X: cx, Y: cy}
}

// Equal reports whether two grids hold identical tiles. Visibility is
// ignored, and a nil grid equals nothing.
func (g *TileGrid) Equal(other *TileGrid) bool {
	if g == nil || other == nil {
		return false
	}
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// String renders the grid as rows of glyphs, one line per row.
func (g *TileGrid) String() string {
	buf := make([]rune, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			buf = append(buf, g.Get(x, y).Glyph())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
