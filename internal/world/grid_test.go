package world

import "testing"

// reachableCount counts the cells reachable from start by legal king moves.
func reachableCount(g *TileGrid, start Point) int {
	if !g.IsWalkable(start.X, start.Y) {
		return 0
	}
	seen := map[Point]bool{start: true}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range kingSteps {
			next := p.Add(d.X, d.Y)
			if seen[next] || !g.CanStep(p, d.X, d.Y) {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return len(seen)
}

// walkableCount counts every walkable cell on the grid.
func walkableCount(g *TileGrid) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsWalkable(x, y) {
				n++
			}
		}
	}
	return n
}

// checkBorder fails the test if any border cell is not want.
func checkBorder(t *testing.T, g *TileGrid, want Tile) {
	t.Helper()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.OnBorder(x, y) && g.Get(x, y) != want {
				t.Fatalf("border cell (%d,%d) = %v, want %v", x, y, g.Get(x, y), want)
			}
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewTileGrid(5, 4, TileFloor)

	tests := []struct {
		x, y int
	}{
		{-1, 0}, {0, -1}, {5, 0}, {0, 4}, {100, 100}, {-7, -7},
	}
	for _, tt := range tests {
		if got := g.Get(tt.x, tt.y); got != TileWall {
			t.Errorf("Get(%d, %d) = %v, want wall", tt.x, tt.y, got)
		}
		if g.IsWalkable(tt.x, tt.y) {
			t.Errorf("IsWalkable(%d, %d) = true, want false", tt.x, tt.y)
		}
		if got := g.GetVisibility(tt.x, tt.y); got != Hidden {
			t.Errorf("GetVisibility(%d, %d) = %v, want hidden", tt.x, tt.y, got)
		}
		g.Set(tt.x, tt.y, TileGrass)
	}

	if got := g.Count(TileFloor); got != 20 {
		t.Errorf("Count(floor) after out-of-bounds writes = %d, want 20", got)
	}
}

func TestNewTileGridEmpty(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 10}, {10, 0}, {-3, 5}, {5, -3},
	}
	for _, tt := range tests {
		g := NewTileGrid(tt.width, tt.height, TileFloor)
		if g.Width != 0 || g.Height != 0 {
			t.Errorf("NewTileGrid(%d, %d) size = %dx%d, want 0x0", tt.width, tt.height, g.Width, g.Height)
		}
		if got := g.Get(0, 0); got != TileWall {
			t.Errorf("NewTileGrid(%d, %d).Get(0, 0) = %v, want wall", tt.width, tt.height, got)
		}
		g.ComputeFOV(0, 0, 5)
		g.Age()
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewTileGrid(6, 6, TileWall)
	g.Set(2, 3, TileRoad)

	if got := g.Get(2, 3); got != TileRoad {
		t.Errorf("Get(2, 3) = %v, want road", got)
	}
	if got := g.Get(3, 2); got != TileWall {
		t.Errorf("Get(3, 2) = %v, want wall", got)
	}

	p, ok := g.FindTile(TileRoad)
	if !ok || p != (Point{2, 3}) {
		t.Errorf("FindTile(road) = %v, %v, want (2,3), true", p, ok)
	}
	if _, ok := g.FindTile(TileStairsDown); ok {
		t.Error("FindTile(stairs down) found a tile on a grid without one")
	}
}

func TestFindSpawn(t *testing.T) {
	g := NewTileGrid(11, 11, TileWall)
	g.Set(8, 2, TileFloor)

	if got := g.FindSpawn(); got != (Point{8, 2}) {
		t.Errorf("FindSpawn() = %v, want (8,2)", got)
	}

	g.Set(5, 5, TileGrass)
	if got := g.FindSpawn(); got != (Point{5, 5}) {
		t.Errorf("FindSpawn() with walkable center = %v, want (5,5)", got)
	}

	solid := NewTileGrid(7, 7, TileWall)
	if got := solid.FindSpawn(); got != (Point{3, 3}) {
		t.Errorf("FindSpawn() on solid grid = %v, want center (3,3)", got)
	}
}

func TestFindRoadSpawn(t *testing.T) {
	g := NewTileGrid(11, 11, TileGrass)
	if got, want := g.FindRoadSpawn(), g.FindSpawn(); got != want {
		t.Errorf("FindRoadSpawn() without roads = %v, want FindSpawn() %v", got, want)
	}

	g.Set(1, 9, TileRoad)
	if got := g.FindRoadSpawn(); got != (Point{1, 9}) {
		t.Errorf("FindRoadSpawn() = %v, want (1,9)", got)
	}
}

func TestEqual(t *testing.T) {
	g := NewTileGrid(4, 4, TileFloor)
	same := NewTileGrid(4, 4, TileFloor)
	same.ComputeFOV(2, 2, 1)
	changed := NewTileGrid(4, 4, TileFloor)
	changed.Set(1, 1, TileWall)

	tests := []struct {
		name  string
		other *TileGrid
		want  bool
	}{
		{"same tiles, other visibility", same, true},
		{"one tile differs", changed, false},
		{"different size", NewTileGrid(4, 5, TileFloor), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		if got := g.Equal(tt.other); got != tt.want {
			t.Errorf("Equal(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}

	var none *TileGrid
	if none.Equal(g) {
		t.Error("nil.Equal() = true, want false")
	}
}

func TestPointDistances(t *testing.T) {
	tests := []struct {
		a, b                 Point
		chebyshev, manhattan int
	}{
		{Point{0, 0}, Point{0, 0}, 0, 0},
		{Point{0, 0}, Point{3, 4}, 4, 7},
		{Point{5, 5}, Point{2, 7}, 3, 5},
		{Point{-1, 2}, Point{1, -2}, 4, 6},
	}
	for _, tt := range tests {
		if got := tt.a.Chebyshev(tt.b); got != tt.chebyshev {
			t.Errorf("%v.Chebyshev(%v) = %d, want %d", tt.a, tt.b, got, tt.chebyshev)
		}
		if got := tt.a.Manhattan(tt.b); got != tt.manhattan {
			t.Errorf("%v.Manhattan(%v) = %d, want %d", tt.a, tt.b, got, tt.manhattan)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 5, Height: 4}

	if got := r.Center(); got != (Point{4, 5}) {
		t.Errorf("Center() = %v, want (4,5)", got)
	}
	if !r.Contains(Point{6, 6}) || r.Contains(Point{7, 6}) {
		t.Error("Contains() disagrees with the half-open bounds")
	}
	if !r.Intersects(Rect{X: 6, Y: 6, Width: 3, Height: 3}) {
		t.Error("Intersects() = false for overlapping corner")
	}
	if r.Intersects(Rect{X: 7, Y: 3, Width: 2, Height: 2}) {
		t.Error("Intersects() = true for touching rectangles")
	}
}
