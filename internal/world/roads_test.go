package world

import "testing"

func TestPrimMST(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {3, 0}, {3, 4}}
	edges := PrimMST(points)

	want := []Edge{{A: 0, B: 2}, {A: 2, B: 3}, {A: 2, B: 1}}
	if len(edges) != len(want) {
		t.Fatalf("PrimMST() = %v, want %v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("PrimMST()[%d] = %v, want %v", i, edges[i], want[i])
		}
	}
}

func TestPrimMSTSmallInputs(t *testing.T) {
	if edges := PrimMST(nil); edges != nil {
		t.Errorf("PrimMST(nil) = %v, want nil", edges)
	}
	if edges := PrimMST([]Point{{4, 4}}); edges != nil {
		t.Errorf("PrimMST(single) = %v, want nil", edges)
	}
}

func TestPrimMSTSpans(t *testing.T) {
	points := []Point{{5, 5}, {40, 12}, {90, 80}, {10, 150}, {120, 30}, {60, 60}, {150, 150}}
	edges := PrimMST(points)
	if len(edges) != len(points)-1 {
		t.Fatalf("PrimMST() has %d edges, want %d", len(edges), len(points)-1)
	}

	joined := map[int]bool{0: true}
	for _, e := range edges {
		if !joined[e.A] {
			t.Errorf("edge %v starts outside the tree", e)
		}
		if joined[e.B] {
			t.Errorf("edge %v adds a node twice", e)
		}
		joined[e.B] = true
	}
	if len(joined) != len(points) {
		t.Errorf("tree reaches %d of %d points", len(joined), len(points))
	}
}

func TestBuildRoadsStraight(t *testing.T) {
	cfg := NormalConfig()
	g := NewTileGrid(20, 10, TileTree)
	a, b := Point{3, 5}, Point{15, 5}
	g.Set(a.X, a.Y, TileDungeonEntrance)
	g.Set(b.X, b.Y, TileDungeonEntrance)

	if got := g.BuildRoads([]Point{a, b}, cfg); got != 11 {
		t.Errorf("BuildRoads() carved %d cells, want 11", got)
	}
	for x := 4; x <= 14; x++ {
		if g.Get(x, 5) != TileRoad {
			t.Errorf("(%d,5) = %v, want road", x, g.Get(x, 5))
		}
	}
	if g.Get(a.X, a.Y) != TileDungeonEntrance || g.Get(b.X, b.Y) != TileDungeonEntrance {
		t.Error("BuildRoads() overwrote an entrance")
	}
}

func TestBuildRoadsPrefersGrass(t *testing.T) {
	cfg := NormalConfig()
	g := NewTileGrid(20, 12, TileTree)
	a, b := Point{3, 5}, Point{15, 5}
	g.Set(a.X, a.Y, TileDungeonEntrance)
	g.Set(b.X, b.Y, TileDungeonEntrance)
	// A grass detour two rows down is cheaper than cutting through trees.
	for x := 3; x <= 15; x++ {
		g.Set(x, 7, TileGrass)
	}
	g.Set(3, 6, TileGrass)
	g.Set(15, 6, TileGrass)

	g.BuildRoads([]Point{a, b}, cfg)
	if g.Get(9, 5) == TileRoad {
		t.Error("road cut through the trees instead of following the grass")
	}
	if g.Get(9, 7) != TileRoad {
		t.Errorf("(9,7) = %v, want road along the grass", g.Get(9, 7))
	}
}

func TestBuildRoadsAvoidsBorder(t *testing.T) {
	cfg := NormalConfig()
	g := NewTileGrid(12, 6, TileTree)
	// A wall splits the interior except along the border rows.
	for y := 1; y < 5; y++ {
		g.Set(6, y, TileWall)
	}
	a, b := Point{2, 3}, Point{10, 3}
	g.Set(a.X, a.Y, TileDungeonEntrance)
	g.Set(b.X, b.Y, TileDungeonEntrance)

	if got := g.BuildRoads([]Point{a, b}, cfg); got != 0 {
		t.Errorf("BuildRoads() carved %d cells around the border, want 0", got)
	}
	for x := 0; x < g.Width; x++ {
		if g.Get(x, 0) == TileRoad || g.Get(x, g.Height-1) == TileRoad {
			t.Fatalf("road on border column %d", x)
		}
	}
}

func TestBuildRoadsTooFewEntrances(t *testing.T) {
	g := NewTileGrid(10, 10, TileGrass)
	if got := g.BuildRoads([]Point{{5, 5}}, NormalConfig()); got != 0 {
		t.Errorf("BuildRoads() with one entrance carved %d cells", got)
	}
}
