package world

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Edge joins two entries of a point list by index.
type Edge struct {
	A, B int
}

// BuildRoads connects every entrance to every other with roads. Entrances
// are joined along a minimum spanning tree, and each tree edge is carved
// along the cheapest terrain-weighted route. Only grass and trees become
// road, and the border ring is never touched.
func (g *TileGrid) BuildRoads(entrances []Point, cfg MapGenConfig) int {
	if len(entrances) < 2 {
		return 0
	}

	carved := 0
	for _, e := range PrimMST(entrances) {
		for _, p := range g.roadPath(entrances[e.A], entrances[e.B], cfg) {
			if t := g.Get(p.X, p.Y); t == TileGrass || t == TileTree {
				g.Set(p.X, p.Y, TileRoad)
				carved++
			}
		}
	}
	return carved
}

// PrimMST returns the edges of a minimum spanning tree over points using
// Euclidean distance, grown from the first point. Each edge is reported as
// (tree node, newly added node) in the order nodes join the tree.
func PrimMST(points []Point) []Edge {
	n := len(points)
	if n < 2 {
		return nil
	}

	inTree := mapset.New[int]()
	inTree.Put(0)
	minCost := make([]float64, n)
	minEdge := make([]int, n)
	for i := 1; i < n; i++ {
		minCost[i] = euclid(points[i], points[0])
	}

	edges := make([]Edge, 0, n-1)
	for inTree.Size() < n {
		best, bestCost := -1, math.MaxFloat64
		for i := 0; i < n; i++ {
			if !inTree.Has(i) && minCost[i] < bestCost {
				best, bestCost = i, minCost[i]
			}
		}
		if best < 0 {
			break
		}
		inTree.Put(best)
		edges = append(edges, Edge{A: minEdge[best], B: best})

		for i := 0; i < n; i++ {
			if inTree.Has(i) {
				continue
			}
			if d := euclid(points[i], points[best]); d < minCost[i] {
				minCost[i] = d
				minEdge[i] = best
			}
		}
	}
	return edges
}

func euclid(a, b Point) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// roadCost returns the cost of stepping onto a tile while planning roads,
// or false if the tile cannot be crossed.
func roadCost(t Tile, cfg MapGenConfig) (int, bool) {
	switch t {
	case TileGrass:
		return cfg.RoadCostGrass, true
	case TileTree:
		return cfg.RoadCostTree, true
	case TileRoad:
		return cfg.RoadCostRoad, true
	case TileFloor:
		return cfg.RoadCostFloor, true
	case TileDungeonEntrance:
		return cfg.RoadCostEntrance, true
	default:
		return 0, false
	}
}

// roadPath finds the cheapest 4-directional route between two points that
// stays off the border ring.
func (g *TileGrid) roadPath(start, goal Point, cfg MapGenConfig) []Point {
	return g.astar(start, goal, func(p Point, visit func(Point, int)) {
		for _, d := range orthogonal {
			next := p.Add(d.X, d.Y)
			if !g.InBounds(next.X, next.Y) || g.OnBorder(next.X, next.Y) {
				continue
			}
			if cost, ok := roadCost(g.Get(next.X, next.Y), cfg); ok {
				visit(next, cost)
			}
		}
	})
}
