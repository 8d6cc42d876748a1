package world

import (
	"math"

	"github.com/zyedidia/generic/heap"
)

// kingSteps lists the eight step offsets, orthogonal first.
var kingSteps = [8]Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// FindPath returns a shortest walk from start to goal, both included, moving
// in eight directions. A diagonal step is only taken when both orthogonal
// cells beside it are walkable, so paths never slip through a wall corner.
// The path is empty when either end is not walkable or goal is unreachable.
func (g *TileGrid) FindPath(start, goal Point) []Point {
	if !g.IsWalkable(start.X, start.Y) || !g.IsWalkable(goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return []Point{start}
	}
	return g.astar(start, goal, g.walkSteps)
}

// CanStep reports whether a single king move from p by (dx, dy) is legal:
// the target is walkable and a diagonal does not cut a corner.
func (g *TileGrid) CanStep(p Point, dx, dy int) bool {
	if !g.IsWalkable(p.X+dx, p.Y+dy) {
		return false
	}
	if dx != 0 && dy != 0 {
		return g.IsWalkable(p.X+dx, p.Y) && g.IsWalkable(p.X, p.Y+dy)
	}
	return true
}

// walkSteps offers every legal king move at unit cost.
func (g *TileGrid) walkSteps(p Point, visit func(Point, int)) {
	for _, d := range kingSteps {
		if g.CanStep(p, d.X, d.Y) {
			visit(p.Add(d.X, d.Y), 1)
		}
	}
}

// searchNode is an entry in the A* open set.
type searchNode struct {
	f, g int
	p    Point
}

// searchLess orders the open set by estimated total cost, then cost so far,
// then position, so equal-cost searches always expand in the same order.
func searchLess(a, b searchNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	if a.p.X != b.p.X {
		return a.p.X < b.p.X
	}
	return a.p.Y < b.p.Y
}

// astar searches from start to goal using steps to enumerate moves and
// their costs, with the Manhattan distance as estimate. Stale open-set
// entries are skipped rather than removed.
func (g *TileGrid) astar(start, goal Point, steps func(Point, func(Point, int))) []Point {
	if !g.InBounds(start.X, start.Y) || !g.InBounds(goal.X, goal.Y) {
		return nil
	}

	gScore := make([]int, len(g.tiles))
	cameFrom := make([]int, len(g.tiles))
	for i := range gScore {
		gScore[i] = math.MaxInt
		cameFrom[i] = -1
	}

	startIdx := g.index(start.X, start.Y)
	gScore[startIdx] = 0
	open := heap.New[searchNode](searchLess)
	open.Push(searchNode{f: start.Manhattan(goal), g: 0, p: start})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if cur.p == goal {
			return g.reconstructPath(cameFrom, startIdx, g.index(goal.X, goal.Y))
		}
		curIdx := g.index(cur.p.X, cur.p.Y)
		if cur.g > gScore[curIdx] {
			continue
		}

		steps(cur.p, func(next Point, cost int) {
			ng := cur.g + cost
			ni := g.index(next.X, next.Y)
			if ng < gScore[ni] {
				gScore[ni] = ng
				cameFrom[ni] = curIdx
				open.Push(searchNode{f: ng + next.Manhattan(goal), g: ng, p: next})
			}
		})
	}
	return nil
}

// reconstructPath walks cameFrom back from goal and returns the path in
// travel order.
func (g *TileGrid) reconstructPath(cameFrom []int, startIdx, goalIdx int) []Point {
	var path []Point
	for i := goalIdx; ; i = cameFrom[i] {
		path = append(path, Point{X: i % g.Width, Y: i / g.Width})
		if i == startIdx {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
