package world

// orthogonal lists the four cardinal step offsets.
var orthogonal = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// keepLargestRegion finds every 4-connected region of target cells, keeps
// the largest and converts the rest to fill. Ties keep the region found
// first in row-major order. It returns the size of the kept region.
func (g *TileGrid) keepLargestRegion(target, fill Tile) int {
	regionID := make([]int, len(g.tiles))
	sizes := []int{0} // index 0 means "no region"

	for i, t := range g.tiles {
		if t != target || regionID[i] != 0 {
			continue
		}
		id := len(sizes)
		sizes = append(sizes, g.floodRegion(i, id, regionID, target))
	}
	if len(sizes) == 1 {
		return 0
	}

	largest := 1
	for id := 2; id < len(sizes); id++ {
		if sizes[id] > sizes[largest] {
			largest = id
		}
	}

	for i, t := range g.tiles {
		if t == target && regionID[i] != largest {
			g.tiles[i] = fill
		}
	}
	return sizes[largest]
}

// floodRegion labels every target cell 4-connected to start with id and
// returns how many cells it labelled. It uses an explicit stack so large
// open maps cannot exhaust the goroutine stack.
func (g *TileGrid) floodRegion(start, id int, regionID []int, target Tile) int {
	stack := []int{start}
	count := 0
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if regionID[i] != 0 || g.tiles[i] != target {
			continue
		}
		regionID[i] = id
		count++

		x, y := i%g.Width, i/g.Width
		for _, d := range orthogonal {
			nx, ny := x+d.X, y+d.Y
			if g.InBounds(nx, ny) {
				stack = append(stack, g.index(nx, ny))
			}
		}
	}
	return count
}

// smooth runs one cellular automata pass over the interior. A cell becomes
// solid when at least threshold of its eight neighbors in the previous pass
// were solid, counting off-grid neighbors as solid. The border is left
// untouched.
func (g *TileGrid) smooth(solid, open Tile, threshold int) {
	prev := append([]Tile(nil), g.tiles...)
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !g.InBounds(nx, ny) || prev[g.index(nx, ny)] == solid {
						count++
					}
				}
			}
			if count >= threshold {
				g.tiles[g.index(x, y)] = solid
			} else {
				g.tiles[g.index(x, y)] = open
			}
		}
	}
}

// scatter fills the interior with open cells wherever a roll is at or above
// solidPct, leaving the rest as they are. It returns the advanced state.
func (g *TileGrid) scatter(state uint64, solidPct uint64, open Tile) uint64 {
	var roll uint64
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			state, roll = nextPct(state)
			if roll >= solidPct {
				g.tiles[g.index(x, y)] = open
			}
		}
	}
	return state
}
