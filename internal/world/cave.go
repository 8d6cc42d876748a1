package world

// lairAttempts bounds how many seeds GenerateCave tries before giving up on
// finding any floor.
const lairAttempts = 16

// cellularCave fills the interior with random floor and smooths it into
// cave shapes. The border is always wall.
func cellularCave(width, height int, seed uint64, cfg MapGenConfig) *TileGrid {
	g := NewTileGrid(width, height, TileWall)
	g.scatter(seedState(seed), cfg.CaveWallPct, TileFloor)
	for i := 0; i < cfg.CaveSmoothPasses; i++ {
		g.smooth(TileWall, TileFloor, cfg.CaveNeighborThreshold)
	}
	return g
}

// Generate creates a plain cellular automata cave. Floor regions are not
// guaranteed to be connected and no stairs are placed.
func Generate(width, height int, seed uint64, cfg MapGenConfig) *TileGrid {
	return cellularCave(width, height, seed, cfg)
}

// GenerateCave creates a boss lair: a cave reduced to its largest connected
// floor region with stairs up on the first floor cell in row-major order.
// The lair never has stairs down.
func GenerateCave(width, height int, seed uint64, cfg MapGenConfig) *TileGrid {
	state := seed
	var g *TileGrid
	for attempt := 0; attempt < lairAttempts; attempt++ {
		g = cellularCave(width, height, state, cfg)
		if g.keepLargestRegion(TileFloor, TileWall) > 0 {
			break
		}
		state = xorshift64(seedState(state))
	}

	if p, ok := g.FindTile(TileFloor); ok {
		g.Set(p.X, p.Y, TileStairsUp)
	}
	return g
}
