package world

// GenerateForest creates an overworld of trees and grass clearings using
// cellular automata. The border is always trees, and only the largest
// connected clearing survives, so every grass cell can reach every other
// grass cell without leaving the grass.
func GenerateForest(width, height int, seed uint64, cfg MapGenConfig) *TileGrid {
	g := NewTileGrid(width, height, TileTree)
	g.scatter(seedState(seed), cfg.ForestTreePct, TileGrass)
	for i := 0; i < cfg.ForestSmoothPasses; i++ {
		g.smooth(TileTree, TileGrass, cfg.ForestNeighborThreshold)
	}

	// A 4-connected region is also connected for 8-directional movement
	// that refuses to cut corners, since orthogonal steps never cut one.
	g.keepLargestRegion(TileGrass, TileTree)
	return g
}
