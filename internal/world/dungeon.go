package world

// Dungeon is a chain of levels reached through one overworld entrance.
type Dungeon struct {
	Levels   []*TileGrid
	Styles   []DungeonStyle // Cosmetic style per level
	Biome    DungeonBiome
	Entrance Point // Overworld position of the entrance
}

// Depth returns the number of levels in the dungeon.
func (d *Dungeon) Depth() int {
	return len(d.Levels)
}

// HasLair returns true if the deepest level is a cave lair.
func (d *Dungeon) HasLair() bool {
	return d.Biome == BiomeDragonLair
}

// GenerateDungeon builds depth BSP levels below entrance. When hasCave is
// set a cave lair is appended as the deepest level, and the last BSP level
// gets stairs down into it.
func GenerateDungeon(entrance Point, depth int, seed uint64, hasCave bool, biome DungeonBiome, cfg MapGenConfig) *Dungeon {
	total := depth
	if hasCave {
		total++
	}
	d := &Dungeon{
		Levels:   make([]*TileGrid, 0, total),
		Styles:   make([]DungeonStyle, 0, total),
		Biome:    biome,
		Entrance: entrance,
	}

	rng := seedState(seed)
	for level := 0; level < depth; level++ {
		size := cfg.levelSize(level)
		rng = xorshift64(rng)
		d.Levels = append(d.Levels, GenerateBSPDungeon(size.Width, size.Height, rng, level, total, cfg))
		d.Styles = append(d.Styles, biome.StyleForLevel(level, false))
	}

	if hasCave {
		rng = xorshift64(rng)
		d.Levels = append(d.Levels, GenerateCave(cfg.CaveWidth, cfg.CaveHeight, rng, cfg))
		d.Styles = append(d.Styles, biome.StyleForLevel(depth, true))
	}
	return d
}

// GenerateBSPDungeon creates one dungeon level: BSP rooms joined in order by
// L-shaped corridors, stairs up in the first room and, unless this is the
// deepest level, stairs down in the last.
func GenerateBSPDungeon(width, height int, seed uint64, level, totalLevels int, cfg MapGenConfig) *TileGrid {
	g := NewTileGrid(width, height, TileWall)
	if width < 3 || height < 3 {
		return g
	}

	rng := seedState(seed)
	root := &bspNode{x: 1, y: 1, width: width - 2, height: height - 2}
	rooms := root.splitRooms(cfg.BSPMinRoom, &rng, nil)

	for _, room := range rooms {
		carveRoom(g, room)
	}

	// Rooms come out depth-first, so neighbors in the slice are neighbors
	// in the partition. Joining each consecutive pair joins the level.
	for i := 1; i < len(rooms); i++ {
		a, b := rooms[i-1].Center(), rooms[i].Center()
		carveHorizontalTunnel(g, a.X, b.X, a.Y)
		carveVerticalTunnel(g, a.Y, b.Y, b.X)
	}

	placeStairs(g, rooms, level < totalLevels-1)
	return g
}

// bspNode is one rectangle of the recursive partition.
type bspNode struct {
	x, y          int
	width, height int
}

// splitRooms partitions the node and appends one room per leaf to rooms,
// left subtree before right subtree.
func (n bspNode) splitRooms(minRoom int, rng *uint64, rooms []Rect) []Rect {
	minSplit := minRoom*2 + 1

	if n.width < minSplit && n.height < minSplit {
		return append(rooms, n.leafRoom(minRoom, rng))
	}

	*rng = xorshift64(*rng)
	var vertical bool // true cuts the width, false cuts the height
	switch {
	case n.width < minSplit:
		vertical = false
	case n.height < minSplit:
		vertical = true
	default:
		vertical = *rng%2 == 0
	}

	*rng = xorshift64(*rng)
	if vertical {
		split := minRoom + 1 + signedMod(*rng, max(n.width-minSplit+1, 1))
		split = min(split, n.width-minRoom-1)
		rooms = bspNode{n.x, n.y, split, n.height}.splitRooms(minRoom, rng, rooms)
		return bspNode{n.x + split, n.y, n.width - split, n.height}.splitRooms(minRoom, rng, rooms)
	}
	split := minRoom + 1 + signedMod(*rng, max(n.height-minSplit+1, 1))
	split = min(split, n.height-minRoom-1)
	rooms = bspNode{n.x, n.y, n.width, split}.splitRooms(minRoom, rng, rooms)
	return bspNode{n.x, n.y + split, n.width, n.height - split}.splitRooms(minRoom, rng, rooms)
}

// leafRoom shrinks a leaf by a random inset of zero or one cell per axis.
// The room never leaves its leaf, even when the leaf is smaller than
// minRoom.
func (n bspNode) leafRoom(minRoom int, rng *uint64) Rect {
	padX, padY := 0, 0
	*rng = xorshift64(*rng)
	if n.width > minRoom+2 {
		padX = signedMod(*rng, 2)
	}
	*rng = xorshift64(*rng)
	if n.height > minRoom+2 {
		padY = signedMod(*rng, 2)
	}
	return Rect{
		X:      n.x + padX,
		Y:      n.y + padY,
		Width:  min(max(n.width-padX*2, minRoom), n.width),
		Height: min(max(n.height-padY*2, minRoom), n.height),
	}
}

// carveRoom sets all interior tiles within the room to floor.
func carveRoom(g *TileGrid, room Rect) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if !g.OnBorder(x, y) {
				g.Set(x, y, TileFloor)
			}
		}
	}
}

// carveHorizontalTunnel carves a horizontal tunnel, never touching the border.
func carveHorizontalTunnel(g *TileGrid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if g.InBounds(x, y) && !g.OnBorder(x, y) {
			g.Set(x, y, TileFloor)
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel, never touching the border.
func carveVerticalTunnel(g *TileGrid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if g.InBounds(x, y) && !g.OnBorder(x, y) {
			g.Set(x, y, TileFloor)
		}
	}
}

// placeStairs puts stairs up at the first room's center and, when down is
// set, stairs down at the last room's center.
func placeStairs(g *TileGrid, rooms []Rect, down bool) {
	if len(rooms) == 0 {
		return
	}
	up := rooms[0].Center()
	if g.Get(up.X, up.Y) != TileFloor {
		p, ok := g.FindTile(TileFloor)
		if !ok {
			return
		}
		up = p
	}
	g.Set(up.X, up.Y, TileStairsUp)
	if !down {
		return
	}

	if len(rooms) > 1 {
		p := rooms[len(rooms)-1].Center()
		g.Set(p.X, p.Y, TileStairsDown)
		return
	}
	// A single room holds both flights; use its last floor cell.
	for i := len(g.tiles) - 1; i >= 0; i-- {
		if g.tiles[i] == TileFloor {
			g.tiles[i] = TileStairsDown
			return
		}
	}
}
