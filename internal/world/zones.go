package world

const (
	// entranceSpacing is the Chebyshev distance two entrances must exceed,
	// which keeps their footprints and clearings apart.
	entranceSpacing = 5

	// placementAttempts bounds the perturbed-seed retries of PlaceDungeons.
	placementAttempts = 32

	// placementSeedStep perturbs the seed between placement passes.
	placementSeedStep = 7
)

// PlaceDungeons stamps small stone entrance structures onto a forest map
// and returns the entrance positions. The map is split into BSP zones and
// each zone has a chance of receiving an entrance at its center:
//
//	# # #
//	# > #
//
// Trees directly below a structure are cleared to grass so the entrance
// always opens onto walkable ground. When a pass yields fewer than
// cfg.DungeonMinCount entrances, further passes with perturbed seeds add
// more.
func (g *TileGrid) PlaceDungeons(seed uint64, cfg MapGenConfig) []Point {
	var entrances []Point
	for attempt := 0; attempt < placementAttempts; attempt++ {
		entrances = g.placeEntrancePass(seed, cfg, entrances)
		if len(entrances) >= cfg.DungeonMinCount {
			break
		}
		seed += placementSeedStep
	}
	return entrances
}

// placeEntrancePass runs one zoning pass and appends new entrances to placed.
func (g *TileGrid) placeEntrancePass(seed uint64, cfg MapGenConfig, placed []Point) []Point {
	rng := seedState(seed)
	zones := subdivideZones(Rect{X: 2, Y: 2, Width: g.Width - 4, Height: g.Height - 4}, cfg.BSPMinZone, &rng, nil)

	var roll uint64
	for _, zone := range zones {
		rng, roll = nextPct(rng)
		if roll >= cfg.DungeonPlaceChancePct {
			continue
		}

		c := zone.Center()
		if c.X < 2 || c.Y < 2 || c.X >= g.Width-2 || c.Y+2 >= g.Height-1 {
			continue
		}
		entrance := Point{X: c.X, Y: c.Y + 1}
		if tooClose(entrance, placed) {
			continue
		}

		g.stampEntrance(c)
		placed = append(placed, entrance)
	}
	return placed
}

// stampEntrance writes the 3x2 structure whose top row is centered on c and
// clears trees from the row beneath it.
func (g *TileGrid) stampEntrance(c Point) {
	for dx := -1; dx <= 1; dx++ {
		g.Set(c.X+dx, c.Y, TileWall)
	}
	g.Set(c.X-1, c.Y+1, TileWall)
	g.Set(c.X, c.Y+1, TileDungeonEntrance)
	g.Set(c.X+1, c.Y+1, TileWall)

	for dx := -1; dx <= 1; dx++ {
		if g.Get(c.X+dx, c.Y+2) == TileTree {
			g.Set(c.X+dx, c.Y+2, TileGrass)
		}
	}
}

func tooClose(p Point, placed []Point) bool {
	for _, q := range placed {
		if p.Chebyshev(q) <= entranceSpacing {
			return true
		}
	}
	return false
}

// subdivideZones splits r into zones of at least minSize on each side and
// appends them to zones in depth-first order.
func subdivideZones(r Rect, minSize int, rng *uint64, zones []Rect) []Rect {
	if r.Width < minSize*2 && r.Height < minSize*2 {
		return append(zones, r)
	}

	*rng = xorshift64(*rng)
	var vertical bool // true cuts the width, false cuts the height
	switch {
	case r.Width < minSize*2:
		vertical = false
	case r.Height < minSize*2:
		vertical = true
	default:
		vertical = *rng%2 == 0
	}

	*rng = xorshift64(*rng)
	if vertical {
		split := minSize + signedMod(*rng, r.Width-minSize*2+1)
		zones = subdivideZones(Rect{r.X, r.Y, split, r.Height}, minSize, rng, zones)
		return subdivideZones(Rect{r.X + split, r.Y, r.Width - split, r.Height}, minSize, rng, zones)
	}
	split := minSize + signedMod(*rng, r.Height-minSize*2+1)
	zones = subdivideZones(Rect{r.X, r.Y, r.Width, split}, minSize, rng, zones)
	return subdivideZones(Rect{r.X, r.Y + split, r.Width, r.Height - split}, minSize, rng, zones)
}
