package world

import (
	"errors"
	"fmt"
)

// LevelSize is the width and height of one dungeon level.
type LevelSize struct {
	Width, Height int
}

// MapGenConfig holds the parameters for forest, cave, dungeon and road
// generation.
type MapGenConfig struct {
	// Overworld dimensions
	OverworldWidth  int
	OverworldHeight int

	// Forest cellular automata
	ForestTreePct           uint64 // Initial tree percentage (0-100)
	ForestSmoothPasses      int
	ForestNeighborThreshold int // Tree neighbors needed to become a tree

	// Cave cellular automata
	CaveWallPct           uint64 // Initial wall percentage (0-100)
	CaveSmoothPasses      int
	CaveNeighborThreshold int // Wall neighbors needed to become a wall
	CaveWidth             int // Lair dimensions
	CaveHeight            int

	// Dungeon entrance placement on the overworld
	BSPMinZone            int
	DungeonPlaceChancePct uint64
	DungeonMinCount       int

	// Dungeon interiors
	BSPMinRoom        int
	DungeonDepth      int
	DungeonLevelSizes []LevelSize // Deeper levels reuse the last entry

	// Road A* step costs
	RoadCostGrass    int
	RoadCostTree     int
	RoadCostRoad     int
	RoadCostFloor    int
	RoadCostEntrance int
}

// NormalConfig returns the standard generation parameters.
func NormalConfig() MapGenConfig {
	return MapGenConfig{
		OverworldWidth:          200,
		OverworldHeight:         200,
		ForestTreePct:           55,
		ForestSmoothPasses:      4,
		ForestNeighborThreshold: 5,
		CaveWallPct:             45,
		CaveSmoothPasses:        5,
		CaveNeighborThreshold:   5,
		CaveWidth:               80,
		CaveHeight:              60,
		BSPMinZone:              30,
		DungeonPlaceChancePct:   60,
		DungeonMinCount:         3,
		BSPMinRoom:              5,
		DungeonDepth:            3,
		DungeonLevelSizes:       []LevelSize{{40, 30}, {50, 35}, {60, 40}},
		RoadCostGrass:           2,
		RoadCostTree:            6,
		RoadCostRoad:            1,
		RoadCostFloor:           2,
		RoadCostEntrance:        1,
	}
}

// minZoneSize keeps entrances of neighboring zones more than
// entranceSpacing apart, so no zone loses its entrance to a neighbor within
// a pass.
const minZoneSize = entranceSpacing + 2

// ErrInvalidConfig is returned when generation parameters are unusable.
var ErrInvalidConfig = errors.New("invalid map generation config")

// Validate checks that the parameters can produce a world.
func (c MapGenConfig) Validate() error {
	switch {
	case c.BSPMinZone < minZoneSize:
		return fmt.Errorf("%w: zone size %d below %d", ErrInvalidConfig, c.BSPMinZone, minZoneSize)
	case c.OverworldWidth < 2*c.BSPMinZone+4 || c.OverworldHeight < 2*c.BSPMinZone+4:
		return fmt.Errorf("%w: overworld %dx%d too small for zones of %d",
			ErrInvalidConfig, c.OverworldWidth, c.OverworldHeight, c.BSPMinZone)
	case c.DungeonMinCount < 1 || c.DungeonMinCount > c.guaranteedZones():
		return fmt.Errorf("%w: %d dungeons wanted but only %d zones are certain",
			ErrInvalidConfig, c.DungeonMinCount, c.guaranteedZones())
	case c.BSPMinRoom < 3:
		return fmt.Errorf("%w: room size %d below 3", ErrInvalidConfig, c.BSPMinRoom)
	case c.ForestTreePct > 100 || c.CaveWallPct > 100 || c.DungeonPlaceChancePct > 100:
		return fmt.Errorf("%w: percentages must be within 0-100", ErrInvalidConfig)
	case c.DungeonPlaceChancePct == 0:
		return fmt.Errorf("%w: dungeon place chance must be positive", ErrInvalidConfig)
	case c.DungeonDepth < 1:
		return fmt.Errorf("%w: dungeon depth %d below 1", ErrInvalidConfig, c.DungeonDepth)
	case len(c.DungeonLevelSizes) == 0:
		return fmt.Errorf("%w: no dungeon level sizes", ErrInvalidConfig)
	case c.CaveWidth < 3 || c.CaveHeight < 3:
		return fmt.Errorf("%w: cave %dx%d has no interior", ErrInvalidConfig, c.CaveWidth, c.CaveHeight)
	}
	for i, s := range c.DungeonLevelSizes {
		if s.Width < 2*c.BSPMinRoom+3 || s.Height < 2*c.BSPMinRoom+3 {
			return fmt.Errorf("%w: level %d size %dx%d too small for rooms of %d",
				ErrInvalidConfig, i, s.Width, s.Height, c.BSPMinRoom)
		}
	}
	return nil
}

// guaranteedZones is a lower bound on the zones any overworld subdivision
// yields. Every leaf is narrower than 2*BSPMinZone on both axes, so a row of
// the zoned area crosses at least ceil(w/(2*BSPMinZone-1)) of them, and
// likewise for a column. With both axes splittable there are at least four.
func (c MapGenConfig) guaranteedZones() int {
	span := 2*c.BSPMinZone - 1
	w, h := c.OverworldWidth-4, c.OverworldHeight-4
	return max(4, (w+span-1)/span, (h+span-1)/span)
}

// levelSize returns the dimensions for a dungeon level.
func (c MapGenConfig) levelSize(level int) LevelSize {
	if level >= len(c.DungeonLevelSizes) {
		return c.DungeonLevelSizes[len(c.DungeonLevelSizes)-1]
	}
	return c.DungeonLevelSizes[level]
}
