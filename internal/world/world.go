package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvewood/internal/telemetry"
)

var (
	// ErrNotInDungeon is returned by dungeon transitions made on the overworld.
	ErrNotInDungeon = errors.New("not in a dungeon")
	// ErrNoStairs is returned when there is no level in the requested direction.
	ErrNoStairs = errors.New("no stairs in that direction")
	// ErrUnknownDungeon is returned for a dungeon index that does not exist.
	ErrUnknownDungeon = errors.New("unknown dungeon")
)

// Location identifies the map the player is on. It is either Overworld or
// InDungeon.
type Location interface {
	isLocation()
}

// Overworld is the forest surface.
type Overworld struct{}

// InDungeon is a level of one of the world's dungeons.
type InDungeon struct {
	Index int // Position in World.Dungeons
	Level int // 0 is the level just below the entrance
}

func (Overworld) isLocation() {}
func (InDungeon) isLocation() {}

// World is the complete generated game world: a forest overworld with
// dungeon entrances joined by roads, and a dungeon below each entrance.
type World struct {
	Overworld *TileGrid
	Dungeons  []*Dungeon // Dungeons[i] lies below Entrances[i]
	Entrances []Point
	Location  Location
	Seed      uint64
}

// NewWorld generates a world from seed. The same seed and config always
// produce the same world. Exactly one dungeon ends in a cave lair; the
// others get distinct biomes.
func NewWorld(ctx context.Context, seed uint64, cfg MapGenConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.generate")
	defer span.End()
	startTime := time.Now()

	_, forestSpan := tracer.Start(ctx, "world.forest")
	overworld := GenerateForest(cfg.OverworldWidth, cfg.OverworldHeight, seed, cfg)
	forestSpan.SetAttributes(
		attribute.Int("forest.width", overworld.Width),
		attribute.Int("forest.height", overworld.Height),
		attribute.Int("forest.grass", overworld.Count(TileGrass)),
	)
	forestSpan.End()

	_, zoneSpan := tracer.Start(ctx, "world.zones")
	entrances := overworld.PlaceDungeons(seed, cfg)
	zoneSpan.SetAttributes(attribute.Int("zones.entrances", len(entrances)))
	zoneSpan.End()

	_, roadSpan := tracer.Start(ctx, "world.roads")
	carved := overworld.BuildRoads(entrances, cfg)
	roadSpan.SetAttributes(attribute.Int("roads.cells", carved))
	roadSpan.End()

	_, dungeonSpan := tracer.Start(ctx, "world.dungeons")
	dungeons := generateDungeons(entrances, seed, cfg)
	dungeonSpan.SetAttributes(attribute.Int("dungeons.count", len(dungeons)))
	dungeonSpan.End()

	span.SetAttributes(
		telemetry.Seed(seed),
		attribute.Int("world.entrances", len(entrances)),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &World{
		Overworld: overworld,
		Dungeons:  dungeons,
		Entrances: entrances,
		Location:  Overworld{},
		Seed:      seed,
	}, nil
}

// generateDungeons builds one dungeon per entrance. The lair goes to
// entrance seed%len(entrances).
func generateDungeons(entrances []Point, seed uint64, cfg MapGenConfig) []*Dungeon {
	if len(entrances) == 0 {
		return nil
	}

	lair := int(seed % uint64(len(entrances)))
	biomes := SelectUniqueBiomes(len(entrances)-1, seed)

	dungeons := make([]*Dungeon, 0, len(entrances))
	rng := seed
	next := 0
	for i, entrance := range entrances {
		rng = lcgStep(rng)
		hasCave := i == lair
		biome := BiomeDragonLair
		if !hasCave {
			biome = biomes[next]
			next++
		}
		dungeons = append(dungeons, GenerateDungeon(entrance, cfg.DungeonDepth, rng, hasCave, biome, cfg))
	}
	return dungeons
}

// CurrentGrid returns the map at the current location.
func (w *World) CurrentGrid() *TileGrid {
	if loc, ok := w.Location.(InDungeon); ok {
		return w.Dungeons[loc.Index].Levels[loc.Level]
	}
	return w.Overworld
}

// DungeonAt returns the index of the dungeon whose entrance is at p.
func (w *World) DungeonAt(p Point) (int, bool) {
	for i, e := range w.Entrances {
		if e == p {
			return i, true
		}
	}
	return 0, false
}

// CurrentStyle returns the style of the current dungeon level. It reports
// false on the overworld.
func (w *World) CurrentStyle() (DungeonStyle, bool) {
	loc, ok := w.Location.(InDungeon)
	if !ok {
		return 0, false
	}
	return w.Dungeons[loc.Index].Styles[loc.Level], true
}

// EnterDungeon moves to the first level of dungeon index and returns the
// position of its stairs up.
func (w *World) EnterDungeon(index int) (Point, error) {
	if index < 0 || index >= len(w.Dungeons) {
		return Point{}, fmt.Errorf("%w: %d", ErrUnknownDungeon, index)
	}
	w.Location = InDungeon{Index: index, Level: 0}
	return arrivalPoint(w.CurrentGrid(), TileStairsUp), nil
}

// Descend moves one level deeper and returns the position of the stairs up
// on the new level.
func (w *World) Descend() (Point, error) {
	loc, ok := w.Location.(InDungeon)
	if !ok {
		return Point{}, ErrNotInDungeon
	}
	if loc.Level+1 >= w.Dungeons[loc.Index].Depth() {
		return Point{}, fmt.Errorf("%w: level %d is the deepest", ErrNoStairs, loc.Level)
	}
	w.Location = InDungeon{Index: loc.Index, Level: loc.Level + 1}
	return arrivalPoint(w.CurrentGrid(), TileStairsUp), nil
}

// Ascend moves one level up and returns the position of the stairs down on
// the new level. From the first level it leaves the dungeon and returns the
// overworld entrance.
func (w *World) Ascend() (Point, error) {
	loc, ok := w.Location.(InDungeon)
	if !ok {
		return Point{}, ErrNotInDungeon
	}
	if loc.Level == 0 {
		w.Location = Overworld{}
		return w.Entrances[loc.Index], nil
	}
	w.Location = InDungeon{Index: loc.Index, Level: loc.Level - 1}
	return arrivalPoint(w.CurrentGrid(), TileStairsDown), nil
}

// arrivalPoint returns the first cell holding t, or the spawn point when the
// level has none.
func arrivalPoint(g *TileGrid, t Tile) Point {
	if p, ok := g.FindTile(t); ok {
		return p
	}
	return g.FindSpawn()
}
