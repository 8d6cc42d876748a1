package world

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestWorld(t *testing.T, seed uint64) *World {
	t.Helper()
	w, err := NewWorld(context.Background(), seed, NormalConfig())
	if err != nil {
		t.Fatalf("NewWorld(%d) error: %v", seed, err)
	}
	return w
}

func TestNewWorld(t *testing.T) {
	const seed = 42
	w := newTestWorld(t, seed)
	cfg := NormalConfig()

	if _, ok := w.Location.(Overworld); !ok {
		t.Errorf("Location = %#v, want Overworld", w.Location)
	}
	if w.CurrentGrid() != w.Overworld {
		t.Error("CurrentGrid() on the overworld is not the overworld")
	}
	if len(w.Entrances) < 3 {
		t.Fatalf("%d entrances, want at least 3", len(w.Entrances))
	}
	if len(w.Dungeons) != len(w.Entrances) {
		t.Fatalf("%d dungeons for %d entrances", len(w.Dungeons), len(w.Entrances))
	}

	lair := int(seed % uint64(len(w.Entrances)))
	regular := SelectUniqueBiomes(len(w.Entrances)-1, seed)
	next := 0
	for i, d := range w.Dungeons {
		if d.Entrance != w.Entrances[i] {
			t.Errorf("dungeon %d entrance = %v, want %v", i, d.Entrance, w.Entrances[i])
		}
		if i == lair {
			if !d.HasLair() || d.Depth() != cfg.DungeonDepth+1 {
				t.Errorf("dungeon %d: lair %v with depth %d, want lair with depth %d",
					i, d.HasLair(), d.Depth(), cfg.DungeonDepth+1)
			}
			continue
		}
		if d.HasLair() || d.Depth() != cfg.DungeonDepth {
			t.Errorf("dungeon %d: lair %v with depth %d, want regular with depth %d",
				i, d.HasLair(), d.Depth(), cfg.DungeonDepth)
		}
		if d.Biome != regular[next] {
			t.Errorf("dungeon %d biome = %s, want %s", i, d.Biome.Name(), regular[next].Name())
		}
		next++
	}
}

func TestNewWorldReproducibility(t *testing.T) {
	a := newTestWorld(t, 7)
	b := newTestWorld(t, 7)

	if !a.Overworld.Equal(b.Overworld) {
		t.Error("overworlds differ for the same seed")
	}
	if len(a.Dungeons) != len(b.Dungeons) {
		t.Fatalf("dungeon counts differ: %d vs %d", len(a.Dungeons), len(b.Dungeons))
	}
	for i := range a.Dungeons {
		for l := range a.Dungeons[i].Levels {
			if !a.Dungeons[i].Levels[l].Equal(b.Dungeons[i].Levels[l]) {
				t.Errorf("dungeon %d level %d differs", i, l)
			}
		}
	}
}

func TestNewWorldInvalidConfig(t *testing.T) {
	cfg := NormalConfig()
	cfg.DungeonDepth = 0
	if _, err := NewWorld(context.Background(), 1, cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewWorld() error = %v, want ErrInvalidConfig", err)
	}
}

func TestWorldTransitions(t *testing.T) {
	w := newTestWorld(t, 42)

	for i, d := range w.Dungeons {
		p, err := w.EnterDungeon(i)
		if err != nil {
			t.Fatalf("EnterDungeon(%d) error: %v", i, err)
		}
		if w.CurrentGrid().Get(p.X, p.Y) != TileStairsUp {
			t.Errorf("dungeon %d: arrived on %v, want stairs up", i, w.CurrentGrid().Get(p.X, p.Y))
		}
		if style, ok := w.CurrentStyle(); !ok || style != d.Styles[0] {
			t.Errorf("dungeon %d: CurrentStyle() = %v, %v, want %v", i, style, ok, d.Styles[0])
		}

		for level := 1; level < d.Depth(); level++ {
			p, err := w.Descend()
			if err != nil {
				t.Fatalf("dungeon %d: Descend() to level %d error: %v", i, level, err)
			}
			if got := w.Location; got != (InDungeon{Index: i, Level: level}) {
				t.Fatalf("Location = %#v, want level %d", got, level)
			}
			if !w.CurrentGrid().IsWalkable(p.X, p.Y) || w.CurrentGrid().Get(p.X, p.Y) != TileStairsUp {
				t.Errorf("dungeon %d level %d: arrived on %v", i, level, w.CurrentGrid().Get(p.X, p.Y))
			}
		}

		if _, err := w.Descend(); !errors.Is(err, ErrNoStairs) {
			t.Errorf("dungeon %d: Descend() past the bottom error = %v, want ErrNoStairs", i, err)
		}

		for level := d.Depth() - 2; level >= 0; level-- {
			p, err := w.Ascend()
			if err != nil {
				t.Fatalf("dungeon %d: Ascend() to level %d error: %v", i, level, err)
			}
			if w.CurrentGrid().Get(p.X, p.Y) != TileStairsDown {
				t.Errorf("dungeon %d level %d: arrived on %v, want stairs down", i, level, w.CurrentGrid().Get(p.X, p.Y))
			}
		}

		p, err = w.Ascend()
		if err != nil {
			t.Fatalf("dungeon %d: Ascend() to the overworld error: %v", i, err)
		}
		if _, ok := w.Location.(Overworld); !ok {
			t.Fatalf("Location = %#v, want Overworld", w.Location)
		}
		if p != w.Entrances[i] {
			t.Errorf("left dungeon %d at %v, want its entrance %v", i, p, w.Entrances[i])
		}
		if idx, ok := w.DungeonAt(p); !ok || idx != i {
			t.Errorf("DungeonAt(%v) = %d, %v, want %d, true", p, idx, ok, i)
		}
	}
}

func TestWorldTransitionErrors(t *testing.T) {
	w := newTestWorld(t, 3)

	if _, err := w.Descend(); !errors.Is(err, ErrNotInDungeon) {
		t.Errorf("Descend() on the overworld error = %v, want ErrNotInDungeon", err)
	}
	if _, err := w.Ascend(); !errors.Is(err, ErrNotInDungeon) {
		t.Errorf("Ascend() on the overworld error = %v, want ErrNotInDungeon", err)
	}
	for _, idx := range []int{-1, len(w.Dungeons)} {
		if _, err := w.EnterDungeon(idx); !errors.Is(err, ErrUnknownDungeon) {
			t.Errorf("EnterDungeon(%d) error = %v, want ErrUnknownDungeon", idx, err)
		}
	}
	if _, ok := w.Location.(Overworld); !ok {
		t.Errorf("failed transitions moved the player to %#v", w.Location)
	}
	if _, ok := w.CurrentStyle(); ok {
		t.Error("CurrentStyle() reported a style on the overworld")
	}
	if _, ok := w.DungeonAt(Point{0, 0}); ok {
		t.Error("DungeonAt() found a dungeon on the border")
	}
}

func TestNewWorldRecordsFullSeed(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	if _, err := NewWorld(context.Background(), math.MaxUint64, NormalConfig()); err != nil {
		t.Fatalf("NewWorld() error: %v", err)
	}

	var found bool
	for _, span := range rec.Ended() {
		if span.Name() != "world.generate" {
			continue
		}
		for _, kv := range span.Attributes() {
			if kv.Key == "world.seed" {
				found = true
				if got := kv.Value.AsString(); got != "18446744073709551615" {
					t.Errorf("world.seed = %q, want 18446744073709551615", got)
				}
			}
		}
	}
	if !found {
		t.Error("world.generate span has no world.seed attribute")
	}
}
