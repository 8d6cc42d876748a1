package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvewood/internal/entity"
	"github.com/samdwyer/delvewood/internal/gamedata"
	"github.com/samdwyer/delvewood/internal/telemetry"
	"github.com/samdwyer/delvewood/internal/ui"
	"github.com/samdwyer/delvewood/internal/world"
)

// travelDelay paces click-to-move so each step is drawn.
const travelDelay = 25 * time.Millisecond

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *world.World
	explorer *entity.Explorer
	state    State
	running  bool
	message  string

	cfg    Config
	logger *slog.Logger
	runID  uuid.UUID
}

// New creates a new game instance with a terminal screen. The world is
// generated when Run starts.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		state:    StateExplore,
		running:  true,
		cfg:      cfg,
		logger:   logger,
		runID:    uuid.New(),
	}, nil
}

// RunID identifies this session in logs and traces.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.view())

		if g.state == StateTravel {
			g.advance()
			time.Sleep(travelDelay)
			continue
		}
		g.handleInput(ctx)
	}
	return nil
}

// init generates the world and places the explorer on the overworld.
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := g.cfg.ResolveSeed(time.Now())
	w, err := world.NewWorld(ctx, seed, g.cfg.MapGen)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("generate world: %w", err)
	}
	g.attach(w)

	start := g.explorer.Position()
	span.SetAttributes(
		attribute.String("run.id", g.runID.String()),
		telemetry.Seed(seed),
		attribute.Int("world.dungeons", len(w.Dungeons)),
		attribute.Int("explorer.start_x", start.X),
		attribute.Int("explorer.start_y", start.Y),
	)
	g.logger.Info("world generated",
		"run_id", g.runID.String(),
		"seed", seed,
		"dungeons", len(w.Dungeons),
		"start_x", start.X,
		"start_y", start.Y,
	)
	return nil
}

// attach puts the explorer on the overworld road nearest the map center
// and lights its surroundings.
func (g *Game) attach(w *world.World) {
	g.world = w
	g.explorer = entity.NewExplorer(w.Overworld.FindRoadSpawn())
	g.message = fmt.Sprintf("Seed %d. Find the stairs. Click to travel, > and < to use stairs.", w.Seed)
	g.refreshFOV()
}

// refreshFOV ages the current map and recomputes what the explorer sees.
func (g *Game) refreshFOV() {
	grid := g.world.CurrentGrid()
	p := g.explorer.Position()
	grid.Age()
	grid.ComputeFOV(p.X, p.Y, g.cfg.FOVRadius)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			sx, sy := ev.Position()
			if p, ok := g.renderer.Camera().ScreenToMap(sx, sy); ok {
				g.travelTo(p)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.tryMove(0, -1)
		case 'j':
			g.tryMove(0, 1)
		case 'h':
			g.tryMove(-1, 0)
		case 'l':
			g.tryMove(1, 0)
		case 'y':
			g.tryMove(-1, -1)
		case 'u':
			g.tryMove(1, -1)
		case 'b':
			g.tryMove(-1, 1)
		case 'n':
			g.tryMove(1, 1)
		case '>':
			g.descend(ctx)
		case '<':
			g.ascend(ctx)
		}
	}
}

// tryMove attempts to move the explorer by the given delta. Diagonal moves
// may not cut wall corners.
func (g *Game) tryMove(dx, dy int) bool {
	if !g.world.CurrentGrid().CanStep(g.explorer.Position(), dx, dy) {
		g.message = "Something blocks the way."
		return false
	}
	g.explorer.Move(dx, dy)
	g.message = ""
	g.refreshFOV()
	return true
}

// travelTo plans a route to a cell the explorer has already seen and
// switches to travel mode.
func (g *Game) travelTo(target world.Point) bool {
	grid := g.world.CurrentGrid()
	if grid.GetVisibility(target.X, target.Y) == world.Hidden {
		g.message = "You have not been there."
		return false
	}

	path := grid.FindPath(g.explorer.Position(), target)
	if len(path) < 2 {
		g.message = "No way there."
		return false
	}
	g.explorer.SetRoute(path)
	g.state = StateTravel
	return true
}

// advance takes one step of the current route.
func (g *Game) advance() {
	dx, dy, ok := g.explorer.NextStep()
	if !ok {
		g.state = StateExplore
		return
	}
	if !g.tryMove(dx, dy) {
		g.explorer.CancelRoute()
		g.state = StateExplore
		return
	}
	if !g.explorer.Traveling() {
		g.state = StateExplore
	}
}

// descend enters the dungeon under the explorer or takes stairs down.
func (g *Game) descend(ctx context.Context) {
	p := g.explorer.Position()
	switch g.world.Location.(type) {
	case world.Overworld:
		idx, ok := g.world.DungeonAt(p)
		if !ok {
			g.message = "There is no entrance here."
			return
		}
		g.transition(ctx, "enter", func() (world.Point, error) { return g.world.EnterDungeon(idx) })
	case world.InDungeon:
		if g.world.CurrentGrid().Get(p.X, p.Y) != world.TileStairsDown {
			g.message = "There are no stairs down here."
			return
		}
		g.transition(ctx, "descend", g.world.Descend)
	}
}

// ascend takes stairs up, leaving the dungeon from its first level.
func (g *Game) ascend(ctx context.Context) {
	p := g.explorer.Position()
	switch g.world.Location.(type) {
	case world.Overworld:
		g.message = "There is only sky above."
	case world.InDungeon:
		if g.world.CurrentGrid().Get(p.X, p.Y) != world.TileStairsUp {
			g.message = "There are no stairs up here."
			return
		}
		g.transition(ctx, "ascend", g.world.Ascend)
	}
}

// transition runs a world transition and places the explorer where it
// lands.
func (g *Game) transition(ctx context.Context, kind string, move func() (world.Point, error)) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.transition")
	defer span.End()

	from := g.describeLocation()
	arrival, err := move()
	if err != nil {
		span.RecordError(err)
		g.logger.Warn("transition failed", "run_id", g.runID.String(), "kind", kind, "error", err)
		g.message = "The way is barred."
		return
	}

	g.explorer.Place(arrival)
	g.state = StateExplore
	g.refreshFOV()

	to := g.describeLocation()
	span.SetAttributes(
		attribute.String("transition.kind", kind),
		attribute.String("transition.from", from),
		attribute.String("transition.to", to),
	)
	g.logger.Info("transition", "run_id", g.runID.String(), "kind", kind, "from", from, "to", to)
	g.message = "You arrive: " + to + "."
}

// describeLocation names the current map for the HUD and logs.
func (g *Game) describeLocation() string {
	switch loc := g.world.Location.(type) {
	case world.InDungeon:
		d := g.world.Dungeons[loc.Index]
		return fmt.Sprintf("%s, level %d of %d", d.Biome.Name(), loc.Level+1, d.Depth())
	default:
		p := g.explorer.Position()
		return world.OverworldBiomeAt(p.Y, g.world.Overworld.Height).String()
	}
}

// view assembles the frame for the renderer.
func (g *Game) view() ui.View {
	p := g.explorer.Position()
	v := ui.View{
		Grid:     g.world.CurrentGrid(),
		Explorer: g.explorer,
		Status:   fmt.Sprintf("%s (%d,%d)", g.describeLocation(), p.X, p.Y),
		Detail:   fmt.Sprintf("seed %d", g.world.Seed),
		Message:  g.message,
	}
	if style, ok := g.world.CurrentStyle(); ok {
		v.Style = style.String()
	} else {
		v.Overworld = true
	}
	return v
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
