package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonascend/internal/archive"
	"github.com/samdwyer/dungeonascend/internal/entity"
	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/pathfinding"
	"github.com/samdwyer/dungeonascend/internal/progression"
	"github.com/samdwyer/dungeonascend/internal/telemetry"
	"github.com/samdwyer/dungeonascend/internal/ui"
	"github.com/samdwyer/dungeonascend/internal/world"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
	cmdNextFloor
	cmdPrevFloor
	cmdReroll
	cmdToggleMode
)

// Game holds the viewer state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	svc      archive.Service
	cfg      Config

	floor     *archive.GenerateOutput
	explorer  *entity.Explorer
	start     world.Point
	reachable mapset.Set[world.Point]
	pathLen   int
	seed      int64
	mode      Mode
	running   bool
}

// New creates a viewer on the terminal.
func New(svc archive.Service, cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newWithScreen(svc, cfg, screen), nil
}

func newWithScreen(svc archive.Service, cfg Config, screen *ui.Screen) *Game {
	if cfg.Floor == 0 {
		cfg.Floor = progression.MinFloor
	}
	if cfg.Width == 0 {
		cfg.Width = world.DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = world.DefaultHeight
	}

	seed := world.RandomSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		svc:      svc,
		cfg:      cfg,
		seed:     seed,
		mode:     ModeExplore,
		running:  true,
	}
}

// Run executes the main viewer loop until the user quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.loadFloor(ctx, g.cfg.Floor); err != nil {
		return err
	}

	for g.running {
		g.render()
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// loadFloor generates the floor with the current seed and places the
// explorer at the first room's center.
func (g *Game) loadFloor(ctx context.Context, floor int) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.load_floor")
	defer span.End()

	seed := g.seed
	out, err := g.svc.Generate(ctx, &archive.GenerateInput{
		Floor:  floor,
		Width:  g.cfg.Width,
		Height: g.cfg.Height,
		Seed:   &seed,
	})
	if err != nil {
		return err
	}
	g.floor = out

	d := out.Dungeon
	if len(d.Rooms) > 0 {
		g.start = d.Rooms[0].Center()
	} else {
		// Fallback: center of map
		g.start = world.Point{X: d.Width / 2, Y: d.Height / 2}
	}
	g.explorer = entity.NewExplorer(g.start.X, g.start.Y)
	g.reachable = pathfinding.Reachable(d, g.start)
	g.pathLen = 0

	span.SetAttributes(
		attribute.Int("dungeon.floor", floor),
		attribute.Int64("dungeon.seed", seed),
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("explorer.start_x", g.start.X),
		attribute.Int("explorer.start_y", g.start.Y),
	)
	logger.Debug("Viewer loaded floor", "floor", floor, "seed", seed, "run_id", out.RunID)
	return nil
}

func (g *Game) render() {
	scene := ui.Scene{
		Dungeon:   g.floor.Dungeon,
		Explorer:  g.explorer,
		Enemies:   g.floor.Enemies,
		Resources: g.floor.Resources,
		Status:    g.statusLines(),
	}
	if g.mode == ModeReachability {
		scene.Reachable = g.reachable
	}
	g.renderer.Render(scene)
}

func (g *Game) statusLines() []string {
	d := g.floor.Dungeon
	r := g.floor.Report
	return []string{
		fmt.Sprintf("%s | Seed %d | DQS %.3f [%s] | Path %d | Steps %d | Mode %s",
			ui.Header(d), d.Seed, r.Score, r.Grade, g.pathLen, g.explorer.Steps, g.mode),
		"arrows move  n/p floor  r reroll  m reachability  q quit",
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.apply(ctx, commandFor(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// commandFor maps a key press to a viewer command.
func commandFor(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return cmdQuit
		case 'n':
			return cmdNextFloor
		case 'p':
			return cmdPrevFloor
		case 'r':
			return cmdReroll
		case 'm':
			return cmdToggleMode
		}
	}
	return cmdNone
}

func (g *Game) apply(ctx context.Context, cmd command) error {
	switch cmd {
	case cmdQuit:
		g.running = false
	case cmdUp:
		g.tryMove(0, -1)
	case cmdDown:
		g.tryMove(0, 1)
	case cmdLeft:
		g.tryMove(-1, 0)
	case cmdRight:
		g.tryMove(1, 0)
	case cmdNextFloor:
		if g.cfg.Floor < progression.MaxFloor {
			g.cfg.Floor++
			return g.loadFloor(ctx, g.cfg.Floor)
		}
	case cmdPrevFloor:
		if g.cfg.Floor > progression.MinFloor {
			g.cfg.Floor--
			return g.loadFloor(ctx, g.cfg.Floor)
		}
	case cmdReroll:
		g.seed = world.RandomSeed()
		return g.loadFloor(ctx, g.cfg.Floor)
	case cmdToggleMode:
		g.mode = g.mode.Toggle()
	}
	return nil
}

// tryMove moves the explorer if the target is walkable and updates the
// shortest path length back to the start.
func (g *Game) tryMove(dx, dy int) {
	d := g.floor.Dungeon
	if !g.explorer.TryMove(d, dx, dy) {
		return
	}
	here := world.Point{X: g.explorer.X, Y: g.explorer.Y}
	if path, ok := pathfinding.ShortestPath(d, g.start, here); ok {
		g.pathLen = len(path) - 1
	}
}

// Close cleans up viewer resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
