package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonascend/internal/archive"
	"github.com/samdwyer/dungeonascend/internal/gamedata"
	"github.com/samdwyer/dungeonascend/internal/pathfinding"
	"github.com/samdwyer/dungeonascend/internal/ui"
	"github.com/samdwyer/dungeonascend/internal/world"
)

func newTestGame(t *testing.T, floor int, seed int64) *Game {
	t.Helper()

	svc, err := archive.NewService(&archive.Config{Catalog: gamedata.MustLoadCatalog()})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	sim := tcell.NewSimulationScreen("")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(100, 50)

	g := newWithScreen(svc, Config{Floor: floor, Seed: &seed}, screen)
	if err := g.loadFloor(context.Background(), floor); err != nil {
		t.Fatalf("loadFloor: %v", err)
	}
	return g
}

func TestLoadFloorPlacesExplorer(t *testing.T) {
	g := newTestGame(t, 3, 42)

	d := g.floor.Dungeon
	if d.FloorNumber != 3 || d.Seed != 42 {
		t.Errorf("floor %d seed %d, want 3 and 42", d.FloorNumber, d.Seed)
	}
	if d.Width != world.DefaultWidth || d.Height != world.DefaultHeight {
		t.Errorf("size %dx%d, want defaults", d.Width, d.Height)
	}
	if got := (world.Point{X: g.explorer.X, Y: g.explorer.Y}); got != d.Rooms[0].Center() {
		t.Errorf("explorer at %v, want first room center", got)
	}
	if !g.reachable.Has(g.start) {
		t.Error("reachable set should contain the start tile")
	}
}

func TestMovementTracksPathLength(t *testing.T) {
	g := newTestGame(t, 1, 7)
	ctx := context.Background()
	d := g.floor.Dungeon

	for _, cmd := range []command{cmdRight, cmdRight, cmdDown, cmdLeft} {
		if err := g.apply(ctx, cmd); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}

	here := world.Point{X: g.explorer.X, Y: g.explorer.Y}
	if !d.IsWalkable(here.X, here.Y) {
		t.Fatalf("explorer left walkable ground at %v", here)
	}
	path, ok := pathfinding.ShortestPath(d, g.start, here)
	if !ok {
		t.Fatal("explorer position should be reachable from start")
	}
	if g.explorer.Steps > 0 && g.pathLen != len(path)-1 {
		t.Errorf("pathLen = %d, want %d", g.pathLen, len(path)-1)
	}
}

func TestFloorNavigation(t *testing.T) {
	g := newTestGame(t, 100, 9)
	ctx := context.Background()

	if err := g.apply(ctx, cmdNextFloor); err != nil {
		t.Fatal(err)
	}
	if g.cfg.Floor != 100 {
		t.Errorf("floor should stay at 100, got %d", g.cfg.Floor)
	}

	if err := g.apply(ctx, cmdPrevFloor); err != nil {
		t.Fatal(err)
	}
	if g.floor.Dungeon.FloorNumber != 99 || g.floor.Dungeon.Seed != 9 {
		t.Errorf("got floor %d seed %d, want 99 with seed kept", g.floor.Dungeon.FloorNumber, g.floor.Dungeon.Seed)
	}
}

func TestRerollAndModes(t *testing.T) {
	g := newTestGame(t, 5, 11)
	ctx := context.Background()

	if err := g.apply(ctx, cmdReroll); err != nil {
		t.Fatal(err)
	}
	if g.floor.Dungeon.Seed != g.seed {
		t.Errorf("dungeon seed %d does not match viewer seed %d", g.floor.Dungeon.Seed, g.seed)
	}

	if err := g.apply(ctx, cmdToggleMode); err != nil {
		t.Fatal(err)
	}
	if g.mode != ModeReachability {
		t.Errorf("mode = %s, want reachability", g.mode)
	}
	g.render()

	if err := g.apply(ctx, cmdQuit); err != nil {
		t.Fatal(err)
	}
	if g.running {
		t.Error("quit should stop the loop")
	}
}

func TestStatusLine(t *testing.T) {
	g := newTestGame(t, 2, 3)
	lines := g.statusLines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 status lines, got %d", len(lines))
	}
	want := ui.Header(g.floor.Dungeon)
	if len(lines[0]) < len(want) || lines[0][:len(want)] != want {
		t.Errorf("status line %q should start with %q", lines[0], want)
	}
}

func TestModeToggle(t *testing.T) {
	if ModeExplore.Toggle() != ModeReachability || ModeReachability.Toggle() != ModeExplore {
		t.Error("Toggle should alternate modes")
	}
	if ModeReachability.String() != "reachability" {
		t.Errorf("String = %q", ModeReachability.String())
	}
}
