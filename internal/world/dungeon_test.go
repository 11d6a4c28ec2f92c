package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeonascend/internal/progression"
)

func TestDungeonReproducibility(t *testing.T) {
	seed := int64(12345)
	ctx := context.Background()

	d1 := NewGenerator(seed).Generate(ctx, 15, DefaultWidth, DefaultHeight)
	d2 := NewGenerator(seed).Generate(ctx, 15, DefaultWidth, DefaultHeight)

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}
	if d1.Biome != d2.Biome {
		t.Fatalf("Biome mismatch: %s != %s", d1.Biome, d2.Biome)
	}

	for i := range d1.Rooms {
		r1, r2 := d1.Rooms[i], d2.Rooms[i]
		if r1.X != r2.X || r1.Y != r2.Y || r1.Width != r2.Width || r1.Height != r2.Height {
			t.Errorf("Room %d mismatch: (%d,%d,%d,%d) != (%d,%d,%d,%d)",
				i, r1.X, r1.Y, r1.Width, r1.Height,
				r2.X, r2.Y, r2.Width, r2.Height)
		}
	}

	for y := 0; y < d1.Height; y++ {
		for x := 0; x < d1.Width; x++ {
			if d1.Tiles[y][x] != d2.Tiles[y][x] {
				t.Errorf("Tile mismatch at (%d,%d): %v != %v", x, y, d1.Tiles[y][x], d2.Tiles[y][x])
			}
		}
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	d1 := NewGenerator(12345).Generate(ctx, 30, DefaultWidth, DefaultHeight)
	d2 := NewGenerator(54321).Generate(ctx, 30, DefaultWidth, DefaultHeight)

	identical := len(d1.Rooms) == len(d2.Rooms)
	for i := range d1.Rooms {
		if !identical || i >= len(d2.Rooms) {
			break
		}
		r1, r2 := d1.Rooms[i], d2.Rooms[i]
		if r1.X != r2.X || r1.Y != r2.Y {
			identical = false
		}
	}

	if identical {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestSeedIsRecorded(t *testing.T) {
	d := NewGenerator(42).Generate(context.Background(), 1, 40, 30)
	if d.Seed != 42 {
		t.Errorf("Seed = %d, want 42", d.Seed)
	}
	if d.FloorNumber != 1 {
		t.Errorf("FloorNumber = %d, want 1", d.FloorNumber)
	}

	g := NewRandomGenerator()
	if g.Seed() < 0 {
		t.Errorf("random seed should be non-negative, got %d", g.Seed())
	}
	replay := NewGenerator(g.Seed()).Generate(context.Background(), 5, 40, 30)
	original := g.Generate(context.Background(), 5, 40, 30)
	if len(replay.Rooms) != len(original.Rooms) || replay.Biome != original.Biome {
		t.Error("regenerating from the recorded seed should reproduce the floor")
	}
}

func TestFloorOneScenario(t *testing.T) {
	ctx := context.Background()
	first := NewGenerator(42).Generate(ctx, 1, 40, 30)

	for run := 0; run < 3; run++ {
		again := NewGenerator(42).Generate(ctx, 1, 40, 30)
		if len(again.Rooms) != len(first.Rooms) || again.Biome != first.Biome {
			t.Fatalf("run %d: got %d rooms in %s, want %d rooms in %s",
				run, len(again.Rooms), again.Biome, len(first.Rooms), first.Biome)
		}
	}

	switch first.Biome {
	case progression.BiomeJungle, progression.BiomeSnow, progression.BiomeSwamp:
	default:
		t.Errorf("floor 1 biome %q is not a tutorial biome", first.Biome)
	}
	if len(first.Rooms) > 6 {
		t.Errorf("floor 1 placed %d rooms, tier allows at most 6", len(first.Rooms))
	}
}

func TestRoomsDoNotOverlap(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 25; seed++ {
		for _, floor := range []int{1, 11, 35, 60, 95} {
			d := NewGenerator(seed).Generate(ctx, floor, DefaultWidth, DefaultHeight)
			for i := range d.Rooms {
				for j := i + 1; j < len(d.Rooms); j++ {
					if d.Rooms[i].Overlaps(d.Rooms[j], RoomBuffer) || d.Rooms[j].Overlaps(d.Rooms[i], RoomBuffer) {
						t.Fatalf("seed %d floor %d: rooms %d and %d overlap: %+v %+v",
							seed, floor, i, j, d.Rooms[i], d.Rooms[j])
					}
				}
			}
		}
	}
}

func TestRoomsWithinBounds(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 25; seed++ {
		d := NewGenerator(seed).Generate(ctx, 80, 50, 35)
		for i, r := range d.Rooms {
			if r.ID != i {
				t.Errorf("seed %d: room %d has ID %d", seed, i, r.ID)
			}
			if r.X < 1 || r.Y < 1 || r.X+r.Width > d.Width-1 || r.Y+r.Height > d.Height-1 {
				t.Errorf("seed %d: room %d out of bounds: %+v", seed, i, r)
			}
			if r.Width < 3 || r.Height < 3 || r.Width > 15 || r.Height > 15 {
				t.Errorf("seed %d: room %d has bad size %dx%d", seed, i, r.Width, r.Height)
			}
		}
	}
}

func TestBossFloorHasOneBossRoom(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 20; seed++ {
		d := NewGenerator(seed).Generate(ctx, 11, DefaultWidth, DefaultHeight)

		bossRooms := 0
		for _, r := range d.Rooms {
			if r.IsBossRoom {
				bossRooms++
				if r.Width < 12 || r.Width > 15 || r.Height < 12 || r.Height > 15 {
					t.Errorf("seed %d: boss room size %dx%d outside [12,15]", seed, r.Width, r.Height)
				}
			}
		}
		if bossRooms != 1 {
			t.Fatalf("seed %d: found %d boss rooms, want 1", seed, bossRooms)
		}
		if !d.Rooms[0].IsBossRoom {
			t.Errorf("seed %d: boss room should be the first room", seed)
		}
	}
}

func TestNonBossFloorHasNoBossRoom(t *testing.T) {
	d := NewGenerator(3).Generate(context.Background(), 12, DefaultWidth, DefaultHeight)
	if idx := d.BossRoomIndex(); idx != -1 {
		t.Errorf("floor 12 has boss room at index %d", idx)
	}
}

func TestPlacementExhaustionSkipsRooms(t *testing.T) {
	// A 10x10 grid can never fit a 12x12 boss room.
	d := NewGenerator(9).Generate(context.Background(), 11, 10, 10)
	for _, r := range d.Rooms {
		if r.IsBossRoom {
			t.Fatal("boss room placed on a grid too small to hold it")
		}
	}
	if len(d.Rooms) > progression.ForFloor(11).RoomCount.Max {
		t.Errorf("placed %d rooms", len(d.Rooms))
	}
}

func TestGetTileOutOfBounds(t *testing.T) {
	d := NewDungeon(10, 10, 1)
	d.Tiles[0][0] = TileFloor

	tests := []struct {
		x, y int
		want Tile
	}{
		{0, 0, TileFloor},
		{-1, 0, TileEmpty},
		{0, -1, TileEmpty},
		{10, 0, TileEmpty},
		{0, 10, TileEmpty},
		{5, 5, TileEmpty},
	}
	for _, tt := range tests {
		if got := d.GetTile(tt.x, tt.y); got != tt.want {
			t.Errorf("GetTile(%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
	if d.IsWalkable(-1, -1) {
		t.Error("out of bounds should not be walkable")
	}
}

func TestAddRoomCarvesFloorAndWalls(t *testing.T) {
	d := NewDungeon(20, 20, 1)
	d.AddRoom(Room{X: 2, Y: 3, Width: 5, Height: 4})

	r := d.Rooms[0]
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			edge := x == r.X || x == r.X+r.Width-1 || y == r.Y || y == r.Y+r.Height-1
			want := TileFloor
			if edge {
				want = TileWall
			}
			if got := d.GetTile(x, y); got != want {
				t.Errorf("tile (%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
	if d.GetTile(1, 3) != TileEmpty {
		t.Error("tiles outside the room should stay empty")
	}
	if !d.IsWalkable(r.Center().X, r.Center().Y) {
		t.Error("room center should be walkable")
	}
}

func TestAddRoomLeavesGridBoundaryEdges(t *testing.T) {
	d := NewDungeon(10, 10, 1)
	d.AddRoom(Room{X: 0, Y: 0, Width: 4, Height: 4})

	if d.GetTile(0, 0) != TileFloor || d.GetTile(2, 0) != TileFloor {
		t.Error("edges on the grid boundary should not be stamped as walls")
	}
	if d.GetTile(3, 2) != TileWall || d.GetTile(2, 3) != TileWall {
		t.Error("interior-facing edges should be walls")
	}
}

func TestCarveCorridorOnlyConvertsEmpty(t *testing.T) {
	d := NewDungeon(20, 10, 1)
	d.Tiles[2][5] = TileWall
	d.Tiles[2][6] = TileFloor
	d.Tiles[2][7] = TileDoor

	d.CarveCorridor(Point{X: 2, Y: 2}, Point{X: 10, Y: 6})

	if d.GetTile(5, 2) != TileWall || d.GetTile(6, 2) != TileFloor || d.GetTile(7, 2) != TileDoor {
		t.Error("corridor overwrote an existing tile")
	}
	for _, p := range []Point{{2, 2}, {4, 2}, {8, 2}, {10, 2}, {10, 4}, {10, 6}} {
		if got := d.GetTile(p.X, p.Y); got != TileCorridor {
			t.Errorf("tile %v = %q, want corridor", p, got)
		}
	}
	if d.GetTile(2, 6) != TileEmpty {
		t.Error("L corridor should turn at the destination column")
	}
}

func TestConnectRoomsCarvesBetweenRooms(t *testing.T) {
	d := NewDungeon(60, 12, 1)
	for _, x := range []int{1, 15, 29, 43} {
		d.AddRoom(Room{X: x, Y: 1, Width: 5, Height: 5})
	}
	connectRooms(d)

	for _, x := range []int{6, 10, 14, 20, 34, 42} {
		if got := d.GetTile(x, 3); got != TileCorridor {
			t.Errorf("tile (%d,3) = %q, want corridor", x, got)
		}
	}
	if d.GetTile(5, 3) != TileWall {
		t.Error("corridor should not replace the room wall")
	}
}

func TestRoomOverlaps(t *testing.T) {
	a := Room{X: 5, Y: 5, Width: 4, Height: 4}
	tests := []struct {
		name   string
		b      Room
		margin int
		want   bool
	}{
		{"identical", a, 0, true},
		{"far away", Room{X: 30, Y: 30, Width: 3, Height: 3}, 2, false},
		{"adjacent no margin", Room{X: 9, Y: 5, Width: 3, Height: 3}, 0, false},
		{"adjacent with margin", Room{X: 9, Y: 5, Width: 3, Height: 3}, 2, true},
		{"gap of two", Room{X: 11, Y: 5, Width: 3, Height: 3}, 2, false},
		{"gap of one", Room{X: 10, Y: 5, Width: 3, Height: 3}, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b, tt.margin); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoomCenterAndInterior(t *testing.T) {
	r := Room{X: 4, Y: 6, Width: 5, Height: 4}
	if c := r.Center(); c != (Point{X: 6, Y: 8}) {
		t.Errorf("Center = %v, want (6,8)", c)
	}

	minX, minY, maxX, maxY, ok := r.Interior()
	if !ok || minX != 5 || minY != 7 || maxX != 7 || maxY != 8 {
		t.Errorf("Interior = (%d,%d)-(%d,%d) ok=%v", minX, minY, maxX, maxY, ok)
	}

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		p := r.RandomInterior(rng)
		if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
			t.Fatalf("RandomInterior returned %v outside interior", p)
		}
	}

	small := Room{X: 0, Y: 0, Width: 3, Height: 3}
	if p := small.RandomInterior(rng); p != (Point{X: 1, Y: 1}) {
		t.Errorf("3x3 interior = %v, want (1,1)", p)
	}
}

func TestTileWalkable(t *testing.T) {
	walkable := []Tile{TileFloor, TileCorridor, TileDoor, TileEntrance, TileExit}
	blocked := []Tile{TileWall, TileEmpty}

	for _, tile := range walkable {
		if !tile.IsWalkable() {
			t.Errorf("%s should be walkable", tile.Name())
		}
	}
	for _, tile := range blocked {
		if tile.IsWalkable() {
			t.Errorf("%s should not be walkable", tile.Name())
		}
	}
}

type recordingPopulator struct {
	calls      int
	enemyCount int
	rooms      int
}

func (p *recordingPopulator) Populate(_ context.Context, d *Dungeon, params progression.Parameters, enemyCount int, _ *rand.Rand) {
	p.calls++
	p.enemyCount = enemyCount
	p.rooms = len(d.Rooms)
}

func TestGeneratorRunsPopulatorAfterCarving(t *testing.T) {
	pop := &recordingPopulator{}
	d := NewGenerator(8).WithPopulator(pop).Generate(context.Background(), 25, DefaultWidth, DefaultHeight)

	if pop.calls != 1 {
		t.Fatalf("populator called %d times, want 1", pop.calls)
	}
	if pop.rooms != len(d.Rooms) {
		t.Errorf("populator saw %d rooms, dungeon has %d", pop.rooms, len(d.Rooms))
	}
	if !progression.ForFloor(25).EnemyCount.Contains(pop.enemyCount) {
		t.Errorf("enemy budget %d outside tier range", pop.enemyCount)
	}
}
