package world

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/progression"
	"github.com/samdwyer/dungeonascend/internal/telemetry"
)

const (
	// MaxPlacementAttempts caps the random placements tried per room.
	MaxPlacementAttempts = 1000
	// RoomBuffer is the gap kept between rooms.
	RoomBuffer = 2
)

// Room size buckets. Boss rooms use their own larger range.
var (
	bossRoomSize = progression.Range{Min: 12, Max: 15}
	roomSizes    = []progression.Range{
		{Min: 3, Max: 5},   // small
		{Min: 6, Max: 10},  // medium
		{Min: 11, Max: 15}, // large
	}
)

// Populator places enemies and resources into a freshly carved dungeon.
type Populator interface {
	Populate(ctx context.Context, d *Dungeon, params progression.Parameters, enemyCount int, rng *rand.Rand)
}

// Generator produces dungeon floors from its own random stream. A
// Generator is not safe for concurrent use; build one per goroutine.
type Generator struct {
	seed      int64
	rng       *rand.Rand
	populator Populator
}

// NewGenerator creates a generator seeded for reproducible output.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewRandomGenerator creates a generator seeded once from system entropy.
// The seed is kept so the floor can be regenerated later.
func NewRandomGenerator() *Generator {
	return NewGenerator(RandomSeed())
}

// RandomSeed draws a non-negative seed from crypto/rand, falling back to
// the clock if the entropy source fails.
func RandomSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}

// WithPopulator sets the population step run after corridors are carved.
// Without one, floors are generated without enemies or resources.
func (g *Generator) WithPopulator(p Populator) *Generator {
	g.populator = p
	return g
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate builds a complete floor: parameters, biome, rooms, corridors
// and population, in that order, all drawn from the generator's stream.
func (g *Generator) Generate(ctx context.Context, floor, width, height int) *Dungeon {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	params := progression.ForFloor(floor)
	roomCount := params.RoomCount.Roll(g.rng)
	enemyCount := params.EnemyCount.Roll(g.rng)

	d := NewDungeon(width, height, floor)
	d.Seed = g.seed
	d.SetBiome(progression.PickBiome(params.BiomeWeights, g.rng))

	g.placeRooms(d, roomCount, params.IsBossFloor)
	connectRooms(d)

	if g.populator != nil {
		g.populator.Populate(ctx, d, params, enemyCount, g.rng)
	}

	span.SetAttributes(
		attribute.Int("dungeon.floor", floor),
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.String("dungeon.biome", d.Biome),
		attribute.Int64("dungeon.seed", g.seed),
		attribute.Int("dungeon.rooms_requested", roomCount),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.enemies", len(d.Enemies)),
		attribute.Int("dungeon.resources", len(d.Resources)),
		attribute.Bool("dungeon.boss_floor", params.IsBossFloor),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return d
}

// placeRooms places up to n non-overlapping rooms by rejection sampling.
// On boss floors the first room index is reserved for the boss room.
func (g *Generator) placeRooms(d *Dungeon, n int, bossFloor bool) {
	for i := 0; i < n; i++ {
		boss := bossFloor && i == 0
		room, ok := g.tryPlaceRoom(d, boss)
		if !ok {
			logger.Debug("room skipped after placement attempts exhausted",
				"floor", d.FloorNumber, "room_index", i, "attempts", MaxPlacementAttempts)
			continue
		}
		d.AddRoom(room)
	}
}

func (g *Generator) tryPlaceRoom(d *Dungeon, boss bool) (Room, bool) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		var width, height int
		if boss {
			width = bossRoomSize.Roll(g.rng)
			height = bossRoomSize.Roll(g.rng)
		} else {
			size := roomSizes[g.rng.Intn(len(roomSizes))]
			width = size.Roll(g.rng)
			height = size.Roll(g.rng)
		}

		// One tile of border on every side.
		maxX := d.Width - width - 1
		maxY := d.Height - height - 1
		if maxX < 1 || maxY < 1 {
			continue
		}
		candidate := Room{
			X:          1 + g.rng.Intn(maxX),
			Y:          1 + g.rng.Intn(maxY),
			Width:      width,
			Height:     height,
			IsBossRoom: boss,
		}

		if !overlapsAny(candidate, d.Rooms) {
			return candidate, true
		}
	}
	return Room{}, false
}

func overlapsAny(candidate Room, rooms []Room) bool {
	for _, r := range rooms {
		if candidate.Overlaps(r, RoomBuffer) {
			return true
		}
	}
	return false
}

// connectRooms joins consecutive rooms center to center, plus a cross-link
// from the first room to the last once there are four or more.
func connectRooms(d *Dungeon) {
	if len(d.Rooms) < 2 {
		return
	}

	for i := 0; i < len(d.Rooms)-1; i++ {
		d.CarveCorridor(d.Rooms[i].Center(), d.Rooms[i+1].Center())
	}

	if len(d.Rooms) > 3 {
		d.CarveCorridor(d.Rooms[0].Center(), d.Rooms[len(d.Rooms)-1].Center())
	}
}
