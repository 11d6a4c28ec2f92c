// Package populate places enemies and resources into a carved dungeon.
package populate

import (
	"context"
	"math/rand"

	"github.com/samdwyer/dungeonascend/internal/gamedata"
	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/progression"
	"github.com/samdwyer/dungeonascend/internal/world"
)

// Spawn counts drawn per resource definition, by rarity.
var resourceCounts = map[gamedata.Rarity]progression.Range{
	gamedata.RarityCommon:   {Min: 2, Max: 4},
	gamedata.RarityUncommon: {Min: 1, Max: 2},
	gamedata.RarityRare:     {Min: 0, Max: 1},
}

// Result counts what a population pass placed.
type Result struct {
	MegaBoss   string
	MiniBoss   string
	Common     int
	Resources  int
	BudgetLeft int
}

// Enemies returns the total number of enemies placed.
func (r Result) Enemies() int {
	n := r.Common
	if r.MegaBoss != "" {
		n++
	}
	if r.MiniBoss != "" {
		n++
	}
	return n
}

// Assigner fills rooms from the catalog's biome pools. It implements
// world.Populator.
type Assigner struct {
	catalog *gamedata.Catalog
}

// NewAssigner creates an assigner backed by the catalog.
func NewAssigner(catalog *gamedata.Catalog) *Assigner {
	return &Assigner{catalog: catalog}
}

// Populate places enemies and resources, discarding the counts.
func (a *Assigner) Populate(ctx context.Context, d *world.Dungeon, params progression.Parameters, enemyCount int, rng *rand.Rand) {
	a.Assign(d, params, enemyCount, rng)
}

// Assign places the boss, mini-boss, common enemies and resources in
// that order. Missing biomes and empty pools make the matching step a
// no-op. Each placement is drawn from rng.
func (a *Assigner) Assign(d *world.Dungeon, params progression.Parameters, enemyCount int, rng *rand.Rand) Result {
	result := Result{BudgetLeft: enemyCount}
	if len(d.Rooms) == 0 {
		logger.Debug("population skipped, no rooms", "floor", d.FloorNumber)
		return result
	}
	if a.catalog == nil || a.catalog.Biome(d.Biome) == nil {
		logger.Debug("population skipped, unknown biome", "floor", d.FloorNumber, "biome", d.Biome)
		return result
	}

	if params.IsBossFloor {
		result.MegaBoss = a.placeMegaBoss(d)
		if result.MegaBoss != "" {
			result.BudgetLeft--
		}
	}

	if rng.Float64() < params.MiniBossChance {
		result.MiniBoss = a.placeMiniBoss(d, rng)
		if result.MiniBoss != "" {
			result.BudgetLeft--
		}
	}

	result.Common = a.placeCommon(d, result.BudgetLeft, rng)
	result.BudgetLeft -= result.Common

	result.Resources = a.placeResources(d, rng)

	return result
}

func (a *Assigner) placeMegaBoss(d *world.Dungeon) string {
	idx := d.BossRoomIndex()
	mega := a.catalog.MegaBoss(d.Biome)
	if idx < 0 || mega == nil {
		return ""
	}
	d.PlaceEnemy(idx, mega.ID, d.Rooms[idx].Center())
	return mega.ID
}

func (a *Assigner) placeMiniBoss(d *world.Dungeon, rng *rand.Rand) string {
	pool := a.catalog.MiniBosses(d.Biome)
	if len(pool) == 0 {
		return ""
	}

	candidates := make([]int, 0, len(d.Rooms))
	for i := range d.Rooms {
		if !d.Rooms[i].IsBossRoom {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	mini := gamedata.RandomEnemy(pool, rng)
	idx := candidates[rng.Intn(len(candidates))]
	d.PlaceEnemy(idx, mini.ID, d.Rooms[idx].RandomInterior(rng))
	return mini.ID
}

func (a *Assigner) placeCommon(d *world.Dungeon, budget int, rng *rand.Rand) int {
	pool := a.catalog.CommonEnemies(d.Biome)
	if len(pool) == 0 || budget <= 0 {
		return 0
	}

	for i := 0; i < budget; i++ {
		enemy := gamedata.RandomEnemy(pool, rng)
		idx := rng.Intn(len(d.Rooms))
		d.PlaceEnemy(idx, enemy.ID, d.Rooms[idx].RandomInterior(rng))
	}
	return budget
}

func (a *Assigner) placeResources(d *world.Dungeon, rng *rand.Rand) int {
	placed := 0
	for _, res := range a.catalog.ResourcesForBiome(d.Biome) {
		count := resourceCounts[res.Rarity].Roll(rng)
		for i := 0; i < count; i++ {
			idx := rng.Intn(len(d.Rooms))
			d.PlaceResource(idx, res.ID, d.Rooms[idx].RandomInterior(rng))
			placed++
		}
	}
	return placed
}
