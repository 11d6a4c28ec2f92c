package archive

import (
	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/gamedata"
	"github.com/samdwyer/dungeonascend/internal/progression"
)

// EnemyInfo is an enemy definition with stats scaled for a floor.
type EnemyInfo struct {
	Def    *gamedata.EnemyDef
	Floor  int // 0 when base stats were requested
	HP     int
	Damage int
}

// BiomeEnemies lists a biome's enemies by tier.
type BiomeEnemies struct {
	Common     []string
	MiniBosses []string
	MegaBoss   string
}

func (s *service) QueryBiome(name string) (*gamedata.BiomeDef, error) {
	b := s.catalog.Biome(name)
	if b == nil {
		return nil, errors.NotFoundf("biome %q not found", name).WithMeta("biome", name)
	}
	return b, nil
}

// QueryEnemy looks up an enemy. With a floor in 1..100 its HP and damage are
// scaled by that floor's difficulty; floor 0 reports base stats.
func (s *service) QueryEnemy(name string, floor int) (*EnemyInfo, error) {
	e := s.catalog.Enemy(name)
	if e == nil {
		return nil, errors.NotFoundf("enemy %q not found", name).WithMeta("enemy", name)
	}

	info := &EnemyInfo{Def: e, HP: e.BaseHP, Damage: e.BaseDamage}
	if floor == 0 {
		return info, nil
	}
	if !progression.ValidFloor(floor) {
		return nil, errors.OutOfRangef("floor must be between %d and %d, got %d",
			progression.MinFloor, progression.MaxFloor, floor)
	}

	params := progression.ForFloor(floor)
	info.Floor = floor
	info.HP = e.ScaledHP(params.DifficultyMultiplier, floor)
	info.Damage = e.ScaledDamage(params.DifficultyMultiplier)
	return info, nil
}

func (s *service) QueryResource(name string) (*gamedata.ResourceDef, error) {
	r := s.catalog.Resource(name)
	if r == nil {
		return nil, errors.NotFoundf("resource %q not found", name).WithMeta("resource", name)
	}
	return r, nil
}

func (s *service) ListBiomes() []string {
	return s.catalog.BiomeNames()
}

func (s *service) BiomeEnemies(name string) (*BiomeEnemies, error) {
	b, err := s.QueryBiome(name)
	if err != nil {
		return nil, err
	}
	return &BiomeEnemies{
		Common:     b.CommonEnemies,
		MiniBosses: b.MiniBosses,
		MegaBoss:   b.MegaBoss,
	}, nil
}

func (s *service) BiomeResources(name string) ([]string, error) {
	b, err := s.QueryBiome(name)
	if err != nil {
		return nil, err
	}
	return b.Resources, nil
}

func (s *service) FloorInfo(floor int) (*progression.FloorInfo, error) {
	if !progression.ValidFloor(floor) {
		return nil, errors.OutOfRangef("floor must be between %d and %d, got %d",
			progression.MinFloor, progression.MaxFloor, floor).WithMeta("floor", floor)
	}
	info := progression.Info(floor)
	return &info, nil
}
