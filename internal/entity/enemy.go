// Package entity provides the things that occupy a generated floor: spawned
// enemies, resource nodes and the explorer probe used by the viewer.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonascend/internal/gamedata"
	"github.com/samdwyer/dungeonascend/internal/progression"
	"github.com/samdwyer/dungeonascend/internal/world"
)

// Enemy is a placed enemy with stats scaled for its floor.
type Enemy struct {
	Def       *gamedata.EnemyDef // nil when the placement names an unknown enemy
	Name      string             // Display name, or the raw placement name
	Symbol    rune               // Display symbol
	X, Y      int                // Position in the dungeon
	RoomIndex int                // Room the enemy was placed in
	HP        int                // Scaled hit points
	Damage    int                // Scaled damage
}

// NewEnemyFromDef creates an enemy from its definition, scaling HP and
// damage by the floor's difficulty multiplier.
func NewEnemyFromDef(def *gamedata.EnemyDef, pos world.Point, roomIndex int, params progression.Parameters) *Enemy {
	return &Enemy{
		Def:       def,
		Name:      def.Name,
		Symbol:    def.GlyphRune(),
		X:         pos.X,
		Y:         pos.Y,
		RoomIndex: roomIndex,
		HP:        def.ScaledHP(params.DifficultyMultiplier, params.Floor),
		Damage:    def.ScaledDamage(params.DifficultyMultiplier),
	}
}

// Position returns the enemy's x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// Tier returns the enemy's tier, or common when the definition is unknown.
func (e *Enemy) Tier() gamedata.EnemyTier {
	if e.Def != nil {
		return e.Def.Tier
	}
	return gamedata.TierCommon
}

// IsBoss reports whether the enemy is a mini-boss or mega-boss.
func (e *Enemy) IsBoss() bool {
	return e.Tier() != gamedata.TierCommon
}

// ID returns the enemy's definition identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return gamedata.NormalizeName(e.Name)
}

// SpawnEnemies resolves every enemy placement on the floor against the
// catalog. Placements naming unknown enemies are kept with placeholder stats.
func SpawnEnemies(d *world.Dungeon, catalog *gamedata.Catalog, params progression.Parameters) []*Enemy {
	var enemies []*Enemy
	for i, room := range d.Rooms {
		for _, p := range room.Enemies {
			var def *gamedata.EnemyDef
			if catalog != nil {
				def = catalog.Enemy(p.Name)
			}
			if def == nil {
				enemies = append(enemies, &Enemy{
					Name:      p.Name,
					Symbol:    '?',
					X:         p.Pos.X,
					Y:         p.Pos.Y,
					RoomIndex: i,
				})
				continue
			}
			enemies = append(enemies, NewEnemyFromDef(def, p.Pos, i, params))
		}
	}
	return enemies
}
