package gamedata

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// EnemyTier classifies enemies for population.
type EnemyTier string

const (
	TierCommon   EnemyTier = "common"
	TierMiniBoss EnemyTier = "mini_boss"
	TierMegaBoss EnemyTier = "mega_boss"
)

// Valid reports whether the tier is one of the known tiers.
func (t EnemyTier) Valid() bool {
	switch t {
	case TierCommon, TierMiniBoss, TierMegaBoss:
		return true
	default:
		return false
	}
}

const (
	defaultBaseHP     = 100
	defaultBaseDamage = 10
)

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID          string    `json:"id"`          // Lookup key (e.g., "frost_wyrm")
	Name        string    `json:"name"`        // Display name (e.g., "Frost Wyrm")
	Tier        EnemyTier `json:"tier"`        // common, mini_boss or mega_boss
	Biomes      []string  `json:"biomes"`      // Biomes the enemy appears in
	Description string    `json:"description"` // Flavor text
	Abilities   []string  `json:"abilities"`
	BaseHP      int       `json:"baseHp"`     // Defaults to 100
	BaseDamage  int       `json:"baseDamage"` // Defaults to 10
	Glyph       string    `json:"glyph"`      // Single character for rendering
	Color       string    `json:"color"`      // Hex color code
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// InBiome reports whether the enemy is listed for the biome.
func (e *EnemyDef) InBiome(biome string) bool {
	return slices.Contains(e.Biomes, biome)
}

// ScaledHP returns hit points adjusted for the floor's difficulty
// multiplier and depth.
func (e *EnemyDef) ScaledHP(multiplier float64, floor int) int {
	return int(float64(e.BaseHP) * multiplier * (1 + float64(floor)/100))
}

// ScaledDamage returns damage adjusted for the floor's difficulty multiplier.
func (e *EnemyDef) ScaledDamage(multiplier float64) int {
	return int(float64(e.BaseDamage) * multiplier)
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile](enemiesFile)
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
