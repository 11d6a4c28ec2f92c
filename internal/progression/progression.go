// Package progression maps a floor number to the parameters that drive
// generation of that floor.
package progression

import (
	"fmt"
	"math/rand"
)

const (
	// MinFloor and MaxFloor bound the floors a caller may request.
	MinFloor = 1
	MaxFloor = 100

	bossFloorInterval = 11
)

// Tier is a progression bracket of floors.
type Tier int

const (
	TierTutorial Tier = iota
	TierEarly
	TierMid
	TierLateMid
	TierEndgame
)

// String returns the tier's display label.
func (t Tier) String() string {
	switch t {
	case TierTutorial:
		return "Tutorial Zone"
	case TierEarly:
		return "Early Game"
	case TierMid:
		return "Mid Game"
	case TierLateMid:
		return "Late-Mid Game"
	case TierEndgame:
		return "Endgame"
	default:
		return "Unknown"
	}
}

// Difficulty returns a human-readable difficulty label.
func (t Tier) Difficulty() string {
	switch t {
	case TierTutorial:
		return "Very Easy"
	case TierEarly:
		return "Easy"
	case TierMid:
		return "Moderate"
	case TierLateMid:
		return "Hard"
	case TierEndgame:
		return "Very Hard"
	default:
		return "Unknown"
	}
}

// Range is a closed integer range.
type Range struct {
	Min int
	Max int
}

// Roll draws a value uniformly from the range.
func (r Range) Roll(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// String formats the range as "min-max".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Parameters drive the generation of one floor. The ranges are fixed per
// tier; the values drawn from them come from the caller's generator.
type Parameters struct {
	Floor                int
	Tier                 Tier
	RoomCount            Range
	EnemyCount           Range
	MiniBossChance       float64
	DifficultyMultiplier float64
	IsBossFloor          bool
	BiomeWeights         []BiomeWeight
}

type tierSpec struct {
	maxFloor   int
	tier       Tier
	rooms      Range
	enemies    Range
	miniBoss   float64
	multiplier float64
}

// Floors above the last threshold fall into the endgame tier.
var tiers = []tierSpec{
	{maxFloor: 10, tier: TierTutorial, rooms: Range{4, 6}, enemies: Range{5, 8}, miniBoss: 0.1, multiplier: 1.0},
	{maxFloor: 20, tier: TierEarly, rooms: Range{5, 8}, enemies: Range{8, 12}, miniBoss: 0.2, multiplier: 1.2},
	{maxFloor: 40, tier: TierMid, rooms: Range{7, 10}, enemies: Range{12, 18}, miniBoss: 0.3, multiplier: 1.8},
	{maxFloor: 70, tier: TierLateMid, rooms: Range{8, 12}, enemies: Range{15, 22}, miniBoss: 0.4, multiplier: 2.5},
}

var endgame = tierSpec{tier: TierEndgame, rooms: Range{10, 15}, enemies: Range{18, 30}, miniBoss: 0.5, multiplier: 4.0}

func specFor(floor int) tierSpec {
	for _, t := range tiers {
		if floor <= t.maxFloor {
			return t
		}
	}
	return endgame
}

// ForFloor returns the generation parameters for a floor.
func ForFloor(floor int) Parameters {
	spec := specFor(floor)
	return Parameters{
		Floor:                floor,
		Tier:                 spec.tier,
		RoomCount:            spec.rooms,
		EnemyCount:           spec.enemies,
		MiniBossChance:       spec.miniBoss,
		DifficultyMultiplier: spec.multiplier,
		IsBossFloor:          IsBossFloor(floor),
		BiomeWeights:         BiomeWeights(floor),
	}
}

// TierFor returns the tier a floor belongs to.
func TierFor(floor int) Tier {
	return specFor(floor).tier
}

// IsBossFloor reports whether the floor is a positive multiple of 11.
func IsBossFloor(floor int) bool {
	return floor > 0 && floor%bossFloorInterval == 0
}

// ValidFloor reports whether floor lies within MinFloor..MaxFloor.
func ValidFloor(floor int) bool {
	return floor >= MinFloor && floor <= MaxFloor
}
