package progression

import "math/rand"

// Biome identifiers known to the progression table.
const (
	BiomeJungle     = "jungle"
	BiomeSnow       = "snow"
	BiomeSwamp      = "swamp"
	BiomeVampire    = "vampire"
	BiomeWerewolf   = "werewolf"
	BiomeRocky      = "rocky"
	BiomeSatanic    = "satanic"
	BiomeFairy      = "fairy"
	BiomeAstralVoid = "astral_void"
)

// BiomeWeight is one entry of a weighted biome draw.
type BiomeWeight struct {
	Biome  string
	Weight int
}

var (
	starterBiomes = []string{BiomeJungle, BiomeSnow, BiomeSwamp}
	themedBiomes  = []string{
		BiomeJungle, BiomeSnow, BiomeSwamp, BiomeVampire,
		BiomeWerewolf, BiomeRocky, BiomeSatanic, BiomeFairy,
	}
)

// BiomeWeights returns the candidate biomes for a floor. The list widens
// after floor 10, introduces the astral void at low weight after floor 30
// and favours it after floor 70.
func BiomeWeights(floor int) []BiomeWeight {
	switch {
	case floor <= 10:
		return uniform(starterBiomes)
	case floor <= 30:
		return uniform(themedBiomes)
	case floor <= 70:
		weights := uniform(themedBiomes)
		for i := range weights {
			switch weights[i].Biome {
			case BiomeVampire, BiomeWerewolf, BiomeSatanic:
				weights[i].Weight = 2
			}
		}
		return append(weights, BiomeWeight{Biome: BiomeAstralVoid, Weight: 1})
	default:
		return append(uniform(themedBiomes), BiomeWeight{Biome: BiomeAstralVoid, Weight: 3})
	}
}

func uniform(biomes []string) []BiomeWeight {
	weights := make([]BiomeWeight, len(biomes))
	for i, b := range biomes {
		weights[i] = BiomeWeight{Biome: b, Weight: 1}
	}
	return weights
}

// PickBiome selects a biome using weighted probability. It returns the
// empty string for an empty or zero-weight list.
func PickBiome(weights []BiomeWeight, rng *rand.Rand) string {
	total := 0
	for _, w := range weights {
		total += w.Weight
	}
	if total <= 0 {
		return ""
	}

	roll := rng.Intn(total)
	cumulative := 0
	for _, w := range weights {
		cumulative += w.Weight
		if roll < cumulative {
			return w.Biome
		}
	}
	return weights[len(weights)-1].Biome
}

// Biomes returns the distinct biome names that can appear on a floor.
func Biomes(floor int) []string {
	weights := BiomeWeights(floor)
	names := make([]string, 0, len(weights))
	for _, w := range weights {
		if w.Weight > 0 {
			names = append(names, w.Biome)
		}
	}
	return names
}
