package archive

import (
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Narration lines are gettext keys; without a loaded locale gotext returns
// them unchanged.
var gradeNarration = map[string]string{
	"S": "A perfect manifestation. The architects themselves would be proud.",
	"A": "Exceptional structure. This floor approaches ideal form.",
	"B": "A solid construction. Functional and navigable.",
	"C": "Adequate, though flawed. Improvements could be made.",
	"F": "This structure contains critical deficiencies.",
}

var biomeNarration = map[string]string{
	"jungle":      "Dense vegetation obscures the paths ahead.",
	"snow":        "Frost crystallizes on ancient stone.",
	"swamp":       "Murky waters conceal treacherous depths.",
	"vampire":     "Shadows dance in gothic corridors.",
	"werewolf":    "The full moon illuminates primal territory.",
	"rocky":       "Stone echoes with the weight of ages.",
	"satanic":     "Infernal flames illuminate twisted passages.",
	"fairy":       "Enchantments shimmer in the air.",
	"astral_void": "Cosmic energies warp space itself.",
}

// dynamicGet looks up keys chosen at runtime.
var dynamicGet = gotext.Get

// LoadLocale loads translations for lang from dir (gettext layout
// dir/lang/LC_MESSAGES/default.po).
func LoadLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

// narrationBand collapses the letter grade to its narration band.
func narrationBand(score float64) string {
	switch {
	case score >= 0.95:
		return "S"
	case score >= 0.85:
		return "A"
	case score >= 0.70:
		return "B"
	case score >= 0.50:
		return "C"
	default:
		return "F"
	}
}

// Narrate returns three lines of flavor text for a generated floor.
func (s *service) Narrate(floor int, biome string, score float64) string {
	realm := strings.ToUpper(biome)
	if realm == "" {
		realm = "UNKNOWN"
	}

	flavor, ok := biomeNarration[biome]
	if !ok {
		flavor = "The dungeon takes form."
	}

	lines := []string{
		gotext.Get("Floor %d has manifested within the %s realm.", floor, realm),
		dynamicGet(flavor),
		gotext.Get("Quality Assessment: %s", dynamicGet(gradeNarration[narrationBand(score)])),
	}
	return strings.Join(lines, "\n")
}
