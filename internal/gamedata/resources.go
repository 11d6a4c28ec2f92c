package gamedata

// Rarity classifies how often a resource spawns.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// Valid reports whether the rarity is one of the known rarities.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare:
		return true
	default:
		return false
	}
}

// Symbol returns the overlay glyph for a resource of this rarity.
func (r Rarity) Symbol() rune {
	switch r {
	case RarityRare:
		return '*'
	default:
		return '$'
	}
}

// ResourceDef defines a gatherable resource loaded from JSON.
type ResourceDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Biome       string `json:"biome"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

// ResourcesFile represents the structure of resources.json.
type ResourcesFile struct {
	Resources []ResourceDef `json:"resources"`
}

// LoadResources loads resource definitions from the embedded resources.json file.
func LoadResources() ([]ResourceDef, error) {
	file, err := Load[ResourcesFile](resourcesFile)
	if err != nil {
		return nil, err
	}
	return file.Resources, nil
}
