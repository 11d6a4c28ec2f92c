package gamedata

// BiomeDef defines a biome loaded from JSON. Enemy and resource lists hold
// identifiers into the enemy and resource data.
type BiomeDef struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Theme           string   `json:"theme"`
	Characteristics []string `json:"characteristics"`
	CommonEnemies   []string `json:"commonEnemies"`
	MiniBosses      []string `json:"miniBosses"`
	MegaBoss        string   `json:"megaBoss"`
	Resources       []string `json:"resources"`
}

// BiomesFile represents the structure of biomes.json.
type BiomesFile struct {
	Biomes []BiomeDef `json:"biomes"`
}

// LoadBiomes loads biome definitions from the embedded biomes.json file.
func LoadBiomes() ([]BiomeDef, error) {
	file, err := Load[BiomesFile](biomesFile)
	if err != nil {
		return nil, err
	}
	return file.Biomes, nil
}
