// Package gamedata provides the embedded biome, enemy and resource
// reference data and the catalog used to look it up.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

const (
	biomesFile    = "biomes.json"
	enemiesFile   = "enemies.json"
	resourcesFile = "resources.json"
)
