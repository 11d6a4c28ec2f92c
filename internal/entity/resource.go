package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonascend/internal/gamedata"
	"github.com/samdwyer/dungeonascend/internal/world"
)

// Resource is a harvestable node placed in a room.
type Resource struct {
	Def       *gamedata.ResourceDef
	Name      string
	Symbol    rune
	X, Y      int
	RoomIndex int
}

// Position returns the resource's x, y coordinates.
func (r *Resource) Position() (int, int) {
	return r.X, r.Y
}

// Rarity returns the resource rarity, or common when the definition is unknown.
func (r *Resource) Rarity() gamedata.Rarity {
	if r.Def != nil {
		return r.Def.Rarity
	}
	return gamedata.RarityCommon
}

// Color returns the display color for the resource's rarity.
func (r *Resource) Color() tcell.Color {
	switch r.Rarity() {
	case gamedata.RarityRare:
		return tcell.ColorFuchsia
	case gamedata.RarityUncommon:
		return tcell.ColorAqua
	default:
		return tcell.ColorYellow
	}
}

// SpawnResources resolves every resource placement on the floor.
func SpawnResources(d *world.Dungeon, catalog *gamedata.Catalog) []*Resource {
	var resources []*Resource
	for i, room := range d.Rooms {
		for _, p := range room.Resources {
			r := &Resource{
				Name:      p.Name,
				Symbol:    gamedata.RarityCommon.Symbol(),
				X:         p.Pos.X,
				Y:         p.Pos.Y,
				RoomIndex: i,
			}
			if catalog != nil {
				if def := catalog.Resource(p.Name); def != nil {
					r.Def = def
					r.Name = def.Name
					r.Symbol = def.Rarity.Symbol()
				}
			}
			resources = append(resources, r)
		}
	}
	return resources
}
