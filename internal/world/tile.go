// Package world provides the dungeon grid model and floor generation.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall is an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor is a room floor tile.
	TileFloor Tile = '.'
	// TileCorridor is a carved corridor tile.
	TileCorridor Tile = ','
	// TileDoor is a doorway between a room and a corridor.
	TileDoor Tile = '+'
	// TileEntrance marks where explorers arrive on the floor.
	TileEntrance Tile = 'E'
	// TileExit marks the way to the next floor.
	TileExit Tile = 'X'
	// TileEmpty is uncarved rock outside rooms and corridors.
	TileEmpty Tile = ' '
)

// IsWalkable returns true if the tile can be traversed.
func (t Tile) IsWalkable() bool {
	switch t {
	case TileFloor, TileCorridor, TileDoor, TileEntrance, TileExit:
		return true
	default:
		return false
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Name returns the lowercase tile kind.
func (t Tile) Name() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileCorridor:
		return "corridor"
	case TileDoor:
		return "door"
	case TileEntrance:
		return "entrance"
	case TileExit:
		return "exit"
	case TileEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
