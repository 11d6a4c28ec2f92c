package world

const (
	// Default dungeon dimensions
	DefaultWidth  = 60
	DefaultHeight = 40

	// MinDimension is the smallest width or height accepted by callers.
	MinDimension = 10
)

// Dungeon is one generated floor. It is built room by room during
// generation and treated as read-only afterwards; only the biome may be
// replaced once generation is done.
type Dungeon struct {
	Width       int
	Height      int
	Tiles       [][]Tile
	Rooms       []Room
	FloorNumber int
	Biome       string
	Seed        int64
	Enemies     []Point
	Resources   []Point
}

// NewDungeon creates a dungeon filled with empty tiles.
func NewDungeon(width, height, floor int) *Dungeon {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileEmpty
		}
	}

	return &Dungeon{
		Width:       width,
		Height:      height,
		Tiles:       tiles,
		Rooms:       make([]Room, 0),
		FloorNumber: floor,
	}
}

// InBounds reports whether the coordinate lies on the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// GetTile returns the tile at the given position. Coordinates off the grid
// read as TileEmpty.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return TileEmpty
	}
	return d.Tiles[y][x]
}

// IsWalkable returns true if the given position can be traversed.
func (d *Dungeon) IsWalkable(x, y int) bool {
	return d.GetTile(x, y).IsWalkable()
}

// SetBiome replaces the biome label. The grid is untouched.
func (d *Dungeon) SetBiome(biome string) {
	d.Biome = biome
}

// TotalTiles returns width × height.
func (d *Dungeon) TotalTiles() int {
	return d.Width * d.Height
}

// RoomArea returns the summed area of all rooms.
func (d *Dungeon) RoomArea() int {
	total := 0
	for _, room := range d.Rooms {
		total += room.Area()
	}
	return total
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// BossRoomIndex returns the index of the boss room, or -1.
func (d *Dungeon) BossRoomIndex() int {
	for i := range d.Rooms {
		if d.Rooms[i].IsBossRoom {
			return i
		}
	}
	return -1
}

// AddRoom appends the room and carves it: floor over the rectangle, then
// walls on its edge rows and columns. Edges lying on the grid boundary are
// left as they are.
func (d *Dungeon) AddRoom(room Room) {
	room.ID = len(d.Rooms)
	d.Rooms = append(d.Rooms, room)

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if d.InBounds(x, y) {
				d.Tiles[y][x] = TileFloor
			}
		}
	}

	d.addRoomWalls(room)
}

func (d *Dungeon) addRoomWalls(room Room) {
	top, bottom := room.Y, room.Y+room.Height-1
	left, right := room.X, room.X+room.Width-1

	for x := left; x <= right; x++ {
		if x < 0 || x >= d.Width {
			continue
		}
		if top > 0 {
			d.Tiles[top][x] = TileWall
		}
		if room.Y+room.Height < d.Height {
			d.Tiles[bottom][x] = TileWall
		}
	}
	for y := top; y <= bottom; y++ {
		if y < 0 || y >= d.Height {
			continue
		}
		if left > 0 {
			d.Tiles[y][left] = TileWall
		}
		if room.X+room.Width < d.Width {
			d.Tiles[y][right] = TileWall
		}
	}
}

// CarveCorridor carves an L-shaped corridor: horizontally along from's row,
// then vertically along to's column. Only empty tiles are converted, so
// existing floors, walls and doors are never overwritten.
func (d *Dungeon) CarveCorridor(from, to Point) {
	d.carveHorizontalTunnel(from.X, to.X, from.Y)
	d.carveVerticalTunnel(from.Y, to.Y, to.X)
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.carveCorridorTile(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.carveCorridorTile(x, y)
	}
}

func (d *Dungeon) carveCorridorTile(x, y int) {
	if d.InBounds(x, y) && d.Tiles[y][x] == TileEmpty {
		d.Tiles[y][x] = TileCorridor
	}
}

// PlaceEnemy records an enemy in the given room and in the flat list.
func (d *Dungeon) PlaceEnemy(roomIndex int, name string, pos Point) {
	d.Rooms[roomIndex].Enemies = append(d.Rooms[roomIndex].Enemies, Placement{Name: name, Pos: pos})
	d.Enemies = append(d.Enemies, pos)
}

// PlaceResource records a resource in the given room and in the flat list.
func (d *Dungeon) PlaceResource(roomIndex int, name string, pos Point) {
	d.Rooms[roomIndex].Resources = append(d.Rooms[roomIndex].Resources, Placement{Name: name, Pos: pos})
	d.Resources = append(d.Resources, pos)
}
