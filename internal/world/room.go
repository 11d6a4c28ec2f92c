package world

import "math/rand"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Placement records an entity placed at a grid position.
type Placement struct {
	Name string
	Pos  Point
}

// Room represents a rectangular room in the dungeon.
type Room struct {
	ID            int // Placement order
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions including the wall frame
	IsBossRoom    bool
	Enemies       []Placement
	Resources     []Placement
}

// Center returns the integer-truncated midpoint of the room.
func (r Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Area returns the number of cells covered by the room.
func (r Room) Area() int {
	return r.Width * r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.Overlaps(other, 0)
}

// Overlaps reports whether the two rooms come within margin tiles of each
// other. Each box is grown by margin along its trailing edges.
func (r Room) Overlaps(other Room, margin int) bool {
	return r.X < other.X+other.Width+margin &&
		r.X+r.Width+margin > other.X &&
		r.Y < other.Y+other.Height+margin &&
		r.Y+r.Height+margin > other.Y
}

// Interior returns the bounds of the cells strictly inside the wall frame.
// ok is false for rooms too small to have an interior.
func (r Room) Interior() (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = r.X+1, r.Y+1
	maxX, maxY = r.X+r.Width-2, r.Y+r.Height-2
	return minX, minY, maxX, maxY, maxX >= minX && maxY >= minY
}

// RandomInterior returns a uniformly drawn interior cell, or the center
// for rooms without an interior.
func (r Room) RandomInterior(rng *rand.Rand) Point {
	minX, minY, maxX, maxY, ok := r.Interior()
	if !ok {
		return r.Center()
	}
	return Point{
		X: minX + rng.Intn(maxX-minX+1),
		Y: minY + rng.Intn(maxY-minY+1),
	}
}
