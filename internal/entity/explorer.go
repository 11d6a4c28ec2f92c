package entity

// Grid reports which tiles an explorer may step on.
type Grid interface {
	IsWalkable(x, y int) bool
}

// Explorer is the probe the viewer walks around a floor to inspect
// reachability. It is displayed as a single symbol.
type Explorer struct {
	X, Y   int  // Current position in the dungeon
	Symbol rune // Display symbol
	Steps  int  // Successful moves since placement
}

// NewExplorer creates an explorer at the given position.
func NewExplorer(x, y int) *Explorer {
	return &Explorer{
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// Move updates the explorer position by the given delta.
func (p *Explorer) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
	p.Steps++
}

// TryMove moves by the delta only if the destination is walkable.
func (p *Explorer) TryMove(g Grid, dx, dy int) bool {
	if !g.IsWalkable(p.X+dx, p.Y+dy) {
		return false
	}
	p.Move(dx, dy)
	return true
}

// Position returns the current x, y coordinates.
func (p *Explorer) Position() (int, int) {
	return p.X, p.Y
}
