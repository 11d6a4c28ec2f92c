package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonascend/internal/entity"
	"github.com/samdwyer/dungeonascend/internal/world"
)

// Scene is everything the map renderer draws for one frame.
type Scene struct {
	Dungeon   *world.Dungeon
	Explorer  *entity.Explorer
	Enemies   []*entity.Enemy
	Resources []*entity.Resource
	// Tiles in Reachable are highlighted. The zero set highlights nothing.
	Reachable mapset.Set[world.Point]
	Status    []string
}

// Renderer handles drawing a floor to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws tiles, entities, explorer and status lines below the map.
func (r *Renderer) Render(scene Scene) {
	r.screen.Clear()
	d := scene.Dungeon

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			tile := d.GetTile(x, y)
			style := r.getTileStyle(tile)
			if scene.Reachable.Has(world.Point{X: x, Y: y}) {
				style = style.Background(tcell.ColorNavy)
			}
			r.screen.SetContent(x, y, tile.Rune(), style)
		}
	}

	// Resources first so enemies sharing a tile stay visible.
	for _, res := range scene.Resources {
		if d.IsWalkable(res.X, res.Y) {
			r.screen.SetContent(res.X, res.Y, res.Symbol, tcell.StyleDefault.Foreground(res.Color()))
		}
	}
	for _, e := range scene.Enemies {
		if d.IsWalkable(e.X, e.Y) {
			style := tcell.StyleDefault.Foreground(e.Color())
			if e.IsBoss() {
				style = style.Bold(true)
			}
			r.screen.SetContent(e.X, e.Y, e.Symbol, style)
		}
	}

	if p := scene.Explorer; p != nil {
		explorerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(p.X, p.Y, p.Symbol, explorerStyle)
	}

	for i, line := range scene.Status {
		r.RenderMessage(line, d.Height+1+i)
	}

	r.screen.Show()
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileCorridor:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	case world.TileEntrance, world.TileExit:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, y, msg, style)
}
