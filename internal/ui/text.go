package ui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeonascend/internal/world"
)

// Overlay symbols used for placed entities.
const (
	SymbolFirstEnemy = 'E'
	SymbolEnemy      = 'e'
	SymbolResource   = '$'
)

// Overlay draws a symbol over the tile at X, Y.
type Overlay struct {
	X, Y   int
	Symbol rune
}

// TextOptions controls TextRenderer output.
type TextOptions struct {
	ShowInfo  bool // Header and footer lines
	Enemies   []Overlay
	Resources []Overlay
}

// DefaultOverlays builds the standard enemy and resource overlays from the
// dungeon's flat position lists: the first enemy is drawn as 'E', the rest
// as 'e', resources as '$'.
func DefaultOverlays(d *world.Dungeon) (enemies, resources []Overlay) {
	for i, p := range d.Enemies {
		symbol := SymbolEnemy
		if i == 0 {
			symbol = SymbolFirstEnemy
		}
		enemies = append(enemies, Overlay{X: p.X, Y: p.Y, Symbol: symbol})
	}
	for _, p := range d.Resources {
		resources = append(resources, Overlay{X: p.X, Y: p.Y, Symbol: SymbolResource})
	}
	return enemies, resources
}

// TextRenderer renders a dungeon as lines of ASCII.
type TextRenderer struct{}

// NewTextRenderer creates a text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render returns the grid as text lines. Overlays are applied resources
// first, then enemies, and only onto walkable tiles.
func (r *TextRenderer) Render(d *world.Dungeon, opts TextOptions) []string {
	grid := make([][]rune, d.Height)
	for y := range grid {
		grid[y] = make([]rune, d.Width)
		for x := range grid[y] {
			grid[y][x] = d.GetTile(x, y).Rune()
		}
	}

	apply := func(overlays []Overlay) {
		for _, o := range overlays {
			if d.IsWalkable(o.X, o.Y) {
				grid[o.Y][o.X] = o.Symbol
			}
		}
	}
	apply(opts.Resources)
	apply(opts.Enemies)

	lines := make([]string, 0, d.Height+4)
	if opts.ShowInfo {
		lines = append(lines, Header(d), "")
	}
	for _, row := range grid {
		lines = append(lines, string(row))
	}
	if opts.ShowInfo {
		lines = append(lines, "", Footer(d))
	}
	return lines
}

// String renders with info and default overlays, joined by newlines.
func (r *TextRenderer) String(d *world.Dungeon) string {
	enemies, resources := DefaultOverlays(d)
	return strings.Join(r.Render(d, TextOptions{ShowInfo: true, Enemies: enemies, Resources: resources}), "\n")
}

// Header describes floor, biome and room count.
func Header(d *world.Dungeon) string {
	header := fmt.Sprintf("=== FLOOR %d ===", d.FloorNumber)
	if d.Biome != "" {
		header += " | Biome: " + strings.ToUpper(d.Biome)
	}
	return header + fmt.Sprintf(" | Rooms: %d", len(d.Rooms))
}

// Footer summarises placed entities.
func Footer(d *world.Dungeon) string {
	return fmt.Sprintf("Enemies: %d | Resources: %d", len(d.Enemies), len(d.Resources))
}

// Palette maps map symbols to terminal colors.
type Palette struct {
	styles map[rune]color.Style
}

// NewPalette returns the default map palette.
func NewPalette() *Palette {
	return &Palette{styles: map[rune]color.Style{
		world.TileWall.Rune():     {color.FgGray},
		world.TileFloor.Rune():    {color.FgWhite},
		world.TileCorridor.Rune(): {color.FgYellow},
		world.TileDoor.Rune():     {color.FgYellow, color.OpBold},
		SymbolFirstEnemy:          {color.FgRed, color.OpBold},
		SymbolEnemy:               {color.FgRed},
		SymbolResource:            {color.FgGreen, color.OpBold},
		'*':                       {color.FgMagenta, color.OpBold},
	}}
}

// Colorize wraps each symbol of the line in its palette style. Runs of the
// same symbol share one escape sequence.
func (p *Palette) Colorize(line string) string {
	var b strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		run := string(runes[i:j])
		if style, ok := p.styles[runes[i]]; ok {
			b.WriteString(style.Sprint(run))
		} else {
			b.WriteString(run)
		}
		i = j
	}
	return b.String()
}

// ColorizeLines colorizes every line.
func (p *Palette) ColorizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = p.Colorize(line)
	}
	return out
}
