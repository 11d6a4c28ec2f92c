package archive

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/progression"
	"github.com/samdwyer/dungeonascend/internal/quality"
	"github.com/samdwyer/dungeonascend/internal/ui"
)

type floorExport struct {
	RunID      string                `yaml:"run_id"`
	ExportedAt time.Time             `yaml:"exported_at"`
	Floor      int                   `yaml:"floor"`
	Seed       int64                 `yaml:"seed"`
	Biome      string                `yaml:"biome"`
	Width      int                   `yaml:"width"`
	Height     int                   `yaml:"height"`
	Info       progression.FloorInfo `yaml:"floor_info"`
	Quality    *quality.Report       `yaml:"quality"`
	Valid      bool                  `yaml:"valid"`
	Rooms      []roomExport          `yaml:"rooms"`
	Enemies    []enemyExport         `yaml:"enemies"`
	Resources  []resourceExport      `yaml:"resources"`
	Map        []string              `yaml:"map"`
}

type roomExport struct {
	ID     int  `yaml:"id"`
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Boss   bool `yaml:"boss,omitempty"`
}

type enemyExport struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Tier   string `yaml:"tier"`
	Room   int    `yaml:"room"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	HP     int    `yaml:"hp"`
	Damage int    `yaml:"damage"`
}

type resourceExport struct {
	Name   string `yaml:"name"`
	Rarity string `yaml:"rarity"`
	Room   int    `yaml:"room"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// ExportYAML writes a generated floor as a YAML document. The map is the
// bare tile grid without entity overlays.
func (s *service) ExportYAML(w io.Writer, output *GenerateOutput) error {
	if output == nil || output.Dungeon == nil {
		return errors.InvalidArgument("nothing to export")
	}
	d := output.Dungeon

	doc := floorExport{
		RunID:      output.RunID,
		ExportedAt: time.Now().UTC(),
		Floor:      d.FloorNumber,
		Seed:       d.Seed,
		Biome:      d.Biome,
		Width:      d.Width,
		Height:     d.Height,
		Info:       output.FloorInfo,
		Quality:    output.Report,
		Map:        s.renderer.Render(d, ui.TextOptions{}),
	}
	if output.Report != nil {
		doc.Valid = output.Report.Validation.Valid
	}

	for _, r := range d.Rooms {
		doc.Rooms = append(doc.Rooms, roomExport{
			ID: r.ID, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Boss: r.IsBossRoom,
		})
	}
	for _, e := range output.Enemies {
		doc.Enemies = append(doc.Enemies, enemyExport{
			ID: e.ID(), Name: e.Name, Tier: string(e.Tier()), Room: e.RoomIndex,
			X: e.X, Y: e.Y, HP: e.HP, Damage: e.Damage,
		})
	}
	for _, r := range output.Resources {
		doc.Resources = append(doc.Resources, resourceExport{
			Name: r.Name, Rarity: string(r.Rarity()), Room: r.RoomIndex, X: r.X, Y: r.Y,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode floor")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to flush floor export")
	}
	return nil
}
