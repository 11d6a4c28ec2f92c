package archive

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonascend/internal/config"
	"github.com/samdwyer/dungeonascend/internal/entity"
	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/progression"
	"github.com/samdwyer/dungeonascend/internal/quality"
	"github.com/samdwyer/dungeonascend/internal/telemetry"
	"github.com/samdwyer/dungeonascend/internal/ui"
	"github.com/samdwyer/dungeonascend/internal/world"
)

// GenerateInput describes one floor to generate.
type GenerateInput struct {
	Floor  int
	Width  int
	Height int
	Seed   *int64 // nil draws a fresh seed
	Biome  string // optional override, applied only for known biomes
}

// GenerateOutput is a generated, evaluated floor.
type GenerateOutput struct {
	RunID     string
	Dungeon   *world.Dungeon
	Render    []string
	Report    *quality.Report
	FloorInfo progression.FloorInfo
	Narration string
	Enemies   []*entity.Enemy
	Resources []*entity.Resource
}

// EvaluateInput carries an existing dungeon to score.
type EvaluateInput struct {
	Dungeon *world.Dungeon
}

// EvaluateOutput is the score and its printable report.
type EvaluateOutput struct {
	Report *quality.Report
	Text   string
}

func (s *service) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := config.ValidateGeneration(input.Floor, input.Width, input.Height); err != nil {
		return nil, err
	}

	runID := s.idGen.Generate()
	ctx, span := telemetry.Tracer("archive").Start(ctx, "archive.generate")
	defer span.End()

	d := s.generateFloor(ctx, input.Floor, input.Width, input.Height, input.Seed)

	if input.Biome != "" {
		if b := s.catalog.Biome(input.Biome); b != nil {
			d.SetBiome(b.ID)
		} else {
			logger.Warning("Ignoring unknown biome override", "biome", input.Biome, "run_id", runID)
		}
	}

	report := quality.Evaluate(ctx, d)
	params := progression.ForFloor(input.Floor)

	enemies, resources := ui.DefaultOverlays(d)
	out := &GenerateOutput{
		RunID:     runID,
		Dungeon:   d,
		Render:    s.renderer.Render(d, ui.TextOptions{ShowInfo: true, Enemies: enemies, Resources: resources}),
		Report:    report,
		FloorInfo: progression.Info(input.Floor),
		Narration: s.Narrate(input.Floor, d.Biome, report.Score),
		Enemies:   entity.SpawnEnemies(d, s.catalog, params),
		Resources: entity.SpawnResources(d, s.catalog),
	}

	span.SetAttributes(
		attribute.String("run.id", runID),
		attribute.Int("dungeon.floor", input.Floor),
		attribute.Int64("dungeon.seed", d.Seed),
		attribute.String("dungeon.biome", d.Biome),
		attribute.Float64("quality.dqs", report.Score),
	)
	logger.Info("Generated floor",
		"run_id", runID,
		"floor", input.Floor,
		"seed", d.Seed,
		"biome", d.Biome,
		"rooms", len(d.Rooms),
		"dqs", report.Score,
		"grade", report.Grade,
	)

	return out, nil
}

// generateFloor builds a fresh generator for every floor so each request
// owns its random stream.
func (s *service) generateFloor(ctx context.Context, floor, width, height int, seed *int64) *world.Dungeon {
	var gen *world.Generator
	if seed != nil {
		gen = world.NewGenerator(*seed)
	} else {
		gen = world.NewRandomGenerator()
	}
	return gen.WithPopulator(s.assigner).Generate(ctx, floor, width, height)
}

func (s *service) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil || input.Dungeon == nil {
		return nil, errors.InvalidArgument("dungeon is required")
	}
	report := quality.Evaluate(ctx, input.Dungeon)
	return &EvaluateOutput{
		Report: report,
		Text:   report.Format(input.Dungeon),
	}, nil
}
