package archive

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/dungeonascend/internal/config"
	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/quality"
	"github.com/samdwyer/dungeonascend/internal/telemetry"
)

// GenerateBatchInput describes an inclusive range of floors. Floor n is
// generated with seed BaseSeed+n.
type GenerateBatchInput struct {
	From     int
	To       int
	Width    int
	Height   int
	BaseSeed int64
	// Parallelism caps concurrent floors; zero means GOMAXPROCS.
	Parallelism int
}

// BatchResult summarises one floor of a batch.
type BatchResult struct {
	Floor   int           `yaml:"floor"`
	Seed    int64         `yaml:"seed"`
	Biome   string        `yaml:"biome"`
	Rooms   int           `yaml:"rooms"`
	Enemies int           `yaml:"enemies"`
	Score   float64       `yaml:"dqs"`
	Grade   quality.Grade `yaml:"grade"`
	Valid   bool          `yaml:"valid"`
}

// GenerateBatchOutput holds results in floor order.
type GenerateBatchOutput struct {
	RunID   string
	Results []BatchResult
	Average float64
}

func (s *service) GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.From > input.To {
		return nil, errors.InvalidArgumentf("invalid floor range %d-%d", input.From, input.To)
	}
	for _, floor := range []int{input.From, input.To} {
		if err := config.ValidateGeneration(floor, input.Width, input.Height); err != nil {
			return nil, err
		}
	}

	runID := s.idGen.Generate()
	ctx, span := telemetry.Tracer("archive").Start(ctx, "archive.generate_batch")
	defer span.End()

	results := make([]BatchResult, input.To-input.From+1)

	g, gctx := errgroup.WithContext(ctx)
	limit := input.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i := range results {
		floor := input.From + i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := input.BaseSeed + int64(floor)
			d := s.generateFloor(gctx, floor, input.Width, input.Height, &seed)
			report := quality.Evaluate(gctx, d)
			results[i] = BatchResult{
				Floor:   floor,
				Seed:    seed,
				Biome:   d.Biome,
				Rooms:   len(d.Rooms),
				Enemies: len(d.Enemies),
				Score:   report.Score,
				Grade:   report.Grade,
				Valid:   report.Validation.Valid,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch generation cancelled")
	}

	var total float64
	for _, r := range results {
		total += r.Score
	}
	avg := total / float64(len(results))

	span.SetAttributes(
		attribute.String("run.id", runID),
		attribute.Int("batch.floors", len(results)),
		attribute.Float64("batch.average_dqs", avg),
	)
	logger.Info("Generated batch", "run_id", runID, "from", input.From, "to", input.To, "average_dqs", avg)

	return &GenerateBatchOutput{RunID: runID, Results: results, Average: avg}, nil
}
