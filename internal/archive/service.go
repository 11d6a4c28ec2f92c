// Package archive is the service layer over generation, evaluation and the
// reference catalog. The CLI and viewer talk to it rather than to the
// individual packages.
package archive

import (
	"context"
	"io"

	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/gamedata"
	"github.com/samdwyer/dungeonascend/internal/populate"
	"github.com/samdwyer/dungeonascend/internal/progression"
	"github.com/samdwyer/dungeonascend/internal/ui"
)

// Service answers knowledge queries and generates, evaluates and exports floors.
type Service interface {
	// Knowledge lookups. Unknown names return a NotFound error.
	QueryBiome(name string) (*gamedata.BiomeDef, error)
	QueryEnemy(name string, floor int) (*EnemyInfo, error)
	QueryResource(name string) (*gamedata.ResourceDef, error)
	ListBiomes() []string
	BiomeEnemies(name string) (*BiomeEnemies, error)
	BiomeResources(name string) ([]string, error)
	FloorInfo(floor int) (*progression.FloorInfo, error)

	// Generation and evaluation
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)
	GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchOutput, error)

	Narrate(floor int, biome string, score float64) string
	ExportYAML(w io.Writer, output *GenerateOutput) error
}

// Config holds the dependencies for the archive service.
type Config struct {
	Catalog     *gamedata.Catalog
	IDGenerator IDGenerator
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Catalog == nil {
		return errors.InvalidArgument("Catalog is required")
	}
	return nil
}

type service struct {
	catalog  *gamedata.Catalog
	assigner *populate.Assigner
	idGen    IDGenerator
	renderer *ui.TextRenderer
}

// NewService creates an archive service with the provided dependencies.
// A missing IDGenerator defaults to run-prefixed UUIDs.
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = NewUUIDGenerator("run")
	}

	return &service{
		catalog:  cfg.Catalog,
		assigner: populate.NewAssigner(cfg.Catalog),
		idGen:    idGen,
		renderer: ui.NewTextRenderer(),
	}, nil
}
