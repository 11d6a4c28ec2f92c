// Package config loads application settings from YAML with environment
// variable overrides.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/progression"
	"github.com/samdwyer/dungeonascend/internal/telemetry"
	"github.com/samdwyer/dungeonascend/internal/world"
)

// Generation holds the defaults used when a command does not set them.
type Generation struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Floor  int    `yaml:"floor"`
	Seed   *int64 `yaml:"seed,omitempty"` // nil draws a fresh seed per run
}

// Config is the application configuration.
type Config struct {
	Generation Generation       `yaml:"generation"`
	Telemetry  telemetry.Config `yaml:"telemetry"`
	// DataDir replaces the embedded reference data when set.
	DataDir string        `yaml:"data_dir"`
	Logging logger.Config `yaml:"logging"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Generation: Generation{
			Width:  world.DefaultWidth,
			Height: world.DefaultHeight,
			Floor:  progression.MinFloor,
		},
		Telemetry: telemetry.Config{Enabled: false, SampleRatio: 1},
		Logging:   logger.DefaultConfig(),
	}
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. An empty path or a missing file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return DefaultConfig(), errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
			}
		case !os.IsNotExist(err):
			return cfg, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	cfg.Logging.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from DUNGEON_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DUNGEON_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidArgument("DUNGEON_WIDTH must be an integer").WithMeta("value", v)
		}
		c.Generation.Width = n
	}

	if v := os.Getenv("DUNGEON_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidArgument("DUNGEON_HEIGHT must be an integer").WithMeta("value", v)
		}
		c.Generation.Height = n
	}

	if v := os.Getenv("DUNGEON_DATA_DIR"); v != "" {
		c.DataDir = v
	}

	if v := os.Getenv("DUNGEON_TELEMETRY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.InvalidArgument("DUNGEON_TELEMETRY must be a boolean").WithMeta("value", v)
		}
		c.Telemetry.Enabled = enabled
	}

	return nil
}

// Validate checks generation bounds.
func (c Config) Validate() error {
	return ValidateGeneration(c.Generation.Floor, c.Generation.Width, c.Generation.Height)
}

// ValidateGeneration checks a floor number and grid size.
func ValidateGeneration(floor, width, height int) error {
	if !progression.ValidFloor(floor) {
		return errors.OutOfRangef("floor must be between %d and %d, got %d",
			progression.MinFloor, progression.MaxFloor, floor).WithMeta("floor", floor)
	}
	if width < world.MinDimension || height < world.MinDimension {
		return errors.InvalidArgument("dungeon must be at least 10x10").
			WithMeta("width", width).
			WithMeta("height", height)
	}
	return nil
}
