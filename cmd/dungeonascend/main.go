// Package main is the entry point for dungeonascend.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonascend/internal/archive"
	"github.com/samdwyer/dungeonascend/internal/config"
	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/gamedata"
	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/telemetry"
)

var (
	configPath string
	logLevel   string
	localeDir  string
	language   string

	cfg               config.Config
	svc               archive.Service
	shutdownTelemetry func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "dungeonascend",
	Short: "Procedural dungeon floor generator",
	Long: `dungeonascend generates grid-based dungeon floors for a 100-floor ascent,
checks that every room and resource can be reached, and grades each floor
with a Dungeon Quality Score.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "dungeonascend.yaml", "path to YAML config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (DEBUG, INFO, WARNING, ERROR)")
	rootCmd.PersistentFlags().StringVar(&localeDir, "locale-dir", "", "directory of gettext translations for narration")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "en_US", "narration language")

	rootCmd.AddCommand(generateCmd, evaluateCmd, batchCmd, queryCmd, floorInfoCmd, exportCmd, viewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	// Load .env file for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		return errors.Wrap(err, "failed to initialize logging")
	}

	shutdownTelemetry, err = telemetry.Setup(cmd.Context(), cfg.Telemetry)
	if err != nil {
		logger.Warning("Telemetry setup failed, continuing without tracing", "error", err)
		shutdownTelemetry = telemetry.Disable()
	}

	if localeDir != "" {
		archive.LoadLocale(localeDir, language)
	}

	catalog, err := loadCatalog(cfg.DataDir)
	if err != nil {
		return err
	}

	svc, err = archive.NewService(&archive.Config{Catalog: catalog})
	return err
}

func teardown(cmd *cobra.Command, _ []string) error {
	if shutdownTelemetry == nil {
		return nil
	}
	if err := shutdownTelemetry(cmd.Context()); err != nil {
		logger.Warning("Error shutting down telemetry", "error", err)
	}
	return nil
}

func loadCatalog(dataDir string) (*gamedata.Catalog, error) {
	if dataDir == "" {
		return gamedata.LoadCatalog()
	}
	catalog, err := gamedata.LoadCatalogFS(os.DirFS(dataDir))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load reference data from %s", dataDir)
	}
	logger.Info("Loaded reference data", "dir", dataDir, "biomes", len(catalog.Biomes()))
	return catalog, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set
// and no endpoint was configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONASCEND_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONASCEND_DATASET")
	if dataset == "" {
		dataset = "dungeonascend"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
