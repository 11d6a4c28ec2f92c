package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/logger"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate a floor and write it as YAML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := generateFromFlags(cmd)
		if err != nil {
			return err
		}

		if exportOut == "" || exportOut == "-" {
			return svc.ExportYAML(cmd.OutOrStdout(), out)
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", exportOut)
		}
		defer f.Close()

		if err := svc.ExportYAML(f, out); err != nil {
			return err
		}
		logger.Info("Exported floor", "path", exportOut, "run_id", out.RunID)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "-", "output file, - for stdout")
}
