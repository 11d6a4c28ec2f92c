package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonascend/internal/archive"
	"github.com/samdwyer/dungeonascend/internal/errors"
	"github.com/samdwyer/dungeonascend/internal/ui"
)

type generateFlags struct {
	floor   int
	width   int
	height  int
	seed    int64
	biome   string
	overlay bool
	report  bool
	noColor bool
	output  string
}

var genFlags generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and render a floor",
	RunE:  runGenerate,
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Generate a floor and print only its quality report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := generateFromFlags(cmd)
		if err != nil {
			return err
		}
		eval, err := svc.Evaluate(cmd.Context(), &archive.EvaluateInput{Dungeon: out.Dungeon})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), eval.Text)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{generateCmd, evaluateCmd, exportCmd} {
		addGenerationFlags(c)
	}
	generateCmd.Flags().BoolVar(&genFlags.overlay, "overlay", true, "draw enemies and resources on the map")
	generateCmd.Flags().BoolVar(&genFlags.report, "report", false, "print the full quality report")
	generateCmd.Flags().BoolVar(&genFlags.noColor, "no-color", false, "disable colored output")
	generateCmd.Flags().StringVarP(&genFlags.output, "output", "o", "", "also write the rendered floor to a file")
}

func addGenerationFlags(c *cobra.Command) {
	c.Flags().IntVarP(&genFlags.floor, "floor", "f", 0, "floor number (1-100)")
	c.Flags().IntVar(&genFlags.width, "width", 0, "grid width")
	c.Flags().IntVar(&genFlags.height, "height", 0, "grid height")
	c.Flags().Int64Var(&genFlags.seed, "seed", 0, "random seed for reproducible floors")
	c.Flags().StringVar(&genFlags.biome, "biome", "", "override the biome")
}

// generateFromFlags merges flags over the loaded config and generates a floor.
func generateFromFlags(cmd *cobra.Command) (*archive.GenerateOutput, error) {
	in := &archive.GenerateInput{
		Floor:  cfg.Generation.Floor,
		Width:  cfg.Generation.Width,
		Height: cfg.Generation.Height,
		Seed:   cfg.Generation.Seed,
		Biome:  genFlags.biome,
	}
	if genFlags.floor != 0 {
		in.Floor = genFlags.floor
	}
	if genFlags.width != 0 {
		in.Width = genFlags.width
	}
	if genFlags.height != 0 {
		in.Height = genFlags.height
	}
	if cmd.Flags().Changed("seed") {
		seed := genFlags.seed
		in.Seed = &seed
	}
	return svc.Generate(cmd.Context(), in)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	out, err := generateFromFlags(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	lines := out.Render
	if !genFlags.overlay {
		lines = ui.NewTextRenderer().Render(out.Dungeon, ui.TextOptions{ShowInfo: true})
	}
	if genFlags.output != "" {
		if err := os.WriteFile(genFlags.output, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", genFlags.output)
		}
	}
	if !genFlags.noColor && ui.IsTerminal(os.Stdout) {
		lines = ui.NewPalette().ColorizeLines(lines)
	}

	fmt.Fprintln(w, out.Narration)
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Join(lines, "\n"))
	fmt.Fprintln(w)

	if genFlags.report {
		fmt.Fprintln(w, out.Report.Format(out.Dungeon))
	} else {
		fmt.Fprintf(w, "Seed: %d | DQS: %.3f [%s] %s\n",
			out.Dungeon.Seed, out.Report.Score, out.Report.Grade, out.Report.Grade.Description())
		if v := out.Report.Validation; !v.Valid {
			fmt.Fprintf(w, "Validation failed: %s\n", v.Reason)
		}
	}
	return nil
}
