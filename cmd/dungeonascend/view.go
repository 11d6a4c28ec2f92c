package main

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonascend/internal/game"
	"github.com/samdwyer/dungeonascend/internal/logger"
	"github.com/samdwyer/dungeonascend/internal/ui"
)

var (
	viewFloor int
	viewSeed  int64
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Explore floors interactively in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		gc := game.Config{
			Floor:  cfg.Generation.Floor,
			Width:  cfg.Generation.Width,
			Height: cfg.Generation.Height,
			Seed:   cfg.Generation.Seed,
		}
		if viewFloor != 0 {
			gc.Floor = viewFloor
		}
		if cmd.Flags().Changed("seed") {
			seed := viewSeed
			gc.Seed = &seed
		}
		if !ui.FitsTerminal(gc.Width, gc.Height, 2) {
			logger.Warning("Terminal is smaller than the floor; the map will be clipped",
				"width", gc.Width, "height", gc.Height)
		}

		g, err := game.New(svc, gc)
		if err != nil {
			return err
		}
		return g.Run(cmd.Context())
	},
}

func init() {
	viewCmd.Flags().IntVarP(&viewFloor, "floor", "f", 0, "starting floor (1-100)")
	viewCmd.Flags().Int64Var(&viewSeed, "seed", 0, "seed for the starting floor")
}
