package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var queryFloor int

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Look up biomes, enemies and resources",
}

var queryBiomesCmd = &cobra.Command{
	Use:   "biomes",
	Short: "List all biomes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range svc.ListBiomes() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var queryBiomeCmd = &cobra.Command{
	Use:   "biome NAME",
	Short: "Describe a biome",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := svc.QueryBiome(strings.Join(args, " "))
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s (%s)\n", b.Name, b.ID)
		fmt.Fprintf(w, "Theme: %s\n", b.Theme)
		printList(w, "Characteristics", b.Characteristics)
		printList(w, "Common enemies", b.CommonEnemies)
		printList(w, "Mini-bosses", b.MiniBosses)
		fmt.Fprintf(w, "Mega-boss: %s\n", b.MegaBoss)
		printList(w, "Resources", b.Resources)
		return nil
	},
}

var queryEnemyCmd = &cobra.Command{
	Use:   "enemy NAME",
	Short: "Describe an enemy, optionally scaled to a floor",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := svc.QueryEnemy(strings.Join(args, " "), queryFloor)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		e := info.Def
		fmt.Fprintf(w, "%s (%s)\n", e.Name, e.ID)
		fmt.Fprintf(w, "Tier: %s\n", e.Tier)
		printList(w, "Biomes", e.Biomes)
		if info.Floor > 0 {
			fmt.Fprintf(w, "HP: %d  Damage: %d  (floor %d)\n", info.HP, info.Damage, info.Floor)
		} else {
			fmt.Fprintf(w, "HP: %d  Damage: %d  (base)\n", info.HP, info.Damage)
		}
		printList(w, "Abilities", e.Abilities)
		fmt.Fprintln(w, e.Description)
		return nil
	},
}

var queryResourceCmd = &cobra.Command{
	Use:   "resource NAME",
	Short: "Describe a resource",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := svc.QueryResource(strings.Join(args, " "))
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s (%s)\n", r.Name, r.ID)
		fmt.Fprintf(w, "Rarity: %s  Biome: %s  Value: %d\n", r.Rarity, r.Biome, r.Value)
		fmt.Fprintln(w, r.Description)
		return nil
	},
}

var queryBiomeEnemiesCmd = &cobra.Command{
	Use:   "biome-enemies BIOME",
	Short: "List a biome's enemies by tier",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enemies, err := svc.BiomeEnemies(strings.Join(args, " "))
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		printList(w, "Common", enemies.Common)
		printList(w, "Mini-bosses", enemies.MiniBosses)
		fmt.Fprintf(w, "Mega-boss: %s\n", enemies.MegaBoss)
		return nil
	},
}

var queryBiomeResourcesCmd = &cobra.Command{
	Use:   "biome-resources BIOME",
	Short: "List the resources found in a biome",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resources, err := svc.BiomeResources(strings.Join(args, " "))
		if err != nil {
			return err
		}
		for _, r := range resources {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

var floorInfoCmd = &cobra.Command{
	Use:   "floor-info N",
	Short: "Show the generation parameters for a floor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		floor, _, err := parseFloorRange(args[0])
		if err != nil {
			return err
		}
		info, err := svc.FloorInfo(floor)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "FLOOR %d INFORMATION\n", info.Floor)
		fmt.Fprintf(w, "Tier: %s\n", info.Tier)
		fmt.Fprintf(w, "Difficulty: %s (x%.2f)\n", info.Difficulty, info.Multiplier)
		fmt.Fprintf(w, "Boss floor: %t\n", info.IsBossFloor)
		fmt.Fprintf(w, "Expected rooms: %s\n", info.RoomCount)
		fmt.Fprintf(w, "Expected enemies: %s\n", info.EnemyCount)
		fmt.Fprintf(w, "Mini-boss chance: %s\n", info.MiniBossChance)
		printList(w, "Available biomes", info.AvailableBiomes)
		return nil
	},
}

func init() {
	queryEnemyCmd.Flags().IntVarP(&queryFloor, "floor", "f", 0, "scale stats to this floor")
	queryCmd.AddCommand(queryBiomesCmd, queryBiomeCmd, queryEnemyCmd, queryResourceCmd,
		queryBiomeEnemiesCmd, queryBiomeResourcesCmd)
}

func printList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(w, "%s: none\n", label)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(items, ", "))
}
