package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rrowniak/tower-h3/mapparser"
)

func newInfoCmd() *cobra.Command {
	var showPlayers bool
	var showTerrain bool

	cmd := &cobra.Command{
		Use:   "info <map.h3m>",
		Short: "Print Info/PlayerInfo summaries for an H3M map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mapparser.ParseFileConfig(args[0], mapparser.Config{Debug: debug})
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			fmt.Printf("%s: %q (%dx%d, %s)\n", args[0], m.Info.Name, m.Info.MapDimension, m.Info.MapDimension, m.Info.Difficulty.Name)

			if showPlayers {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(m.Players); err != nil {
					return err
				}
			}
			if showTerrain {
				fmt.Printf("levels: %d, objects: %d, templates: %d\n", len(m.Terrain), len(m.Objects), len(m.ObjectTemplates))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPlayers, "players", false, "print player info as JSON")
	cmd.Flags().BoolVar(&showTerrain, "terrain", false, "print terrain/object counts")
	return cmd
}
