/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/rotblauer/ndstile/nds"
	"github.com/spf13/cobra"
)

var optNeighborDirection string

// neighborsCmd represents the neighbors command
var neighborsCmd = &cobra.Command{
	Use:   "neighbors TILE",
	Short: "Print a tile and its eight neighbors, or the neighbor in one direction",
	Long: `Without --direction, prints the tile itself followed by its neighbors in the order
UP DOWN LEFT RIGHT LEFT_UP RIGHT_UP LEFT_DOWN RIGHT_DOWN, one per line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		t, err := parseTileID(args[0])
		if err != nil {
			return err
		}
		if optNeighborDirection != "" {
			d, err := nds.ParseDirection(optNeighborDirection)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Neighbor(d))
			return nil
		}
		for _, n := range t.AllNeighbors() {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(neighborsCmd)
	neighborsCmd.Flags().StringVar(&optNeighborDirection, "direction", "",
		"Only print the neighbor in this direction, eg. UP or left_down")
}
