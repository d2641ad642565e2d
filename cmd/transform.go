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

var optTransformTo int

// transformCmd represents the transform command
var transformCmd = &cobra.Command{
	Use:   "transform TILE",
	Short: "Re-encode a tile at another level",
	Long: `Re-encodes the tile's south-west corner at --to.

A coarser level yields the containing tile, a finer level the south-west-most child.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		t, err := parseTileID(args[0])
		if err != nil {
			return err
		}
		to, err := nds.ParseLevel(optTransformTo)
		if err != nil {
			return err
		}
		out, err := t.Transform(to)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().IntVar(&optTransformTo, "to", int(nds.Level10), "Target level")
}
