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
	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode TILE",
	Short: "Decode a tile id into its level, width and south-west corner",
	Long: `Prints: level width(fixed) lon lat

The corner is the tile's south-west corner in WGS-84 degrees.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		t, err := parseTileID(args[0])
		if err != nil {
			return err
		}
		lon, lat := t.Degrees()
		fmt.Fprintln(cmd.OutOrStdout(), t.Level(), t.Width(), formatDegrees(lon), formatDegrees(lat))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
