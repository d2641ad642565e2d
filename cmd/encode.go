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

var optEncodeMorton bool

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode LON LAT",
	Short: "Encode a longitude/latitude pair into a tile id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)

		lon, err := parseDegrees(args[0])
		if err != nil {
			return err
		}
		lat, err := parseDegrees(args[1])
		if err != nil {
			return err
		}
		level, err := configLevel()
		if err != nil {
			return err
		}
		if optEncodeMorton {
			m, err := nds.MortonFromDegrees(lon, lat)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.TileID(level), int64(m))
			return nil
		}
		t, err := nds.FromDegrees(lon, lat, level)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&optEncodeMorton, "morton", false, "Also print the full-precision Morton code")
}
