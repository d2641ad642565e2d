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
	"github.com/rotblauer/ndstile/datum"
	"github.com/spf13/cobra"
)

var optCenterDatum *string

// centerCmd represents the center command
var centerCmd = &cobra.Command{
	Use:   "center TILE",
	Short: "Print a tile's center point: lon lat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		t, err := parseTileID(args[0])
		if err != nil {
			return err
		}
		d, err := datum.ParseDatum(*optCenterDatum)
		if err != nil {
			return err
		}
		pt := t.CenterDegrees(d)
		fmt.Fprintln(cmd.OutOrStdout(), formatDegrees(pt.Lon()), formatDegrees(pt.Lat()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(centerCmd)
	optCenterDatum = datumFlag(centerCmd, defaultCLIConfig.Datum)
}
