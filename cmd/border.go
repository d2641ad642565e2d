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

var optBorderFixed bool

// borderCmd represents the border command
var borderCmd = &cobra.Command{
	Use:   "border TILE",
	Short: "Print a tile's extent: left bottom right top",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		t, err := parseTileID(args[0])
		if err != nil {
			return err
		}
		if optBorderFixed {
			b := t.Border()
			fmt.Fprintln(cmd.OutOrStdout(), b.Left, b.Bottom, b.Right, b.Top)
			return nil
		}
		b := t.Bound()
		fmt.Fprintln(cmd.OutOrStdout(),
			formatDegrees(b.Left()), formatDegrees(b.Bottom()),
			formatDegrees(b.Right()), formatDegrees(b.Top()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(borderCmd)
	borderCmd.Flags().BoolVar(&optBorderFixed, "fixed", false, "Print fixed-point units instead of degrees")
}
