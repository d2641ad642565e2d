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
	"github.com/dustin/go-humanize"
	"github.com/rotblauer/ndstile/common"
	"github.com/rotblauer/ndstile/datum"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info TILE",
	Short: "Describe a tile in human terms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		t, err := parseTileID(args[0])
		if err != nil {
			return err
		}
		level := t.Level()
		b := t.Bound()
		center := t.CenterDegrees(datum.WGS84)
		gcj := t.CenterDegrees(datum.GCJ02)
		zoom := level.SlippyZoom()
		slippy := common.SlippyTileAt(center, zoom)

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "tile\t%v\n", t)
		fmt.Fprintf(tw, "level\t%d\n", level)
		fmt.Fprintf(tw, "morton\t%s\n", humanize.Comma(int64(t.Morton())))
		fmt.Fprintf(tw, "width\t%s units, %s°\n", humanize.Comma(t.Width()), formatDegrees(level.WidthDegrees()))
		fmt.Fprintf(tw, "area\t%s\n", humanize.SIWithDigits(t.Area(), 2, "m²"))
		fmt.Fprintf(tw, "bound\t%s %s, %s %s\n",
			formatDegrees(b.Left()), formatDegrees(b.Bottom()), formatDegrees(b.Right()), formatDegrees(b.Top()))
		fmt.Fprintf(tw, "center\t%s %s\n", formatDegrees(center.Lon()), formatDegrees(center.Lat()))
		fmt.Fprintf(tw, "center (gcj02)\t%s %s\n", formatDegrees(gcj.Lon()), formatDegrees(gcj.Lat()))
		fmt.Fprintf(tw, "slippy\t%d/%d/%d\n", slippy.Z, slippy.X, slippy.Y)
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
