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
	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/ndstile/datum"
	"github.com/rotblauer/ndstile/nds"
	"github.com/spf13/cobra"
	"io"
)

var (
	optGeometryDimension int
	optGeometryFormat    string
	optGeometryDatum     *string
)

// geometryCmd represents the geometry command
var geometryCmd = &cobra.Command{
	Use:   "geometry TILE...",
	Short: "Print tile outlines as WKT or GeoJSON",
	Long: `Prints each tile's outline, by default in GCJ-02 for Chinese map platforms.

WKT is one polygon per line; --dimension 3 writes POLYGON Z with z=-1000000.
GeoJSON is a single FeatureCollection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		d, err := datum.ParseDatum(*optGeometryDatum)
		if err != nil {
			return err
		}
		tiles := make([]nds.TileID, 0, len(args))
		for _, arg := range args {
			t, err := parseTileID(arg)
			if err != nil {
				return err
			}
			tiles = append(tiles, t)
		}
		return writeTiles(cmd.OutOrStdout(), tiles, optGeometryFormat, d, optGeometryDimension)
	},
}

// writeTiles writes tile outlines in format: "wkt", "geojson", or "id".
func writeTiles(w io.Writer, tiles []nds.TileID, format string, d datum.Datum, dimension int) error {
	switch format {
	case "id":
		for _, t := range tiles {
			fmt.Fprintln(w, t)
		}
	case "wkt":
		for _, t := range tiles {
			fmt.Fprintln(w, nds.MarshalWKT(t.Polygon(d), dimension))
		}
	case "geojson":
		fc := geojson.NewFeatureCollection()
		for _, t := range tiles {
			fc.Append(t.Feature(d))
		}
		b, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(geometryCmd)
	geometryCmd.Flags().IntVar(&optGeometryDimension, "dimension", defaultCLIConfig.Dimension, "WKT dimension, 2 or 3")
	geometryCmd.Flags().StringVar(&optGeometryFormat, "format", defaultCLIConfig.Format, "Output format: wkt or geojson")
	optGeometryDatum = datumFlag(geometryCmd, datum.GCJ02)
}
