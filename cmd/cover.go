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
	"context"
	"errors"
	"github.com/paulmach/orb"
	"github.com/rotblauer/ndstile/common"
	"github.com/rotblauer/ndstile/cover"
	"github.com/rotblauer/ndstile/datum"
	"github.com/rotblauer/ndstile/nds"
	"github.com/rotblauer/ndstile/params"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"time"
)

var (
	optCoverWKT     string
	optCoverGeoJSON string
	optCoverFormat  string
	optCoverDatum   *string
	coverConfig     = params.DefaultCoverConfig()
)

// coverCmd represents the cover command
var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "List the tiles intersecting a polygon",
	Long: `Lists, in ascending order, the tiles at --level whose outlines intersect a polygon.

The polygon is given as WKT (--wkt) or read from a GeoJSON geometry, feature,
or feature collection file (--geojson, - for stdin).

Tile outlines are compared in --datum, GCJ-02 by default, so polygons drawn on
Chinese map platforms cover the tiles they appear to cover.

Candidates are every tile id between the tiles of the polygon's bounding box
corners. Morton order makes that range loose; --max-candidates refuses ranges
that are too wide rather than scanning them.

Examples:

  ndstile cover --level 13 --wkt 'POLYGON ((111.85 30.63, 111.86 30.63, 111.86 30.64, 111.85 30.63))'
  ndstile cover --level 10 --geojson area.geojson --format geojson
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)

		level, err := configLevel()
		if err != nil {
			return err
		}
		coverConfig.Datum, err = datum.ParseDatum(*optCoverDatum)
		if err != nil {
			return err
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, cancel := common.InterruptContext(parent)
		defer cancel()

		r := cover.NewOrbRasterizer(coverConfig)
		var tiles []nds.TileID
		switch {
		case optCoverWKT != "" && optCoverGeoJSON != "":
			return errors.New("use one of --wkt or --geojson")
		case optCoverWKT != "":
			tiles, err = r.Tiles(ctx, optCoverWKT, level)
		case optCoverGeoJSON != "":
			var data []byte
			if optCoverGeoJSON == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(optCoverGeoJSON)
			}
			if err != nil {
				return err
			}
			var polys []orb.Polygon
			if polys, err = cover.PolygonsFromGeoJSON(data); err != nil {
				return err
			}
			tiles, err = r.TilesForPolygons(ctx, polys, level)
		default:
			return errors.New("a polygon is required: --wkt or --geojson")
		}
		if err != nil {
			return err
		}
		slog.Debug("Cover done", "tiles", len(tiles))
		return writeTiles(cmd.OutOrStdout(), tiles, optCoverFormat, coverConfig.Datum, 2)
	},
}

func init() {
	rootCmd.AddCommand(coverCmd)
	coverCmd.Flags().StringVar(&optCoverWKT, "wkt", "", "WKT polygon")
	coverCmd.Flags().StringVar(&optCoverGeoJSON, "geojson", "", "GeoJSON file, - for stdin")
	coverCmd.Flags().StringVar(&optCoverFormat, "format", "id", "Output format: id, wkt or geojson")
	coverCmd.Flags().Int64Var(&coverConfig.MaxCandidates, "max-candidates", coverConfig.MaxCandidates,
		"Refuse candidate ranges wider than this; 0 for no limit")
	coverCmd.Flags().IntVar(&coverConfig.Workers, "workers", coverConfig.Workers, "Parallel candidate testers")
	coverCmd.Flags().DurationVar(&coverConfig.ProgressInterval, "progress", 5*time.Second,
		"Log scan progress this often; 0 to disable")
	coverCmd.Flags().Float64Var(&coverConfig.Tolerance, "tolerance", coverConfig.Tolerance,
		"Degrees within which touching boundaries count as intersecting")
	optCoverDatum = datumFlag(coverCmd, coverConfig.Datum)
}
