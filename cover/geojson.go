package cover

import (
	"context"
	"fmt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/ndstile/nds"
	"github.com/tidwall/gjson"
	"slices"
)

// PolygonsFromGeoJSON reads the polygons of a GeoJSON geometry, feature,
// or feature collection. Non-polygonal geometries are skipped.
func PolygonsFromGeoJSON(data []byte) ([]orb.Polygon, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}
	var raws []string
	switch typ := gjson.GetBytes(data, "type").String(); typ {
	case "FeatureCollection":
		gjson.GetBytes(data, "features.#.geometry").ForEach(func(_, value gjson.Result) bool {
			raws = append(raws, value.Raw)
			return true
		})
	case "Feature":
		raws = append(raws, gjson.GetBytes(data, "geometry").Raw)
	default:
		raws = append(raws, string(data))
	}

	var polys []orb.Polygon
	for _, raw := range raws {
		g, err := geojson.UnmarshalGeometry([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch geom := g.Geometry().(type) {
		case orb.Polygon:
			polys = append(polys, geom)
		case orb.MultiPolygon:
			polys = append(polys, geom...)
		}
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: no polygons", ErrEmptyGeometry)
	}
	return polys, nil
}

// TilesForPolygons returns the ascending, de-duplicated union of the tiles
// at level intersecting each polygon.
func (r *Rasterizer) TilesForPolygons(ctx context.Context, polys []orb.Polygon, level nds.Level) ([]nds.TileID, error) {
	var out []nds.TileID
	for i, p := range polys {
		tiles, err := r.TilesForPolygon(ctx, p, level)
		if err != nil {
			return nil, fmt.Errorf("polygon %d: %w", i, err)
		}
		out = append(out, tiles...)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
