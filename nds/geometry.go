package nds

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/ndstile/datum"
	"strconv"
	"strings"
)

// Elevation is the constant z written into 3D tile geometries.
const Elevation = -1000000

// earthRadiusMeters is the mean radius used by s2 for area conversions.
const earthRadiusMeters = 6371010.0

// Polygon returns the tile outline in datum d as a closed ring:
// left-bottom, left-top, right-top, right-bottom, left-bottom.
func (t TileID) Polygon(d datum.Datum) orb.Polygon {
	b := t.Bound()
	lb := d.Apply(orb.Point{b.Left(), b.Bottom()})
	lt := d.Apply(orb.Point{b.Left(), b.Top()})
	rt := d.Apply(orb.Point{b.Right(), b.Top()})
	rb := d.Apply(orb.Point{b.Right(), b.Bottom()})
	return orb.Polygon{orb.Ring{lb, lt, rt, rb, lb}}
}

// Geometry returns the GCJ-02 tile outline as WKT.
// Dimension 2 yields a POLYGON; anything else yields a POLYGON Z at Elevation.
func (t TileID) Geometry(dimension int) string {
	return MarshalWKT(t.Polygon(datum.GCJ02), dimension)
}

// MarshalWKT writes the outer ring of p as a WKT polygon.
// Coordinates use the shortest representation that parses back to the same float.
func MarshalWKT(p orb.Polygon, dimension int) string {
	var sb strings.Builder
	if dimension == 2 {
		sb.WriteString("POLYGON ((")
	} else {
		sb.WriteString("POLYGON Z ((")
	}
	if len(p) > 0 {
		for i, pt := range p[0] {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatFloat(pt.Lon()))
			sb.WriteByte(' ')
			sb.WriteString(formatFloat(pt.Lat()))
			if dimension != 2 {
				sb.WriteByte(' ')
				sb.WriteString(strconv.Itoa(Elevation))
			}
		}
	}
	sb.WriteString("))")
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Feature returns the tile outline in datum d as a GeoJSON feature.
func (t TileID) Feature(d datum.Datum) *geojson.Feature {
	f := geojson.NewFeature(t.Polygon(d))
	f.ID = int64(t)
	f.Properties["tile_id"] = int64(t)
	f.Properties["level"] = int(t.Level())
	f.Properties["datum"] = d.String()
	return f
}

// Area returns the WGS-84 tile area on the sphere in square meters.
func (t TileID) Area() float64 {
	b := t.Bound()
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(b.Bottom(), b.Left())).
		AddPoint(s2.LatLngFromDegrees(b.Top(), b.Right()))
	return rect.Area() * earthRadiusMeters * earthRadiusMeters
}
