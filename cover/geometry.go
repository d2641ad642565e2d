package cover

import (
	"errors"
	"fmt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/planar"
	"math"
)

var (
	ErrParse         = errors.New("malformed polygon")
	ErrEmptyGeometry = errors.New("empty geometry")
)

// Geometry is the polygon capability the rasterizer needs.
type Geometry interface {
	// Parse reads a 2D WKT polygon.
	Parse(wkt string) (orb.Polygon, error)

	// BoundingRect returns the extent of p.
	BoundingRect(p orb.Polygon) (orb.Bound, error)

	// Intersects reports whether a and b share any point, boundaries included.
	Intersects(a, b orb.Polygon) bool
}

// Orb implements Geometry with paulmach/orb.
type Orb struct {
	// Tolerance in degrees within which boundaries are considered touching.
	Tolerance float64
}

func (o Orb) Parse(s string) (orb.Polygon, error) {
	p, err := wkt.UnmarshalPolygon(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(p) == 0 || len(p[0]) == 0 {
		return nil, fmt.Errorf("%w: polygon has no outer ring", ErrEmptyGeometry)
	}
	return p, nil
}

func (o Orb) BoundingRect(p orb.Polygon) (orb.Bound, error) {
	if len(p) == 0 || len(p[0]) == 0 {
		return orb.Bound{}, ErrEmptyGeometry
	}
	b := p.Bound()
	for _, v := range []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return orb.Bound{}, fmt.Errorf("%w: non-finite bound %v", ErrEmptyGeometry, b)
		}
	}
	return b, nil
}

// Intersects is true if any pair of ring edges cross or come within Tolerance,
// or if one polygon lies inside the other without touching it.
func (o Orb) Intersects(a, b orb.Polygon) bool {
	if len(a) == 0 || len(b) == 0 || len(a[0]) == 0 || len(b[0]) == 0 {
		return false
	}
	if !a.Bound().Pad(o.Tolerance).Intersects(b.Bound()) {
		return false
	}
	for _, ra := range a {
		for _, rb := range b {
			if ringsTouch(ra, rb, o.Tolerance) {
				return true
			}
		}
	}
	return planar.PolygonContains(a, b[0][0]) || planar.PolygonContains(b, a[0][0])
}
