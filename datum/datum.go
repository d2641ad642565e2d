// Package datum converts coordinates between geodetic datums.
package datum

import (
	"errors"
	"fmt"
	"github.com/paulmach/orb"
	"strings"
)

// Datum is a geodetic reference system for degree coordinates.
type Datum int

const (
	// WGS84 is the GPS datum. Coordinates are used as they are.
	WGS84 Datum = iota

	// GCJ02 is the obfuscated datum required by Chinese map platforms.
	GCJ02
)

var ErrUnknownDatum = errors.New("unknown datum")

func (d Datum) String() string {
	switch d {
	case WGS84:
		return "wgs84"
	case GCJ02:
		return "gcj02"
	}
	return fmt.Sprintf("Datum(%d)", int(d))
}

// ParseDatum accepts "wgs84", "gcj02" and the short forms "84" and "02".
func ParseDatum(s string) (Datum, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wgs84", "wgs-84", "84", "":
		return WGS84, nil
	case "gcj02", "gcj-02", "02":
		return GCJ02, nil
	}
	return WGS84, fmt.Errorf("%w: %q", ErrUnknownDatum, s)
}

// Apply converts a WGS-84 point into d.
func (d Datum) Apply(pt orb.Point) orb.Point {
	if d == GCJ02 {
		lon, lat := WGS84ToGCJ02(pt.Lon(), pt.Lat())
		return orb.Point{lon, lat}
	}
	return pt
}
