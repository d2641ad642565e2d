/*
Package nds addresses the surface of the Earth with tiles on a Morton (Z-order) curve.

Degrees are first scaled to signed fixed-point units, 2^30 per 90 degrees.
The x (longitude) and y (latitude) units are interleaved into a Morton code,
and a TileID is that code truncated to a level, with a marker bit at
position 16+level so that the level can be read back from the bit length.

Everything in this package is a pure function of its inputs.
*/
package nds

import (
	"fmt"
	"github.com/paulmach/orb"
	"github.com/rotblauer/ndstile/datum"
	"math/bits"
)

// levelOffset is the bit length of a TileID minus its level.
const levelOffset = 17

// TileID identifies a square tile at some level.
type TileID int64

// Level returns the level of the tile, derived from its bit length.
// The zero TileID has no level; see Valid.
func (t TileID) Level() Level {
	return Level(bits.Len64(uint64(t)) - levelOffset)
}

// Valid reports whether t is a positive id with a decodable level.
func (t TileID) Valid() bool {
	return t > 0 && t.Level().Valid()
}

// Width returns the tile width in fixed-point units.
func (t TileID) Width() int64 {
	return t.Level().Width()
}

func (t TileID) String() string {
	return fmt.Sprintf("%d", int64(t))
}

// Morton returns the full-precision Morton code of the tile's south-west corner.
func (t TileID) Morton() Morton {
	l := uint(t.Level())
	packed := int64(t) & (1<<(2*l+1) - 1)
	return Morton(packed << (62 - 2*l))
}

// FromMorton truncates m to level and sets the level marker bit.
func FromMorton(m Morton, level Level) TileID {
	l := uint(level)
	packed := int64(m) >> (62 - 2*l)
	return TileID(packed | 1<<(16+l))
}

// FromFixed returns the tile at level containing the fixed-point pair.
func FromFixed(x, y int64, level Level) TileID {
	return FromMorton(MortonFromFixed(x, y), level)
}

// FromDegrees returns the tile at level containing lon, lat.
func FromDegrees(lon, lat float64, level Level) (TileID, error) {
	if !level.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	m, err := MortonFromDegrees(lon, lat)
	if err != nil {
		return 0, err
	}
	return FromMorton(m, level), nil
}

// FromPoint is FromDegrees for an orb.Point.
func FromPoint(pt orb.Point, level Level) (TileID, error) {
	return FromDegrees(pt.Lon(), pt.Lat(), level)
}

// Fixed returns the tile's south-west corner in fixed-point units.
func (t TileID) Fixed() (x, y int64) {
	return t.Morton().Fixed()
}

// Degrees returns the tile's south-west corner in degrees.
func (t TileID) Degrees() (lon, lat float64) {
	return t.Morton().Degrees()
}

// Border is a tile's extent in fixed-point units.
type Border struct {
	Left, Bottom, Right, Top int64
}

// Border returns the tile's extent in fixed-point units.
func (t TileID) Border() Border {
	x, y := t.Fixed()
	w := t.Width()
	return Border{Left: x, Bottom: y, Right: x + w, Top: y + w}
}

// Bound returns the tile's extent in degrees.
func (t TileID) Bound() orb.Bound {
	b := t.Border()
	return orb.Bound{
		Min: orb.Point{FixedToDegrees(b.Left), FixedToDegrees(b.Bottom)},
		Max: orb.Point{FixedToDegrees(b.Right), FixedToDegrees(b.Top)},
	}
}

// Center returns the midpoint of the tile in fixed-point units.
func (t TileID) Center() (x, y int64) {
	b := t.Border()
	return b.Left + (b.Right-b.Left)/2, b.Bottom + (b.Top-b.Bottom)/2
}

// CenterDegrees returns the midpoint of the tile in degrees, in the given datum.
func (t TileID) CenterDegrees(d datum.Datum) orb.Point {
	x, y := t.Center()
	return d.Apply(orb.Point{FixedToDegrees(x), FixedToDegrees(y)})
}

// Transform re-encodes the tile's south-west corner at another level.
// Going up a level yields the parent; going down yields the south-west-most child.
func (t TileID) Transform(level Level) (TileID, error) {
	lon, lat := t.Degrees()
	return FromDegrees(lon, lat, level)
}
