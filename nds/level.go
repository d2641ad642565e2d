package nds

import (
	"fmt"
	"github.com/paulmach/orb/maptile"
	"github.com/rotblauer/ndstile/common"
)

/*
Tile width by level. Widths in km are along the equator; 1 degree is ~111.32 km.

level  width (deg)      width (fixed)  ~width
00     180              2^31           20000 km   two tiles, east and west
01     90               2^30           10000 km
02     45               2^29           5000 km
03     22.5             2^28           2500 km
04     11.25            2^27           1250 km
05     5.625            2^26           626 km
06     2.8125           2^25           313 km
07     1.40625          2^24           156 km
08     0.703125         2^23           78 km
09     0.3515625        2^22           39 km
10     0.17578125       2^21           19.6 km
11     0.087890625      2^20           9.8 km
12     0.0439453125     2^19           4.9 km
13     0.02197265625    2^18           2.4 km
14     0.010986328125   2^17           1.2 km
15     0.0054931640625  2^16           611 m
*/

// Level is the depth of a tile in the hierarchy.
// Each increment halves the tile width.
type Level int8

const (
	// Level0 splits the world into a western and an eastern tile.
	Level0 Level = 0

	Level1 Level = 1
	Level2 Level = 2
	Level3 Level = 3
	Level4 Level = 4
	Level5 Level = 5
	Level6 Level = 6
	Level7 Level = 7
	Level8 Level = 8
	Level9 Level = 9

	// Level10 is a metropolitan area, about 20 km on an edge.
	Level10 Level = 10
	Level11 Level = 11
	Level12 Level = 12

	// Level13 is about 2.4 km on an edge, a village or a suburb.
	Level13 Level = 13
	Level14 Level = 14

	// Level15 is the finest level whose marker bit stays above the packed
	// Morton bits, about 600 m on an edge.
	Level15 Level = 15
)

const (
	MinLevel = Level0
	MaxLevel = Level15
)

// Valid reports whether l can be encoded into, and decoded back out of, a TileID.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Width returns the tile width at this level in fixed-point units.
func (l Level) Width() int64 {
	return 1 << (31 - uint(l))
}

// WidthDegrees returns the tile width at this level in degrees.
func (l Level) WidthDegrees() float64 {
	return FixedToDegrees(l.Width())
}

// ParseLevel validates an integer level, eg. from a flag.
func ParseLevel(v int) (Level, error) {
	l := Level(v)
	if int(l) != v || !l.Valid() {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidLevel, v, MinLevel, MaxLevel)
	}
	return l, nil
}

// SlippyZoom returns the slippy map zoom with tiles closest in width to this level.
// Slippy tiles span 360 degrees at zoom 0, so this is usually l+1.
func (l Level) SlippyZoom() maptile.Zoom {
	return common.SlippyZoomForWidth(l.WidthDegrees())
}
