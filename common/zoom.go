package common

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"math"
)

/*
Slippy map zoom levels (https://wiki.openstreetmap.org/wiki/Zoom_levels)

Level 	# Tiles 	Tile width (° of longitudes) 	Examples of areas to represent
0 	1 	360 	whole world
1 	4 	180
2 	16 	90 	subcontinental area
3 	64 	45 	largest country
4 	256 	22.5
5 	1 024 	11.25 	large African country
6 	4 096 	5.625 	large European country
7 	16 384 	2.813 	small country, US state
8 	65 536 	1.406
9 	262 144 	0.703 	wide area, large metropolitan area
10 	1 048 576 	0.352 	metropolitan area
11 	4 194 304 	0.176 	city
12 	16 777 216 	0.088 	town, or city district
13 	67 108 864 	0.044 	village, or suburb
14 	268 435 456 	0.022
15 	1 073 741 824 	0.011 	small road
16 	4 294 967 296 	0.005 	street
17 	17 179 869 184 	0.003 	block, park, addresses
18 	68 719 476 736 	0.001 	some buildings, trees
19 	274 877 906 944 	0.0005 	local highway and crossing details
20 	1 099 511 627 776 	0.00025 	A mid-sized building
*/

// MaxSlippyZoom is the deepest zoom SlippyZoomForWidth will return.
const MaxSlippyZoom maptile.Zoom = 24

// SlippyZoomForWidth returns the slippy map zoom whose tiles are closest to
// widthDegrees of longitude across.
func SlippyZoomForWidth(widthDegrees float64) maptile.Zoom {
	if widthDegrees >= 360 || widthDegrees <= 0 || math.IsNaN(widthDegrees) {
		return 0
	}
	z := math.Round(math.Log2(360 / widthDegrees))
	if z > float64(MaxSlippyZoom) {
		return MaxSlippyZoom
	}
	return maptile.Zoom(z)
}

// SlippyTileAt returns the slippy map tile at zoom z containing pt.
func SlippyTileAt(pt orb.Point, z maptile.Zoom) maptile.Tile {
	return maptile.At(pt, z)
}
