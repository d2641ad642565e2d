package nds

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass neighbors of a tile.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	LeftUp
	RightUp
	LeftDown
	RightDown
)

// Directions lists every Direction in AllNeighbors order.
var Directions = []Direction{Up, Down, Left, Right, LeftUp, RightUp, LeftDown, RightDown}

// offsets are tile-width multipliers along x and y.
var offsets = map[Direction][2]int64{
	Up:        {0, 1},
	Down:      {0, -1},
	Left:      {-1, 0},
	Right:     {1, 0},
	LeftUp:    {-1, 1},
	RightUp:   {1, 1},
	LeftDown:  {-1, -1},
	RightDown: {1, -1},
}

var directionNames = map[Direction]string{
	Up:        "UP",
	Down:      "DOWN",
	Left:      "LEFT",
	Right:     "RIGHT",
	LeftUp:    "LEFT_UP",
	RightUp:   "RIGHT_UP",
	LeftDown:  "LEFT_DOWN",
	RightDown: "RIGHT_DOWN",
}

func (d Direction) Valid() bool {
	_, ok := offsets[d]
	return ok
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Offset returns the x, y tile-width multipliers for d.
// Values outside the enumeration have no offset.
func (d Direction) Offset() (dx, dy int64) {
	o := offsets[d]
	return o[0], o[1]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case LeftUp:
		return RightDown
	case RightDown:
		return LeftUp
	case RightUp:
		return LeftDown
	case LeftDown:
		return RightUp
	}
	return d
}

// ParseDirection accepts names like "UP", "left_down" or "right-up".
func ParseDirection(s string) (Direction, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for d, n := range directionNames {
		if n == name {
			return d, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
