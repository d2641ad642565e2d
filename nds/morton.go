package nds

import "fmt"

// Morton is a Z-order code of a fixed-point coordinate pair:
// x bits in the even positions, y bits in the odd positions.
type Morton int64

const (
	// yMask keeps the 31 low bits of y; its sign bit has no room in the code.
	yMask = 0x7FFFFFFF

	yBit30 = 0x40000000
)

// MortonFromFixed interleaves a fixed-point pair into a Morton code.
func MortonFromFixed(x, y int64) Morton {
	return Morton(Expand(x) | Expand(y&yMask)<<1)
}

// MortonFromDegrees interleaves a degree pair into a Morton code.
func MortonFromDegrees(lon, lat float64) (Morton, error) {
	x, err := DegreesToFixed(lon)
	if err != nil {
		return 0, fmt.Errorf("longitude: %w", err)
	}
	y, err := DegreesToFixed(lat)
	if err != nil {
		return 0, fmt.Errorf("latitude: %w", err)
	}
	return MortonFromFixed(x, y), nil
}

// Fixed de-interleaves the code into a fixed-point pair.
// Signs dropped by the encoding are restored: y is 31 bits wide, so bit 30
// set means a southern latitude; x is 32 bits wide and bit 31 marks the
// western hemisphere.
func (m Morton) Fixed() (x, y int64) {
	x = int64(int32(uint32(Compress(int64(m)))))
	y = Compress(int64(m) >> 1)
	if y&yBit30 != 0 {
		y |= -1 << 31
	}
	return x, y
}

// Degrees de-interleaves the code into a degree pair.
func (m Morton) Degrees() (lon, lat float64) {
	x, y := m.Fixed()
	return FixedToDegrees(x), FixedToDegrees(y)
}

// TileID truncates the code to level and marks the level.
func (m Morton) TileID(level Level) TileID {
	return FromMorton(m, level)
}
