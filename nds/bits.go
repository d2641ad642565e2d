package nds

// Compress gathers the even-positioned bits of v into the low 32 bits of the result.
// It is the inverse of Expand.
func Compress(v int64) int64 {
	v &= 0x5555555555555555
	v = (v ^ (v >> 1)) & 0x3333333333333333
	v = (v ^ (v >> 2)) & 0x0F0F0F0F0F0F0F0F
	v = (v ^ (v >> 4)) & 0x00FF00FF00FF00FF
	v = (v ^ (v >> 8)) & 0x0000FFFF0000FFFF
	v = (v ^ (v >> 16)) & 0x00000000FFFFFFFF
	return v
}

// Expand spreads the low 32 bits of v into the even bit positions of the result.
// Negative values are cut to their low 32 bits first; otherwise the sign
// extension would leak into the high half while shifting.
func Expand(v int64) int64 {
	if v < 0 {
		v &= 0xFFFFFFFF
	}
	v = (v | (v << 16)) & 0x0000FFFF0000FFFF
	v = (v | (v << 8)) & 0x00FF00FF00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F0F0F0F0F
	v = (v | (v << 2)) & 0x3333333333333333
	v = (v | (v << 1)) & 0x5555555555555555
	return v
}
