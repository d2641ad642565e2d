package nds

// Neighbor returns the adjacent tile at the same level in direction d.
// A Direction outside the enumeration has no offset, and so returns t itself.
//
// Neighbors are found by stepping one tile width from the center, so near the
// edges of the fixed-point range the step may wrap into an unrelated tile.
func (t TileID) Neighbor(d Direction) TileID {
	w := t.Width()
	x, y := t.Center()
	dx, dy := d.Offset()
	return FromFixed(x+dx*w, y+dy*w, t.Level())
}

// AllNeighbors returns t followed by its eight neighbors, in Directions order.
func (t TileID) AllNeighbors() []TileID {
	out := make([]TileID, 0, len(Directions)+1)
	out = append(out, t)
	for _, d := range Directions {
		out = append(out, t.Neighbor(d))
	}
	return out
}
