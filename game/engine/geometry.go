package engine

// Rotate applies a clockwise rotation to base side counts.
// Invalid rotations leave the counts unchanged.
func Rotate(s SideCounts, rotation Rotation) SideCounts {
	switch rotation {
	case Rotation90:
		return SideCounts{Top: s.Left, Right: s.Top, Bottom: s.Right, Left: s.Bottom}
	case Rotation180:
		return SideCounts{Top: s.Bottom, Right: s.Left, Bottom: s.Top, Left: s.Right}
	case Rotation270:
		return SideCounts{Top: s.Right, Right: s.Bottom, Bottom: s.Left, Left: s.Top}
	}
	return s
}

// Total returns the number of connection points over all four sides
func (s SideCounts) Total() int {
	return s.Top + s.Right + s.Bottom + s.Left
}

// RotatedSides returns the side counts of a code under the given rotation
func (c *Catalog) RotatedSides(code string, rotation Rotation) SideCounts {
	return Rotate(c.BaseSides(code), rotation)
}

// SideFacing returns the connection count on the edge of placed that borders
// the neighbour cell, or 0 if the neighbour is not orthogonally adjacent
func (c *Catalog) SideFacing(placed PlacedCard, neighborRow, neighborCol int) int {
	s := c.RotatedSides(placed.Card.Code, placed.Rotation)
	dr := neighborRow - placed.Row
	dc := neighborCol - placed.Col
	switch {
	case dr == -1 && dc == 0:
		return s.Top
	case dr == 1 && dc == 0:
		return s.Bottom
	case dr == 0 && dc == -1:
		return s.Left
	case dr == 0 && dc == 1:
		return s.Right
	}
	return 0
}

type cell struct {
	row, col int
}

// neighbors in top, bottom, left, right order
var neighborOffsets = [4]cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// facing returns the count on the side of s that points along offset d
func facing(s SideCounts, d cell) int {
	switch d {
	case cell{-1, 0}:
		return s.Top
	case cell{1, 0}:
		return s.Bottom
	case cell{0, -1}:
		return s.Left
	case cell{0, 1}:
		return s.Right
	}
	return 0
}

func opposite(d cell) cell {
	return cell{-d.row, -d.col}
}
