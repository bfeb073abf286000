package rules

// Edge names the side a segment moved in from, derived from the vector
// between it and its neighbour in the body.
type Edge int

const (
	// EdgeNone is used when two segments share a cell.
	EdgeNone Edge = iota
	EdgeLeft
	EdgeUp
	EdgeDown
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeUp:
		return "up"
	case EdgeDown:
		return "down"
	case EdgeRight:
		return "right"
	}
	return "none"
}

// edgeOf maps a movement vector to an Edge. Vectors that cross the wrap seam
// (e.g. -31 on a 32 wide board) are folded back to a unit step first.
func edgeOf(v Point, width, height uint32) Edge {
	v = Point{X: foldAxis(v.X, width), Y: foldAxis(v.Y, height)}
	switch v {
	case Point{X: -1, Y: 0}:
		return EdgeLeft
	case Point{X: 0, Y: -1}:
		return EdgeUp
	case Point{X: 0, Y: 1}:
		return EdgeDown
	case Point{X: 1, Y: 0}:
		return EdgeRight
	}
	return EdgeNone
}

// foldAxis maps d into [-1, size-2] so that a step of size-1 reads as -1.
func foldAxis(d int32, size uint32) int32 {
	if size < 3 {
		return d
	}
	return emod(d+1, int32(size)) - 1
}

// cellRect is the full square of cell p.
func cellRect(p Point, scale int32) Rect {
	return Rect{X: p.X * scale, Y: p.Y * scale, W: scale, H: scale}
}

// partialRect keeps the fraction f of cell p on the side that faces the
// neighbouring segment. A head moving right grows out of the cell's left
// side; a tail moving right shrinks towards its right side.
func partialRect(p Point, e Edge, f float32, scale int32) Rect {
	r := cellRect(p, scale)
	n := int32(f * float32(scale))
	switch e {
	case EdgeLeft:
		r.X += scale - n
		r.W = n
	case EdgeUp:
		r.Y += scale - n
		r.H = n
	case EdgeDown:
		r.H = n
	case EdgeRight:
		r.W = n
	}
	return r
}
