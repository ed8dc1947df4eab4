package scope

// segment is one straight line in widget coordinates.
type segment struct {
	x1, y1, x2, y2 float32
}

// gridLines returns the division grid for a w×h rectangle anchored at (x, y):
// xDivs+1 vertical and yDivs+1 horizontal segments, evenly spaced, both
// edges included. Divisions must be positive.
func gridLines(x, y, w, h float32, xDivs, yDivs uint32) []segment {
	segs := make([]segment, 0, xDivs+yDivs+2)

	for i := uint32(0); i <= xDivs; i++ {
		gx := x + float32(i)/float32(xDivs)*w
		segs = append(segs, segment{gx, y, gx, y + h})
	}
	for i := uint32(0); i <= yDivs; i++ {
		gy := y + float32(i)/float32(yDivs)*h
		segs = append(segs, segment{x, gy, x + w, gy})
	}

	return segs
}
