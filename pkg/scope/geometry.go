package scope

import (
	"fyne.io/fyne/v2"

	"github.com/itohio/goscope/pkg/sample"
)

// constantSegments returns the mirrored horizontal pair for a ConstantLine:
// one segment at baseY+offset and one at baseY-offset.
func constantSegments(x, y, w, h, value float32) [2]segment {
	baseY := y + h/2
	offset := constantOffset(h, value)
	return [2]segment{
		{x, baseY + offset, x + w, baseY + offset},
		{x, baseY - offset, x + w, baseY - offset},
	}
}

// signalPoints maps per-column bucket means onto pixel positions. The
// polyline starts at the midline on the left edge; column i lands at x+i.
func signalPoints(means []float32, x, y, h float32) []fyne.Position {
	points := make([]fyne.Position, 0, len(means)+1)
	points = append(points, fyne.NewPos(x, y+h/2))
	for i, m := range means {
		points = append(points, fyne.NewPos(x+float32(i), signalY(y, h, m)))
	}
	return points
}

// envelopeSegments maps per-column extents onto vertical pixel segments,
// column i at x+i. A bucket thinner than two pixel-heights of amplitude has
// its max raised by four pixel-heights so near-silent buckets stay visible.
// Iteration stops two columns before the last bucket; the early stop is a
// long-standing boundary quirk kept for output compatibility.
func envelopeSegments(extents []sample.Extent, x, y, h, scale float32) []segment {
	segs := make([]segment, 0, len(extents))

	col := x
	for _, ext := range extents {
		max := ext.Max
		if max-ext.Min < 2.0/h {
			max = max + 4.0/h
		}

		segs = append(segs, segment{
			col, envelopeY(y, h, ext.Min, scale),
			col, envelopeY(y, h, max, scale),
		})

		col++
		if int(col-x) == len(extents)-2 {
			break
		}
	}

	return segs
}
