package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridLines_Counts(t *testing.T) {
	segs := gridLines(0, 0, 100, 100, 10, 10)
	require.Len(t, segs, 22) // 11 vertical + 11 horizontal

	segs = gridLines(0, 0, 100, 100, 4, 7)
	require.Len(t, segs, 13) // 5 vertical + 8 horizontal
}

func TestGridLines_VerticalSpacing(t *testing.T) {
	const divs = 10
	segs := gridLines(0, 0, 100, 50, divs, 1)

	vertical := segs[:divs+1]
	assert.Equal(t, float32(0), vertical[0].x1)
	assert.Equal(t, float32(100), vertical[divs].x1)

	for i, seg := range vertical {
		assert.Equal(t, float32(i)*10, seg.x1, "line %d", i)
		assert.Equal(t, seg.x1, seg.x2, "vertical line %d", i)
		assert.Equal(t, float32(0), seg.y1)
		assert.Equal(t, float32(50), seg.y2)
	}
}

func TestGridLines_HorizontalSpacing(t *testing.T) {
	const divs = 5
	segs := gridLines(0, 0, 80, 100, 1, divs)

	horizontal := segs[2:]
	require.Len(t, horizontal, divs+1)
	assert.Equal(t, float32(0), horizontal[0].y1)
	assert.Equal(t, float32(100), horizontal[divs].y1)

	for i, seg := range horizontal {
		assert.Equal(t, float32(i)*20, seg.y1, "line %d", i)
		assert.Equal(t, seg.y1, seg.y2, "horizontal line %d", i)
		assert.Equal(t, float32(0), seg.x1)
		assert.Equal(t, float32(80), seg.x2)
	}
}

func TestGridLines_OffsetRectangle(t *testing.T) {
	segs := gridLines(5, 7, 100, 100, 2, 2)
	require.Len(t, segs, 6)

	// Vertical lines span the offset rectangle edges.
	assert.Equal(t, segment{5, 7, 5, 107}, segs[0])
	assert.Equal(t, segment{55, 7, 55, 107}, segs[1])
	assert.Equal(t, segment{105, 7, 105, 107}, segs[2])

	// Horizontal lines likewise.
	assert.Equal(t, segment{5, 7, 105, 7}, segs[3])
	assert.Equal(t, segment{5, 57, 105, 57}, segs[4])
	assert.Equal(t, segment{5, 107, 105, 107}, segs[5])
}
