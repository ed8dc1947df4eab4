package scope

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/itohio/goscope/pkg/sample"
)

const (
	borderStrokeWidth   = 3.0
	envelopeStrokeWidth = 2.0
)

var (
	gridColor   = color.RGBA{R: 50, G: 50, B: 40, A: 255}
	borderColor = mustHex("#ccccdc")
)

// mustHex parses a CSS-style hex color. Only used for package constants.
func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("scope: bad hex color " + s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// scopeRenderer renders the scope widget. All geometry is rebuilt from the
// raw sample buffers on every Refresh; nothing is cached between frames.
type scopeRenderer struct {
	scope *Widget

	// Background
	bg *canvas.Rectangle

	// Objects list for Fyne
	objects []fyne.CanvasObject

	// Reduction buffers (reused across frames)
	means   []float32
	extents []sample.Extent

	// Track last size to detect changes
	lastSize fyne.Size
}

// MinSize returns the minimum size of the widget.
func (r *scopeRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 100)
}

// Layout arranges the widget components.
func (r *scopeRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	if r.lastSize.Width != size.Width || r.lastSize.Height != size.Height {
		r.lastSize = size
		// Size changed, redraw with the new dimensions.
		r.scope.BaseWidget.Refresh()
	}
}

// Refresh rebuilds the scene: background, grid, one pass per scope line
// dispatched on its variant, then the border on top.
func (r *scopeRenderer) Refresh() {
	size := r.scope.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.bg)

	r.drawGrid(size)

	for _, line := range r.scope.data.ScopeLines() {
		switch l := line.(type) {
		case ConstantLine:
			r.drawConstant(size, l)
		case SignalLine:
			r.drawSignal(size, l)
		case AudioLine:
			r.drawAudio(size, l)
		}
	}

	r.drawBorder(size)
}

// drawGrid draws the division grid.
func (r *scopeRenderer) drawGrid(size fyne.Size) {
	for _, seg := range gridLines(0, 0, size.Width, size.Height, r.scope.cfg.XDivisions, r.scope.cfg.YDivisions) {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(seg.x1, seg.y1)
		line.Position2 = fyne.NewPos(seg.x2, seg.y2)
		line.StrokeWidth = 1
		r.objects = append(r.objects, line)
	}
}

// drawConstant draws a ConstantLine and its mirror around the midline.
func (r *scopeRenderer) drawConstant(size fyne.Size, l ConstantLine) {
	for _, seg := range constantSegments(0, 0, size.Width, size.Height, l.Value) {
		line := canvas.NewLine(l.Color)
		line.Position1 = fyne.NewPos(seg.x1, seg.y1)
		line.Position2 = fyne.NewPos(seg.x2, seg.y2)
		line.StrokeWidth = 1
		r.objects = append(r.objects, line)
	}
}

// drawSignal draws a SignalLine as a polyline of per-column bucket means.
func (r *scopeRenderer) drawSignal(size fyne.Size, l SignalLine) {
	r.means = sample.ReduceMean(r.means, l.Samples, size.Width)
	points := signalPoints(r.means, 0, 0, size.Height)

	for i := range len(points) - 1 {
		line := canvas.NewLine(l.Color)
		line.Position1 = points[i]
		line.Position2 = points[i+1]
		line.StrokeWidth = l.Width
		r.objects = append(r.objects, line)
	}
}

// drawAudio draws an AudioLine: a vertical min/max segment per column, once
// at full scale and once dimmed at half scale layered on top.
func (r *scopeRenderer) drawAudio(size fyne.Size, l AudioLine) {
	r.extents = sample.ReduceEnvelope(r.extents, l.Samples, size.Width)

	for _, scale := range [2]float32{1.0, 0.5} {
		strokeColor := intensity(l.Color, scale)
		for _, seg := range envelopeSegments(r.extents, 0, 0, size.Height, scale) {
			line := canvas.NewLine(strokeColor)
			line.Position1 = fyne.NewPos(seg.x1, seg.y1)
			line.Position2 = fyne.NewPos(seg.x2, seg.y2)
			line.StrokeWidth = envelopeStrokeWidth
			r.objects = append(r.objects, line)
		}
	}
}

// drawBorder draws a fixed-width border straddling the widget bounds.
func (r *scopeRenderer) drawBorder(size fyne.Size) {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = borderColor
	border.StrokeWidth = borderStrokeWidth
	border.Move(fyne.NewPos(-borderStrokeWidth/2, -borderStrokeWidth/2))
	border.Resize(fyne.NewSize(size.Width+borderStrokeWidth, size.Height+borderStrokeWidth))
	r.objects = append(r.objects, border)
}

// Objects returns all canvas objects for rendering.
func (r *scopeRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up resources.
func (r *scopeRenderer) Destroy() {
	// Cleanup handled by Fyne
}
