// Package scope provides a custom Fyne widget that renders sample-by-sample
// level data on a division grid, in the style of an oscilloscope. Three kinds
// of lines can be drawn:
//   - ConstantLine: a horizontal line at a constant level, mirrored around
//     the midline.
//   - SignalLine: the signal as a single connected line, usable for signals
//     which don't vary much over short time spans (e.g. envelopes, or short
//     buffers with about as many samples as the scope is wide).
//   - AudioLine: a min/max envelope per pixel column, which works well for
//     zoomed-out audio where there is much more data than the scope is wide.
//
// To show a scope, implement ScopeData on whatever owns the live signal state
// and pass it to New. The widget borrows the sample buffers returned by
// ScopeLines on every frame and never caches geometry between frames.
package scope

import "image/color"

// ScopeData is implemented by the owner of the data shown on a scope.
type ScopeData interface {
	// Recalculate recomputes the data behind the scope lines. It is invoked
	// once when the widget is constructed and again on every ParamUpdate.
	Recalculate()
	// ScopeLines describes what to draw. It is invoked on every draw and must
	// return currently-valid buffers; it should avoid allocating fresh
	// backing storage per call since it runs per-frame.
	ScopeLines() []ScopeLine
}

// ScopeLine is one renderable line. The three variants are ConstantLine,
// SignalLine and AudioLine; the renderer dispatches exhaustively over them.
type ScopeLine interface {
	scopeLine()
}

// ConstantLine draws a horizontal line at Value and its mirror at -Value.
type ConstantLine struct {
	Color color.RGBA
	Value float32
}

// SignalLine draws one bucket mean per pixel column as a connected line with
// the given stroke width. Means are clamped to [-1, 1] before mapping.
type SignalLine struct {
	Samples []float32
	Color   color.RGBA
	Width   float32
}

// AudioLine draws one vertical min/max segment per pixel column, twice: a
// full-scale pass and a dimmed half-scale pass layered on top for a softer
// look.
type AudioLine struct {
	Samples []float32
	Color   color.RGBA
}

func (ConstantLine) scopeLine() {}
func (SignalLine) scopeLine()   {}
func (AudioLine) scopeLine()    {}
