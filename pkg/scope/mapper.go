package scope

import (
	"image/color"

	"github.com/chewxy/math32"
)

// clampAmplitude bounds a sample value to the displayable [-1, 1] range.
// NaN propagates (plotted data must not contain NaNs).
func clampAmplitude(v float32) float32 {
	return math32.Max(-1.0, math32.Min(1.0, v))
}

// signalY maps an amplitude onto a pixel row for SignalLine drawing.
// Positive amplitudes land below the midline. This intentionally differs
// from envelopeY; the two conventions are part of each line type's contract.
func signalY(y, h, v float32) float32 {
	return y + clampAmplitude(v)*h/2 + h/2
}

// envelopeY maps an amplitude onto a pixel row for AudioLine drawing.
// Inverted relative to signalY: positive amplitudes land above the midline.
// scale < 1 squeezes the wave toward the midline for the layered second pass.
func envelopeY(y, h, v, scale float32) float32 {
	return y - scale*clampAmplitude(v)*h/2 + h/2
}

// constantOffset is the distance from the midline at which a ConstantLine
// and its mirror are drawn. The value is not clamped.
func constantOffset(h, value float32) float32 {
	return value * h / 2
}

// intensity dims a color for the layered envelope pass. The 1/5 exponent
// gives a perceptual rather than linear brightness falloff.
func intensity(c color.RGBA, scale float32) color.RGBA {
	f := math32.Pow(scale, 1.0/5.0)
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}
