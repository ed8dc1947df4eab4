package scope

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampAmplitude(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		want float32
	}{
		{name: "inside range", v: 0.25, want: 0.25},
		{name: "upper bound", v: 1.0, want: 1.0},
		{name: "lower bound", v: -1.0, want: -1.0},
		{name: "above range", v: 3.5, want: 1.0},
		{name: "below range", v: -7.0, want: -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampAmplitude(tt.v))
		})
	}
}

func TestSignalY_ClampIdempotence(t *testing.T) {
	// Mapping an out-of-range amplitude equals mapping its clamped value.
	for _, v := range []float32{1.5, 42.0, -2.0, -100.0} {
		assert.Equal(t, signalY(0, 100, clampAmplitude(v)), signalY(0, 100, v), "v=%v", v)
	}
}

func TestSignalY_PositiveBelowMidline(t *testing.T) {
	// Signal convention is not inverted: +1 maps to the bottom edge.
	assert.Equal(t, float32(100), signalY(0, 100, 1))
	assert.Equal(t, float32(0), signalY(0, 100, -1))
	assert.Equal(t, float32(50), signalY(0, 100, 0))
}

func TestEnvelopeY_InvertedConvention(t *testing.T) {
	// Envelope convention is inverted: +1 maps to the top edge.
	assert.Equal(t, float32(0), envelopeY(0, 100, 1, 1))
	assert.Equal(t, float32(100), envelopeY(0, 100, -1, 1))
	assert.Equal(t, float32(50), envelopeY(0, 100, 0, 1))

	// Half scale squeezes toward the midline.
	assert.Equal(t, float32(25), envelopeY(0, 100, 1, 0.5))
	assert.Equal(t, float32(75), envelopeY(0, 100, -1, 0.5))
}

func TestEnvelopeY_ClampIdempotence(t *testing.T) {
	for _, v := range []float32{2.0, -5.0} {
		assert.Equal(t, envelopeY(0, 100, clampAmplitude(v), 1), envelopeY(0, 100, v, 1), "v=%v", v)
	}
}

func TestConstantOffset(t *testing.T) {
	assert.Equal(t, float32(25), constantOffset(100, 0.5))
	assert.Equal(t, float32(-25), constantOffset(100, -0.5))
	// Not clamped.
	assert.Equal(t, float32(100), constantOffset(100, 2.0))
}

func TestIntensity_FullScaleUnchanged(t *testing.T) {
	c := color.RGBA{R: 243, G: 250, B: 146, A: 255}
	assert.Equal(t, c, intensity(c, 1.0))
}

func TestIntensity_FifthRootFalloff(t *testing.T) {
	c := color.RGBA{R: 255, G: 146, B: 0, A: 255}
	dimmed := intensity(c, 0.5)

	// 0.5^(1/5) ≈ 0.87055: channels scale sublinearly.
	assert.Equal(t, uint8(221), dimmed.R)
	assert.Equal(t, uint8(127), dimmed.G)
	assert.Equal(t, uint8(0), dimmed.B)
	assert.Equal(t, uint8(255), dimmed.A)
}
