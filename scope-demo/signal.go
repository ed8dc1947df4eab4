package main

import (
	"image/color"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/itohio/goscope/pkg/config"
	"github.com/itohio/goscope/pkg/scope"
)

// Line colors for the demo scope.
var (
	signalColor    = mustHex("#f3fa92")
	envelopeColor  = mustHex("#ff8989")
	thresholdColor = mustHex("#a3905f")
)

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("bad hex color " + s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// envelopeWindow is the moving-average span, in samples, used when
// recalculating the envelope.
const envelopeWindow = 64

// demoSignal owns the live signal state shown on the scope: a rolling buffer
// of audio samples, an envelope recomputed from it on demand, and a threshold
// level. All mutation must happen on the Fyne main thread.
type demoSignal struct {
	cfg *config.Config

	threshold float32
	audio     []float32
	envelope  []float32

	// Reused line description, rebuilt per frame without reallocating.
	lines []scope.ScopeLine
}

func newDemoSignal(cfg *config.Config) *demoSignal {
	return &demoSignal{
		cfg:       cfg,
		threshold: float32(cfg.Signal.Threshold),
		audio:     make([]float32, 0, cfg.Signal.BufferSize),
		lines:     make([]scope.ScopeLine, 0, 3),
	}
}

// Extend appends freshly arrived samples, trimming the rolling buffer to the
// configured display length.
func (d *demoSignal) Extend(values []float32) {
	d.audio = append(d.audio, values...)
	if excess := len(d.audio) - d.cfg.Signal.BufferSize; excess > 0 {
		d.audio = append(d.audio[:0], d.audio[excess:]...)
	}
}

// SetThreshold moves the mirrored threshold line.
func (d *demoSignal) SetThreshold(v float32) {
	d.threshold = v
}

// Recalculate recomputes the envelope as a moving average of |x| over the
// rolling audio buffer.
func (d *demoSignal) Recalculate() {
	if cap(d.envelope) >= len(d.audio) {
		d.envelope = d.envelope[:0]
	} else {
		d.envelope = make([]float32, 0, cap(d.audio))
	}

	var sum float32
	for i, v := range d.audio {
		sum += math32.Abs(v)
		if i >= envelopeWindow {
			sum -= math32.Abs(d.audio[i-envelopeWindow])
		}
		n := min(i+1, envelopeWindow)
		d.envelope = append(d.envelope, sum/float32(n))
	}
}

// ScopeLines describes the demo plot: the mirrored threshold, the raw audio
// envelope, and the smoothed envelope signal on top. Signal and audio lines
// are omitted while their buffers are empty (the scope requires non-empty
// buffers).
func (d *demoSignal) ScopeLines() []scope.ScopeLine {
	d.lines = d.lines[:0]
	d.lines = append(d.lines, scope.ConstantLine{Color: thresholdColor, Value: d.threshold})
	if len(d.audio) > 0 {
		d.lines = append(d.lines, scope.AudioLine{Samples: d.audio, Color: signalColor})
	}
	if len(d.envelope) > 0 {
		d.lines = append(d.lines, scope.SignalLine{Samples: d.envelope, Color: envelopeColor, Width: 1.5})
	}
	return d.lines
}
