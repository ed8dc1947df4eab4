package scope

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Default grid density.
const (
	DefaultXDivisions = 10
	DefaultYDivisions = 10
)

// Config holds the division grid density for a scope widget.
type Config struct {
	XDivisions uint32 `yaml:"x_divisions"`
	YDivisions uint32 `yaml:"y_divisions"`
}

// DefaultConfig returns the default 10×10 grid configuration.
func DefaultConfig() Config {
	return Config{
		XDivisions: DefaultXDivisions,
		YDivisions: DefaultYDivisions,
	}
}

// Widget is a custom Fyne widget that renders ScopeData as an
// oscilloscope-style plot: black background, division grid, the configured
// lines, and a border.
type Widget struct {
	widget.BaseWidget

	data ScopeData
	cfg  Config
}

// New creates a scope widget over data. A nil cfg selects the default 10×10
// grid; zero division counts fall back to the defaults as well. The data's
// Recalculate hook is invoked once before the first draw.
func New(data ScopeData, cfg *Config) *Widget {
	w := &Widget{
		data: data,
		cfg:  DefaultConfig(),
	}
	if cfg != nil {
		w.cfg = *cfg
	}
	if w.cfg.XDivisions == 0 {
		w.cfg.XDivisions = DefaultXDivisions
	}
	if w.cfg.YDivisions == 0 {
		w.cfg.YDivisions = DefaultYDivisions
	}

	w.ExtendBaseWidget(w)
	w.data.Recalculate()
	w.Refresh()
	return w
}

// ParamUpdate is the recalculation trigger. Call it after a parameter change
// so the data recomputes its lines before the next draw. Must be called on
// the Fyne main thread (use fyne.Do from goroutines).
func (w *Widget) ParamUpdate() {
	w.data.Recalculate()
	w.Refresh()
}

// CreateRenderer creates the widget renderer.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{A: 255}) // Opaque black background
	return &scopeRenderer{
		scope:   w,
		bg:      bg,
		objects: []fyne.CanvasObject{bg},
	}
}
