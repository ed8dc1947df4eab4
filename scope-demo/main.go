package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/goscope/pkg/config"
	"github.com/itohio/goscope/pkg/scope"
	"github.com/itohio/goscope/pkg/source"
)

func main() {
	var (
		portFlag   = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		mockFlag   = flag.Bool("mock", false, "Use a generated signal instead of a serial port")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override serial port if provided via command line
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	// Create Fyne application
	application := app.NewWithID("com.itohio.goscope")

	// Create main window
	window := application.NewWindow("Scope Demo")
	window.Resize(fyne.NewSize(900, 600))
	window.CenterOnScreen()

	// Create the signal state and the scope widget over it
	signal := newDemoSignal(cfg)
	scopeWidget := scope.New(signal, &cfg.Scope)

	state := &appState{
		cfg:         cfg,
		signal:      signal,
		scopeWidget: scopeWidget,
		window:      window,
		useMock:     *mockFlag,
	}

	toolbar := createToolbar(state)

	window.SetContent(container.NewBorder(
		toolbar,
		nil,
		nil,
		nil,
		scopeWidget,
	))
	window.ShowAndRun()
}

// appState holds the application state.
type appState struct {
	cfg         *config.Config
	signal      *demoSignal
	scopeWidget *scope.Widget
	window      fyne.Window
	connectBtn  *widget.Button
	src         source.Source
	feedDone    chan struct{} // Closed when the feed goroutine exits
	useMock     bool
}

// createToolbar creates the toolbar with the connect button and the
// threshold slider.
func createToolbar(state *appState) fyne.CanvasObject {
	connectBtn := widget.NewButtonWithIcon("", theme.LoginIcon(), func() {
		handleConnect(state)
	})
	state.connectBtn = connectBtn

	// The slider moves the mirrored constant line; every change fires the
	// recalculation trigger.
	thresholdSlider := widget.NewSlider(0, 1)
	thresholdSlider.Step = 0.01
	thresholdSlider.Value = state.cfg.Signal.Threshold
	thresholdSlider.OnChanged = func(v float64) {
		state.signal.SetThreshold(float32(v))
		state.scopeWidget.ParamUpdate()
	}

	return container.NewBorder(
		nil, // top
		nil, // bottom
		connectBtn, // left
		nil, // right
		thresholdSlider,
	)
}

// handleConnect toggles the sample feed on and off.
func handleConnect(state *appState) {
	if state.src != nil && state.src.IsConnected() {
		// Disconnect - close the source and wait for the feed to drain
		state.src.Close()
		<-state.feedDone
		state.src = nil
		state.feedDone = nil
		fmt.Println("Disconnected")
		return
	}

	var src source.Source
	if state.useMock {
		src = source.NewMock(&state.cfg.Signal)
		fmt.Println("Using mocked source")
	} else {
		src = source.NewSerial(state.cfg.Serial.Port, state.cfg.Serial.BaudRate, source.DefaultBufferSize)
	}

	if err := src.Connect(); err != nil {
		if state.useMock {
			dialog.ShowError(fmt.Errorf("failed to connect to mocked source: %w", err), state.window)
		} else {
			dialog.ShowError(fmt.Errorf("failed to connect to %s: %w", state.cfg.Serial.Port, err), state.window)
		}
		return
	}
	state.src = src
	state.feedDone = feedScope(state, src)

	if state.useMock {
		fmt.Println("Connected to mocked source")
	} else {
		fmt.Printf("Connected to serial port: %s\n", state.cfg.Serial.Port)
	}
}

// feedScope pumps samples from the source into the signal state, batching
// them so widget updates land at UI frame rate rather than sample rate.
// Returns a channel that is closed when the feed goroutine exits.
func feedScope(state *appState, src source.Source) chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		const flushInterval = 16 * time.Millisecond // ~60 FPS
		lastFlush := time.Now()
		batch := make([]float32, 0, 256)

		flush := func() {
			if len(batch) == 0 {
				return
			}
			values := make([]float32, len(batch))
			copy(values, batch)
			batch = batch[:0]

			// Widget state must only change on the main Fyne thread.
			fyne.Do(func() {
				state.signal.Extend(values)
				state.scopeWidget.ParamUpdate()
			})
		}

		for v := range src.Samples() {
			batch = append(batch, v)
			if time.Since(lastFlush) >= flushInterval {
				flush()
				lastFlush = time.Now()
			}
		}
		flush()
	}()

	return done
}
