package source

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chewxy/math32"

	"github.com/itohio/goscope/pkg/config"
)

// Mock simulates a sample source for testing and development. It generates a
// sine carrier with a slow amplitude sweep and additive noise.
type Mock struct {
	cfg *config.SignalConfig

	samples   chan float32
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool

	startTime time.Time
}

// NewMock creates a new mocked source instance.
func NewMock(cfg *config.SignalConfig) *Mock {
	if cfg == nil {
		cfg = &config.SignalConfig{
			Frequency:  2.0,
			Amplitude:  0.8,
			NoiseLevel: 0.02,
			SampleRate: time.Millisecond,
			BufferSize: 4000,
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Mock{
		cfg:       cfg,
		samples:   make(chan float32, DefaultBufferSize),
		ctx:       ctx,
		cancel:    cancel,
		connected: false,
	}
}

// Connect simulates connecting to a probe.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}

	m.connected = true
	m.startTime = time.Now()

	// Start generating samples
	go m.generateSamples()

	return nil
}

// Close stops the mocked source.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	m.cancel()
	m.connected = false
	close(m.samples)

	return nil
}

// Samples returns the channel for reading samples.
func (m *Mock) Samples() <-chan float32 {
	return m.samples
}

// IsConnected returns whether the source is currently connected.
func (m *Mock) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// generateSamples generates simulated samples at the configured rate.
func (m *Mock) generateSamples() {
	ticker := time.NewTicker(m.cfg.SampleRate)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			value := m.generateSample(time.Since(m.startTime))
			select {
			case m.samples <- value:
			case <-m.ctx.Done():
				return
			default:
				// Channel full, skip
			}
		}
	}
}

// generateSample generates a single simulated sample at elapsed time t:
// a sine carrier under a slow amplitude sweep, plus deterministic noise.
func (m *Mock) generateSample(t time.Duration) float32 {
	secs := float32(t.Seconds())

	carrier := math32.Sin(2 * math32.Pi * float32(m.cfg.Frequency) * secs)

	// Sweep the amplitude once every ~8 seconds so envelopes have shape.
	sweep := 0.5 + 0.5*math32.Sin(2*math32.Pi*secs/8)

	noise := (math32.Sin(secs*997) + math32.Cos(secs*1301)) *
		float32(m.cfg.NoiseLevel) * 0.5

	value := float32(m.cfg.Amplitude)*sweep*carrier + noise

	return math32.Max(-1.0, math32.Min(1.0, value))
}
