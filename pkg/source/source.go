// Package source provides live feeds of normalized sample values for scope
// display: a serial probe reading amplitudes from a port, and a mocked signal
// generator for development without hardware.
package source

// Source defines the interface for sample sources (real or mocked).
// Emitted values are normalized amplitudes, nominally in [-1, 1].
type Source interface {
	Connect() error
	Close() error
	Samples() <-chan float32
	IsConnected() bool
}

// Ensure Serial implements Source.
var _ Source = (*Serial)(nil)

// Ensure Mock implements Source.
var _ Source = (*Mock)(nil)
