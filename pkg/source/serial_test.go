package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    float32
		wantErr bool
	}{
		{name: "positive amplitude", line: "0.125", want: 0.125},
		{name: "negative amplitude", line: "-0.98", want: -0.98},
		{name: "zero", line: "0", want: 0},
		{name: "integer form", line: "1", want: 1},
		{name: "scientific notation", line: "2.5e-3", want: 0.0025},
		{name: "out of nominal range still parses", line: "1.5", want: 1.5},
		{name: "garbage", line: "abc", wantErr: true},
		{name: "trailing text", line: "0.5 volts", wantErr: true},
		{name: "nan rejected", line: "NaN", wantErr: true},
		{name: "inf rejected", line: "+Inf", wantErr: true},
		{name: "negative inf rejected", line: "-Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, float64(tt.want), float64(got), 1e-6)
		})
	}
}

func TestNewSerial_Defaults(t *testing.T) {
	s := NewSerial("/dev/ttyACM0", 0, 0)
	assert.Equal(t, DefaultBaudRate, s.baudRate)
	assert.Equal(t, DefaultBufferSize, s.bufSize)
	assert.False(t, s.IsConnected())
}

func TestSerial_CloseWithoutConnect(t *testing.T) {
	s := NewSerial("/dev/ttyACM0", DefaultBaudRate, DefaultBufferSize)
	assert.NoError(t, s.Close())
}
