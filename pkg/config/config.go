package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/itohio/goscope/pkg/scope"
)

// Config represents the application configuration.
type Config struct {
	Scope  scope.Config `yaml:"scope"`
	Serial SerialConfig `yaml:"serial"`
	Signal SignalConfig `yaml:"signal"`
}

// SerialConfig contains serial port configuration for the live probe feed.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// SignalConfig contains the parameters of the generated demo signal and the
// display buffer.
type SignalConfig struct {
	Frequency  float64       `yaml:"frequency"`   // Carrier frequency (Hz)
	Amplitude  float64       `yaml:"amplitude"`   // Peak amplitude, 0..1
	NoiseLevel float64       `yaml:"noise_level"` // Additive noise amplitude
	SampleRate time.Duration `yaml:"sample_rate"` // Interval between samples
	BufferSize int           `yaml:"buffer_size"` // Samples kept for display
	Threshold  float64       `yaml:"threshold"`   // Initial threshold level
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Scope: scope.DefaultConfig(),
		Serial: SerialConfig{
			Port:     "COM3", // Default for Windows, should be "/dev/ttyACM0" on Linux/Mac
			BaudRate: 115200,
		},
		Signal: SignalConfig{
			Frequency:  2.0,
			Amplitude:  0.8,
			NoiseLevel: 0.02,
			SampleRate: time.Millisecond, // 1000 samples per second
			BufferSize: 4000,             // ~4 seconds of signal
			Threshold:  0.5,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Scope.XDivisions == 0 {
		c.Scope.XDivisions = def.Scope.XDivisions
	}
	if c.Scope.YDivisions == 0 {
		c.Scope.YDivisions = def.Scope.YDivisions
	}

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}

	if c.Signal.Frequency == 0 {
		c.Signal.Frequency = def.Signal.Frequency
	}
	if c.Signal.Amplitude == 0 {
		c.Signal.Amplitude = def.Signal.Amplitude
	}
	if c.Signal.SampleRate == 0 {
		c.Signal.SampleRate = def.Signal.SampleRate
	}
	if c.Signal.BufferSize == 0 {
		c.Signal.BufferSize = def.Signal.BufferSize
	}
}
