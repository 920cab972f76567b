package stream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Stream          string `yaml:"stream"`
			CalibrateClient string `yaml:"calibrateClient"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip struct {
		Pixels  int     `yaml:"pixels"`
		Columns int     `yaml:"columns"`
		Layout  []Point `yaml:"layout"`
	} `yaml:"strip"`
	Animation struct {
		FPS               uint32  `yaml:"fps"`
		CycleSeconds      uint32  `yaml:"cycleSeconds"`
		TransitionSeconds uint32  `yaml:"transitionSeconds"`
		CalibrationStep   float64 `yaml:"calibrationStep"`
	} `yaml:"animation"`
	API struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"api"`
}

// DefaultConfig returns the settings used for anything a config file leaves
// out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.URL = "tcp://localhost:1883"
	c.Mqtt.ClientID = "ledanim"
	c.Mqtt.QoS = 0
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.CalibrateClient = "home/xmastree/calibrate/client"
	c.Strip.Pixels = 500
	c.Animation.FPS = 30
	c.Animation.CycleSeconds = 60
	c.Animation.TransitionSeconds = 5
	c.Animation.CalibrationStep = 0.2
	c.API.Listen = ":3000"
	c.API.Static = "client/dist"
	return c
}

// ReadConfig decodes YAML from r over the defaults and validates the result.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	return ReadConfig(f)
}

// Validate checks that the config can drive a Streamer.
func (c Config) Validate() error {
	switch {
	case c.Animation.FPS == 0 || c.Animation.FPS > 255:
		return fmt.Errorf("%w: fps must be between 1 and 255, got %d", ErrInvalidConfig, c.Animation.FPS)
	case c.Strip.Pixels <= 0 || c.Strip.Pixels > MaxPixels:
		return fmt.Errorf("%w: pixels must be between 1 and %d, got %d", ErrInvalidConfig, MaxPixels, c.Strip.Pixels)
	case len(c.Strip.Layout) != 0 && len(c.Strip.Layout) != c.Strip.Pixels:
		return fmt.Errorf("%w: layout has %d points for %d pixels", ErrInvalidConfig, len(c.Strip.Layout), c.Strip.Pixels)
	case c.Animation.CycleSeconds == 0:
		return fmt.Errorf("%w: cycleSeconds must be positive", ErrInvalidConfig)
	case c.Animation.TransitionSeconds > c.Animation.CycleSeconds:
		return fmt.Errorf("%w: transitionSeconds %d exceeds cycleSeconds %d", ErrInvalidConfig,
			c.Animation.TransitionSeconds, c.Animation.CycleSeconds)
	case c.Animation.CalibrationStep <= 0:
		return fmt.Errorf("%w: calibrationStep must be positive", ErrInvalidConfig)
	case c.Mqtt.QoS > 2:
		return fmt.Errorf("%w: qos must be 0, 1 or 2, got %d", ErrInvalidConfig, c.Mqtt.QoS)
	}
	return nil
}

// Calibration builds the calibration source for the configured strip.
func (c Config) Calibration() *Calibration {
	return NewCalibration(c.Strip.Pixels, stepFramesFor(c.Animation.CalibrationStep, c.Animation.FPS))
}

// Layout returns the configured LED positions, or a grid when none are given.
func (c Config) Layout() Layout {
	if len(c.Strip.Layout) > 0 {
		return PointLayout(c.Strip.Layout)
	}
	return GridLayout(c.Strip.Pixels, c.Strip.Columns)
}
