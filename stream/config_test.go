package stream

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig_EmptyUsesDefaults(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestReadConfig_Overrides(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(`
mqtt:
  url: tcp://broker:1883
  qos: 1
  topics:
    stream: tree/stream
strip:
  pixels: 10
  columns: 5
animation:
  fps: 60
`))
	require.NoError(t, err)

	assert.Equal(t, "tcp://broker:1883", c.Mqtt.URL)
	assert.Equal(t, byte(1), c.Mqtt.QoS)
	assert.Equal(t, "tree/stream", c.Mqtt.Topics.Stream)
	assert.Equal(t, "ledanim", c.Mqtt.ClientID, "unset fields keep their defaults")
	assert.Equal(t, 10, c.Strip.Pixels)
	assert.Equal(t, uint32(60), c.Animation.FPS)
	assert.Equal(t, uint32(60), c.Animation.CycleSeconds)
	assert.Len(t, c.Layout(), 10)
}

func TestReadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero fps", "animation:\n  fps: 0\n"},
		{"fps too high", "animation:\n  fps: 300\n"},
		{"no pixels", "strip:\n  pixels: 0\n"},
		{"layout mismatch", "strip:\n  pixels: 3\n  layout:\n    - {x: 0, y: 0}\n"},
		{"zero cycle", "animation:\n  cycleSeconds: 0\n"},
		{"transition too long", "animation:\n  cycleSeconds: 4\n  transitionSeconds: 5\n"},
		{"bad qos", "mqtt:\n  qos: 3\n"},
		{"zero calibration step", "animation:\n  calibrationStep: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadConfig(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestReadConfig_Malformed(t *testing.T) {
	_, err := ReadConfig(strings.NewReader("strip: [\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strip:\n  pixels: 3\n  layout:\n    - {x: 0, y: 0}\n    - {x: 1, y: 0}\n    - {x: 1, y: 1}\n"), 0o600))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Layout{{0, 0}, {1, 0}, {1, 1}}, c.Layout())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
