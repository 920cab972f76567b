package stream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/bits"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledanim/timeline"
)

// CalibrationMessage is sent by the mobile app on the calibrate topic.
type CalibrationMessage struct {
	Type string `json:"type"`
}

// Calibration is a FrameSource that helps a camera work out where each pixel
// is. A pass starts with every pixel lit as a reference, then steps through
// the bits of the pixel index from the most significant, lighting the pixels
// whose index has that bit clear.
type Calibration struct {
	numPixels  int
	litLength  int
	stepFrames uint64
	colour     colorful.Color
}

// NewCalibration creates an instance of a Calibration that holds each pattern
// for stepFrames frames.
func NewCalibration(numPixels int, stepFrames uint64) *Calibration {
	c := new(Calibration)
	c.numPixels = numPixels
	c.litLength = max(bits.Len(uint(max(numPixels-1, 0))), 1)
	c.stepFrames = max(stepFrames, 1)
	c.colour, _ = colorful.Hex("#404040")
	return c
}

// Patterns returns the number of patterns in one pass, the reference
// included.
func (c *Calibration) Patterns() int {
	return c.litLength + 1
}

// Bit returns which bit of the pixel index is shown at t, measured from the
// start of calibration. The reference pattern is bit litLength, which no
// index has set.
func (c *Calibration) Bit(t timeline.TimeStamp, fps uint32) int {
	step := t.AsNumFrames(fps) / c.stepFrames
	return c.litLength - int(step%uint64(c.Patterns()))
}

// CalculateFrame implements FrameSource.
func (c *Calibration) CalculateFrame(t timeline.TimeStamp, fps uint32) *Frame {
	bit := c.Bit(t, fps)
	f := NewFrame(c.numPixels)
	for i := 0; i < c.numPixels; i++ {
		if (i>>bit)&1 == 0 {
			f.SetPixel(i, c.colour)
		}
	}
	return f
}

// A Calibrator switches a Streamer into calibration when asked to over MQTT.
type Calibrator struct {
	streamer    *Streamer
	calibration FrameSource
	logger      *slog.Logger
}

// NewCalibrator creates an instance of a Calibrator.
func NewCalibrator(streamer *Streamer, calibration FrameSource, logger *slog.Logger) *Calibrator {
	c := new(Calibrator)
	c.streamer = streamer
	c.calibration = calibration
	c.logger = logger
	return c
}

// HandleMessage acts on a calibration message: "start" shows the calibration
// patterns and "stop" goes back to the animation.
func (c *Calibrator) HandleMessage(payload []byte) error {
	var message CalibrationMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return fmt.Errorf("decoding calibration message: %w", err)
	}

	switch message.Type {
	case "start":
		at := c.streamer.Override(c.calibration)
		c.logger.Info("calibration started", "at", at.String())
	case "stop":
		c.logger.Info("calibration stopped")
		c.streamer.Override(nil)
	default:
		return fmt.Errorf("unknown calibration message type %q", message.Type)
	}
	return nil
}

func (c *Calibrator) handleClientMessages(_ mqtt.Client, msg mqtt.Message) {
	c.logger.Debug("received calibration message", "id", msg.MessageID(), "topic", msg.Topic())
	if err := c.HandleMessage(msg.Payload()); err != nil {
		c.logger.Warn("ignoring calibration message", "err", err)
	}
}

// Subscribe listens for calibration messages on topic.
func (c *Calibrator) Subscribe(client mqtt.Client, topic string, qos byte) error {
	token := client.Subscribe(topic, qos, c.handleClientMessages)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribing to %s: %w", topic, token.Error())
	}
	return nil
}

// stepFramesFor returns how many frames to hold each calibration pattern so
// that it is shown for roughly seconds.
func stepFramesFor(seconds float64, fps uint32) uint64 {
	return uint64(math.Max(1, math.Round(seconds*float64(fps))))
}
