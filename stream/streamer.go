package stream

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/matt-g-everett/ledanim/timeline"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	source    FrameSource
	publisher Publisher
	topic     string
	fps       uint32
	logger    *slog.Logger

	mu            sync.RWMutex
	current       timeline.TimeStamp
	override      FrameSource
	overrideStart timeline.TimeStamp
	last          *Frame
	lastAt        timeline.TimeStamp
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, source FrameSource, publisher Publisher, logger *slog.Logger) *Streamer {
	s := new(Streamer)
	s.source = source
	s.publisher = publisher
	s.topic = config.Mqtt.Topics.Stream
	s.fps = config.Animation.FPS
	s.logger = logger
	return s
}

// SendFrame renders the frame for the current time, publishes it and moves
// on to the next frame. The time advances even if publishing fails so that
// the animation keeps pace with the wall clock.
func (s *Streamer) SendFrame() error {
	s.mu.Lock()
	at := s.current
	s.current.Increment(s.fps)
	source, sourceAt := s.source, at
	if s.override != nil {
		source = s.override
		sourceAt = timeline.FromFrames(at.AsNumFrames(s.fps)-s.overrideStart.AsNumFrames(s.fps), s.fps)
	}
	s.mu.Unlock()

	f := source.CalculateFrame(sourceAt, s.fps)

	s.mu.Lock()
	s.last = f
	s.lastAt = at
	s.mu.Unlock()

	b, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding frame %s: %w", at, err)
	}
	if err := s.publisher.Publish(s.topic, b); err != nil {
		return fmt.Errorf("sending frame %s: %w", at, err)
	}
	return nil
}

// Override renders frames from source instead of the streamer's own source
// until it is called again with nil. source sees time from zero at the next
// frame sent, which is returned as the streamer's time.
func (s *Streamer) Override(source FrameSource) timeline.TimeStamp {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = source
	s.overrideStart = s.current
	return s.current
}

// LastFrame returns the most recently rendered frame and its time, or nil
// before the first frame.
func (s *Streamer) LastFrame() (*Frame, timeline.TimeStamp) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.lastAt
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(time.Second / time.Duration(s.fps))
	defer publishTimer.Stop()

	s.logger.Info("streaming", "topic", s.topic, "fps", s.fps)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("streaming stopped", "reason", ctx.Err())
			return nil
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				s.logger.Warn("frame dropped", "err", err)
			}
		}
	}
}

// Render calculates every frame from start up to, but not including, end and
// hands each one to fn. It stops at the first error fn returns.
func Render(source FrameSource, start, end timeline.TimeStamp, fps uint32, fn func(timeline.TimeStamp, *Frame) error) error {
	for current := start; current.Before(end); current.Increment(fps) {
		if err := fn(current, source.CalculateFrame(current, fps)); err != nil {
			return err
		}
	}
	return nil
}
