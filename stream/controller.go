package stream

import (
	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/timeline"
)

// Controller that manages animations. Each source plays for a cycle, seeing
// time from the start of its cycle; during the last part of a cycle the next
// source fades in, held at its first frame.
type Controller struct {
	sources           []FrameSource
	cycleSeconds      uint32
	transitionSeconds uint32
}

// NewController creates an instance of a Controller. sources must not be
// empty.
func NewController(sources []FrameSource, cycleSeconds, transitionSeconds uint32) *Controller {
	c := new(Controller)
	c.sources = sources
	c.cycleSeconds = max(cycleSeconds, 1)
	c.transitionSeconds = min(transitionSeconds, c.cycleSeconds)
	return c
}

// Current returns the index of the source playing at t, the time within its
// cycle and, while fading into the next source, how far the fade has got.
func (c *Controller) Current(t timeline.TimeStamp, fps uint32) (index int, local timeline.TimeStamp, transition float64) {
	frame := t.AsNumFrames(fps)
	cycleFrames := uint64(c.cycleSeconds) * uint64(fps)
	cycle := frame / cycleFrames
	index = int(cycle % uint64(len(c.sources)))
	local = timeline.FromFrames(frame%cycleFrames, fps)

	if len(c.sources) < 2 || c.transitionSeconds == 0 {
		return index, local, 0
	}

	fadeStart := cycleFrames - uint64(c.transitionSeconds)*uint64(fps)
	if frame%cycleFrames < fadeStart {
		return index, local, 0
	}

	fade := interpolate.EaseInOut[interpolate.Scalar](0, 1,
		timeline.FromFrames(fadeStart, fps), timeline.FromFrames(cycleFrames, fps))
	return index, local, float64(fade.At(local, fps))
}

// CalculateFrame implements FrameSource.
func (c *Controller) CalculateFrame(t timeline.TimeStamp, fps uint32) *Frame {
	index, local, transition := c.Current(t, fps)
	f := c.sources[index].CalculateFrame(local, fps)
	if transition > 0 {
		next := c.sources[(index+1)%len(c.sources)].CalculateFrame(timeline.TimeStamp{}, fps)
		f = f.InterpolateFrame(next, transition)
	}
	return f
}
