package stream

import (
	"github.com/matt-g-everett/ledanim/timeline"
)

// An Animation draws itself onto a frame for a point in time. Drawing must
// depend only on the time and rate so that any frame can be rendered in any
// order.
type Animation interface {
	Draw(f *Frame, t timeline.TimeStamp, fps uint32)
}

// A FrameSource produces complete frames.
type FrameSource interface {
	CalculateFrame(t timeline.TimeStamp, fps uint32) *Frame
}
