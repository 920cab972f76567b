// Package timeline holds the frame-based time representation shared by every
// animation.
package timeline

import (
	"fmt"
)

// A TimeStamp is a position on an animation timeline expressed as minutes,
// seconds and frames. How many frames make a second depends on the rate it is
// evaluated at, so a TimeStamp never stores one.
type TimeStamp struct {
	Minute uint32
	Second uint32
	Frame  uint32
}

// Option sets one component of a TimeStamp built by NewWithDefaults.
type Option func(*TimeStamp)

// WithMinute sets the minute component.
func WithMinute(m uint32) Option {
	return func(ts *TimeStamp) { ts.Minute = m }
}

// WithSecond sets the second component.
func WithSecond(s uint32) Option {
	return func(ts *TimeStamp) { ts.Second = s }
}

// WithFrame sets the frame component.
func WithFrame(f uint32) Option {
	return func(ts *TimeStamp) { ts.Frame = f }
}

// New creates a TimeStamp from its components.
func New(minute, second, frame uint32) TimeStamp {
	return TimeStamp{Minute: minute, Second: second, Frame: frame}
}

// NewWithDefaults creates a TimeStamp where every component not set by an
// option is zero.
func NewWithDefaults(opts ...Option) TimeStamp {
	var ts TimeStamp
	for _, opt := range opts {
		opt(&ts)
	}
	return ts
}

// FromFrames converts an absolute frame count back into a normalised
// TimeStamp at the given rate.
func FromFrames(n uint64, fps uint32) TimeStamp {
	perMinute := uint64(fps) * 60
	return TimeStamp{
		Minute: uint32(n / perMinute),
		Second: uint32(n % perMinute / uint64(fps)),
		Frame:  uint32(n % uint64(fps)),
	}
}

// AsNumFrames returns the absolute number of frames from zero at the given
// frame rate.
func (ts TimeStamp) AsNumFrames(fps uint32) uint64 {
	f := uint64(fps)
	return uint64(ts.Minute)*60*f + uint64(ts.Second)*f + uint64(ts.Frame)
}

// Increment advances the TimeStamp by one frame, carrying into seconds and
// then minutes.
func (ts *TimeStamp) Increment(fps uint32) {
	ts.Frame++

	if ts.Frame >= fps {
		ts.Frame = 0
		ts.Second++
	}

	if ts.Second > 59 {
		ts.Second = 0
		ts.Minute++
	}
}

// TimeAsArray returns the components as [minute, second, frame].
func (ts TimeStamp) TimeAsArray() [3]uint32 {
	return [3]uint32{ts.Minute, ts.Second, ts.Frame}
}

// Compare returns -1, 0 or +1 depending on whether ts is before, equal to or
// after o. Minutes are compared first, then seconds, then frames.
func (ts TimeStamp) Compare(o TimeStamp) int {
	switch {
	case ts.Minute != o.Minute:
		return cmpUint(ts.Minute, o.Minute)
	case ts.Second != o.Second:
		return cmpUint(ts.Second, o.Second)
	default:
		return cmpUint(ts.Frame, o.Frame)
	}
}

func cmpUint(a, b uint32) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Before reports whether ts is strictly earlier than o.
func (ts TimeStamp) Before(o TimeStamp) bool { return ts.Compare(o) < 0 }

// After reports whether ts is strictly later than o.
func (ts TimeStamp) After(o TimeStamp) bool { return ts.Compare(o) > 0 }

// BeforeOrEqual reports whether ts is earlier than or equal to o.
func (ts TimeStamp) BeforeOrEqual(o TimeStamp) bool { return ts.Compare(o) <= 0 }

// AfterOrEqual reports whether ts is later than or equal to o.
func (ts TimeStamp) AfterOrEqual(o TimeStamp) bool { return ts.Compare(o) >= 0 }

func (ts TimeStamp) String() string {
	return fmt.Sprintf("%d:%02d.%02d", ts.Minute, ts.Second, ts.Frame)
}
