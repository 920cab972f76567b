package interpolate

import (
	"github.com/matt-g-everett/ledanim/timeline"
)

// A Sampler yields a value for any point on the timeline. Interpolator is the
// data-driven implementation; SamplerFunc covers procedural curves that cannot
// be described by one.
type Sampler[T any] interface {
	At(time timeline.TimeStamp, fps uint32) T
}

// SamplerFunc adapts an ordinary function to a Sampler.
type SamplerFunc[T any] func(time timeline.TimeStamp, fps uint32) T

// At calls f(time, fps).
func (f SamplerFunc[T]) At(time timeline.TimeStamp, fps uint32) T {
	return f(time, fps)
}

var _ Sampler[Scalar] = Interpolator[Scalar]{}

// Sample evaluates s at every frame from start up to and including end.
func Sample[T any](s Sampler[T], start, end timeline.TimeStamp, fps uint32) []T {
	var out []T
	for ts := start; ts.BeforeOrEqual(end); ts.Increment(fps) {
		out = append(out, s.At(ts, fps))
	}
	return out
}
