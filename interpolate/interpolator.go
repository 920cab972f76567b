// Package interpolate describes how values change over a timeline.
//
// An Interpolator is plain data: one of a closed set of curve kinds plus the
// values and time range that parameterise it. Evaluating it with At is a pure
// function of the time and frame rate, so the same Interpolator can be shared
// between goroutines and sampled any number of times.
package interpolate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matt-g-everett/ledanim/interpolate/easing"
	"github.com/matt-g-everett/ledanim/timeline"
)

var (
	// ErrNoKeyframes is the panic value when a keyframe track without any
	// keyframes is evaluated.
	ErrNoKeyframes = errors.New("interpolate: keyframes interpolator has no keyframes")

	// ErrNoPoints is the panic value when a Bezier curve without any points is
	// evaluated.
	ErrNoPoints = errors.New("interpolate: bezier curve has no points")
)

// Kind identifies the curve an Interpolator evaluates.
type Kind int

const (
	KindConstant Kind = iota
	KindLinear
	KindKeyframes
	KindCubic
	KindBezier
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindLinear:
		return "linear"
	case KindKeyframes:
		return "keyframes"
	case KindCubic:
		return "cubic"
	case KindBezier:
		return "bezier"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A Keyframe anchors a value at a point in time.
type Keyframe[T any] struct {
	Time  timeline.TimeStamp
	Value T
}

// KF is shorthand for building a Keyframe.
func KF[T any](time timeline.TimeStamp, value T) Keyframe[T] {
	return Keyframe[T]{Time: time, Value: value}
}

// Interpolator maps a time on the timeline to a value of type T.
//
// Which fields are meaningful depends on the kind:
//
//	KindConstant   value
//	KindLinear     from, to, start, end, easing
//	KindKeyframes  keyframes, easing
//	KindCubic      points[0:4], start, end
//	KindBezier     points, start, end
//
// The zero Interpolator is a constant zero T.
type Interpolator[T Interpolatable[T]] struct {
	kind      Kind
	value     T
	from, to  T
	keyframes []Keyframe[T]
	points    []T
	start     timeline.TimeStamp
	end       timeline.TimeStamp
	easing    easing.Function
}

// Constant creates an Interpolator that always yields value.
func Constant[T Interpolatable[T]](value T) Interpolator[T] {
	return Interpolator[T]{kind: KindConstant, value: value}
}

// Linear creates an Interpolator moving from one value to another at a
// constant rate between start and end.
func Linear[T Interpolatable[T]](from, to T, start, end timeline.TimeStamp) Interpolator[T] {
	return linear(from, to, start, end, easing.Linear)
}

// EaseInOut is like Linear but accelerates out of from and decelerates into to.
func EaseInOut[T Interpolatable[T]](from, to T, start, end timeline.TimeStamp) Interpolator[T] {
	return linear(from, to, start, end, easing.InOut)
}

func linear[T Interpolatable[T]](from, to T, start, end timeline.TimeStamp, e easing.Function) Interpolator[T] {
	return Interpolator[T]{
		kind:   KindLinear,
		from:   from,
		to:     to,
		start:  start,
		end:    end,
		easing: e,
	}
}

// Keyframes creates an Interpolator that passes through each keyframe in turn,
// applying e between every consecutive pair. Keyframes must be sorted by time;
// this is not checked.
func Keyframes[T Interpolatable[T]](e easing.Function, keyframes ...Keyframe[T]) Interpolator[T] {
	return Interpolator[T]{
		kind:      KindKeyframes,
		keyframes: slices.Clone(keyframes),
		easing:    e,
	}
}

// Cubic creates a cubic Bezier curve from p0 to p3 shaped by the control
// points p1 and p2. The curve itself expresses the acceleration, so no easing
// is applied.
func Cubic[T Interpolatable[T]](p0, p1, p2, p3 T, start, end timeline.TimeStamp) Interpolator[T] {
	return Interpolator[T]{
		kind:   KindCubic,
		points: []T{p0, p1, p2, p3},
		start:  start,
		end:    end,
	}
}

// Bezier creates a Bezier curve of any degree through the first and last of
// points, using the rest as control points.
func Bezier[T Interpolatable[T]](points []T, start, end timeline.TimeStamp) Interpolator[T] {
	return Interpolator[T]{
		kind:   KindBezier,
		points: slices.Clone(points),
		start:  start,
		end:    end,
	}
}

// Kind returns the curve kind.
func (in Interpolator[T]) Kind() Kind {
	return in.kind
}

// Easing returns the easing applied by linear and keyframe interpolators.
func (in Interpolator[T]) Easing() easing.Function {
	return in.easing
}

// At evaluates the interpolator at time, counting frames at fps.
func (in Interpolator[T]) At(time timeline.TimeStamp, fps uint32) T {
	switch in.kind {
	case KindLinear:
		t := progress(time, in.start, in.end, fps)
		return in.from.Lerp(in.to, in.easing.Ease(t))

	case KindKeyframes:
		return in.keyframeAt(time, fps)

	case KindCubic:
		t := progress(time, in.start, in.end, fps)
		p0, p1, p2, p3 := in.points[0], in.points[1], in.points[2], in.points[3]

		q0 := p0.Lerp(p1, t)
		q1 := p1.Lerp(p2, t)
		q2 := p2.Lerp(p3, t)

		r0 := q0.Lerp(q1, t)
		r1 := q1.Lerp(q2, t)

		return r0.Lerp(r1, t)

	case KindBezier:
		t := progress(time, in.start, in.end, fps)
		return DeCasteljau(in.points, t)

	default:
		return in.value
	}
}

func (in Interpolator[T]) keyframeAt(time timeline.TimeStamp, fps uint32) T {
	kfs := in.keyframes
	if len(kfs) == 0 {
		panic(ErrNoKeyframes)
	}

	first, last := kfs[0], kfs[len(kfs)-1]
	if time.BeforeOrEqual(first.Time) {
		return first.Value
	}
	if time.AfterOrEqual(last.Time) {
		return last.Value
	}

	// next is the first keyframe at or after time; with equal timestamps the
	// earliest of them wins.
	next, found := slices.BinarySearchFunc(kfs, time, func(kf Keyframe[T], ts timeline.TimeStamp) int {
		return kf.Time.Compare(ts)
	})
	if found {
		return kfs[next].Value
	}

	prev := kfs[next-1]
	t := progress(time, prev.Time, kfs[next].Time, fps)
	return prev.Value.Lerp(kfs[next].Value, in.easing.Ease(t))
}

// progress returns how far current is between start and end as a fraction in
// [0, 1]. A zero-length span is already complete.
func progress(current, start, end timeline.TimeStamp, fps uint32) float64 {
	c := current.AsNumFrames(fps)
	s := start.AsNumFrames(fps)
	e := end.AsNumFrames(fps)

	if s == e {
		return 1
	}
	if c <= s {
		return 0
	}
	if c >= e {
		return 1
	}
	return float64(c-s) / float64(e-s)
}
