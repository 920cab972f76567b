package interpolate

import (
	"slices"

	"github.com/matt-g-everett/ledanim/interpolate/easing"
	"github.com/matt-g-everett/ledanim/timeline"
)

// FromBuilder is the first stage of building an Interpolator; it only knows
// the start value. Call To to continue.
type FromBuilder[T Interpolatable[T]] struct {
	from T
}

// Builder has both end values and collects optional control points and easing
// until Over turns it into an Interpolator.
type Builder[T Interpolatable[T]] struct {
	from     T
	to       T
	easing   easing.Function
	controls []T
}

// From starts building an Interpolator that begins at value:
//
//	in := interpolate.From(interpolate.Scalar(0)).
//		To(10).
//		Ease(easing.InOut).
//		Over(timeline.New(0, 0, 0), timeline.New(0, 1, 0))
func From[T Interpolatable[T]](value T) FromBuilder[T] {
	return FromBuilder[T]{from: value}
}

// To sets the value the curve ends at.
func (b FromBuilder[T]) To(value T) Builder[T] {
	return Builder[T]{from: b.from, to: value}
}

// Ease sets the easing. It only affects curves without control points.
func (b Builder[T]) Ease(e easing.Function) Builder[T] {
	b.easing = e
	return b
}

// Through appends a control point. Two control points make a cubic curve; any
// other non-zero number makes a general Bezier curve.
func (b Builder[T]) Through(point T) Builder[T] {
	b.controls = append(slices.Clip(b.controls), point)
	return b
}

// Over finishes the curve, spanning start to end.
func (b Builder[T]) Over(start, end timeline.TimeStamp) Interpolator[T] {
	switch len(b.controls) {
	case 0:
		return linear(b.from, b.to, start, end, b.easing)
	case 2:
		return Cubic(b.from, b.controls[0], b.controls[1], b.to, start, end)
	}

	points := make([]T, 0, len(b.controls)+2)
	points = append(points, b.from)
	points = append(points, b.controls...)
	points = append(points, b.to)
	return Interpolator[T]{
		kind:   KindBezier,
		points: points,
		start:  start,
		end:    end,
	}
}
