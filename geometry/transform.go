// Package geometry provides the 2D shapes and transforms that animations move
// across an LED layout.
package geometry

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/matt-g-everett/ledanim/interpolate"
)

// Transform rotates and scales about Center. It is interpolatable, so a whole
// transform can be animated with one Interpolator.
type Transform struct {
	Center   f64.Vec2
	Rotation float64 // radians, anti-clockwise in y-up space
	Scale    f64.Vec2
}

var _ interpolate.Interpolatable[Transform] = Transform{}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: f64.Vec2{1, 1}}
}

func (tr Transform) WithCenter(c f64.Vec2) Transform {
	tr.Center = c
	return tr
}

func (tr Transform) WithRotation(th float64) Transform {
	tr.Rotation = th
	return tr
}

func (tr Transform) WithUniformScale(s float64) Transform {
	tr.Scale = f64.Vec2{s, s}
	return tr
}

func (tr Transform) WithScale(x, y float64) Transform {
	tr.Scale = f64.Vec2{x, y}
	return tr
}

// Lerp implements interpolate.Interpolatable. Each component is interpolated
// independently, so rotations pass through every intermediate angle rather
// than taking the shortest way round.
func (tr Transform) Lerp(o Transform, t float64) Transform {
	return Transform{
		Center:   f64.Vec2(interpolate.Vec2(tr.Center).Lerp(interpolate.Vec2(o.Center), t)),
		Rotation: float64(interpolate.Scalar(tr.Rotation).Lerp(interpolate.Scalar(o.Rotation), t)),
		Scale:    f64.Vec2(interpolate.Vec2(tr.Scale).Lerp(interpolate.Vec2(o.Scale), t)),
	}
}

// Affine returns the matrix that scales, then rotates, about Center.
func (tr Transform) Affine() f64.Aff3 {
	sin, cos := math.Sincos(tr.Rotation)
	a, b := cos*tr.Scale[0], -sin*tr.Scale[1]
	d, e := sin*tr.Scale[0], cos*tr.Scale[1]
	cx, cy := tr.Center[0], tr.Center[1]
	return f64.Aff3{
		a, b, cx - (a*cx + b*cy),
		d, e, cy - (d*cx + e*cy),
	}
}

// Apply transforms a single point.
func (tr Transform) Apply(pt f64.Vec2) f64.Vec2 {
	return apply(tr.Affine(), pt)
}

func apply(m f64.Aff3, pt f64.Vec2) f64.Vec2 {
	return f64.Vec2{
		m[0]*pt[0] + m[1]*pt[1] + m[2],
		m[3]*pt[0] + m[4]*pt[1] + m[5],
	}
}
