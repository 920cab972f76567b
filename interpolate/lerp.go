package interpolate

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Interpolatable is implemented by any value that can be linearly
// interpolated towards another value of the same type. Lerp(o, 0) must
// return the receiver and Lerp(o, 1) must return o.
type Interpolatable[T any] interface {
	Lerp(other T, t float64) T
}

// Scalar is an interpolatable float64.
type Scalar float64

// Lerp implements Interpolatable.
func (s Scalar) Lerp(o Scalar, t float64) Scalar {
	return Scalar(lerp(float64(s), float64(o), t))
}

// Vec2 is an interpolatable pair, typically a position.
type Vec2 [2]float64

// Lerp implements Interpolatable.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		lerp(v[0], o[0], t),
		lerp(v[1], o[1], t),
	}
}

// Vec4 is an interpolatable quadruple, typically RGBA.
type Vec4 [4]float64

// Lerp implements Interpolatable.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	return Vec4{
		lerp(v[0], o[0], t),
		lerp(v[1], o[1], t),
		lerp(v[2], o[2], t),
		lerp(v[3], o[3], t),
	}
}

// Colour is a colorful.Color blended in RGB space.
type Colour struct {
	colorful.Color
}

// NewColour wraps c.
func NewColour(c colorful.Color) Colour {
	return Colour{c}
}

// MustHex parses a "#rrggbb" colour and panics if it is malformed. It is meant
// for colour literals in scene definitions.
func MustHex(s string) Colour {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return Colour{c}
}

// Lerp implements Interpolatable.
func (c Colour) Lerp(o Colour, t float64) Colour {
	switch {
	case t == 0 || c == o:
		return c
	case t == 1:
		return o
	}
	return Colour{c.BlendRgb(o.Color, t)}
}

// lerp blends a and b so that both endpoints are reproduced exactly.
func lerp(a, b, t float64) float64 {
	if a == b {
		return a
	}
	return (1-t)*a + t*b
}
