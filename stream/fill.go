package stream

import (
	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/timeline"
)

// A Fill is an Animation that washes every pixel with one colour.
type Fill struct {
	colour  interpolate.Sampler[interpolate.Colour]
	opacity interpolate.Sampler[interpolate.Scalar]
}

// NewFill creates an instance of a Fill object.
func NewFill(colour interpolate.Sampler[interpolate.Colour], opacity interpolate.Sampler[interpolate.Scalar]) *Fill {
	f := new(Fill)
	f.colour = colour
	f.opacity = opacity
	return f
}

// Draw implements Animation.
func (a *Fill) Draw(f *Frame, t timeline.TimeStamp, fps uint32) {
	c := a.colour.At(t, fps).Color
	opacity := float64(a.opacity.At(t, fps))
	for i := 0; i < f.Len(); i++ {
		f.Blend(i, c, opacity)
	}
}
