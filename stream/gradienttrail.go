package stream

import (
	"math"

	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/timeline"
)

// A GradientTrail is an Animation that cycles a gradient along an led strip.
type GradientTrail struct {
	gradient    GradientTable
	trailLength int
	offset      interpolate.Sampler[interpolate.Scalar]
	saturation  float64
	luminance   float64
}

// NewGradientTrail creates an instance of a GradientTrail object. offset says
// how many pixels the gradient has moved along the strip at any time.
func NewGradientTrail(gradient GradientTable, trailLength int, offset interpolate.Sampler[interpolate.Scalar]) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength
	g.offset = offset
	g.saturation = 1.0
	g.luminance = 0.05

	return g
}

// Draw implements Animation.
func (g *GradientTrail) Draw(f *Frame, t timeline.TimeStamp, fps uint32) {
	length := float64(g.trailLength)
	current := float64(g.offset.At(t, fps))
	for i := 0; i < f.Len(); i++ {
		pos := math.Mod(float64(i)-current, length)
		if pos < 0 {
			pos += length
		}
		f.SetPixel(i, g.gradient.GetColor(pos/length, g.saturation, g.luminance))
	}
}
