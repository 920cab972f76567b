package stream

import (
	"math"

	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/interpolate/easing"
	"github.com/matt-g-everett/ledanim/timeline"
)

// A Spot is an Animation that glows around a moving point, fading out
// towards its radius.
type Spot struct {
	layout   Layout
	position interpolate.Sampler[interpolate.Vec2]
	radius   interpolate.Sampler[interpolate.Scalar]
	colour   interpolate.Sampler[interpolate.Colour]
	falloff  easing.Function
}

// NewSpot creates an instance of a Spot object.
func NewSpot(layout Layout, position interpolate.Sampler[interpolate.Vec2], radius interpolate.Sampler[interpolate.Scalar],
	colour interpolate.Sampler[interpolate.Colour]) *Spot {

	s := new(Spot)
	s.layout = layout
	s.position = position
	s.radius = radius
	s.colour = colour
	s.falloff = easing.Out
	return s
}

// Draw implements Animation.
func (s *Spot) Draw(f *Frame, t timeline.TimeStamp, fps uint32) {
	center := s.position.At(t, fps)
	radius := float64(s.radius.At(t, fps))
	if radius <= 0 {
		return
	}

	c := s.colour.At(t, fps).Color
	for i, pt := range s.layout {
		if i >= f.Len() {
			break
		}
		d := math.Hypot(pt[0]-center[0], pt[1]-center[1])
		if d >= radius {
			continue
		}
		f.Blend(i, c, s.falloff.Ease(1-d/radius))
	}
}
