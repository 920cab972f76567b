package stream

import (
	"github.com/matt-g-everett/ledanim/geometry"
	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/timeline"
)

// A Shape is an Animation that lights every LED inside a polygon. The
// polygon's colour and transform are both animated.
type Shape struct {
	layout    Layout
	polygon   geometry.Polygon
	colour    interpolate.Sampler[interpolate.Colour]
	transform interpolate.Sampler[geometry.Transform]
}

// NewShape creates an instance of a Shape that does not move.
func NewShape(layout Layout, polygon geometry.Polygon, colour interpolate.Sampler[interpolate.Colour]) *Shape {
	s := new(Shape)
	s.layout = layout
	s.polygon = polygon
	s.colour = colour
	s.transform = interpolate.Constant(geometry.NewTransform())
	return s
}

// WithTransform animates the shape with transform.
func (s *Shape) WithTransform(transform interpolate.Sampler[geometry.Transform]) *Shape {
	s.transform = transform
	return s
}

// Draw implements Animation.
func (s *Shape) Draw(f *Frame, t timeline.TimeStamp, fps uint32) {
	polygon := s.polygon.Transformed(s.transform.At(t, fps))
	c := s.colour.At(t, fps).Color
	for i, pt := range s.layout {
		if i >= f.Len() {
			break
		}
		if polygon.Contains(pt) {
			f.SetPixel(i, c)
		}
	}
}
