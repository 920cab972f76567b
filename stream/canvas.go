package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/timeline"
)

// A Layer is an Animation that is only drawn during its active ranges. A
// layer without ranges is always drawn.
type Layer struct {
	Animation Animation
	Active    []timeline.Range
}

// A Canvas composes layers, in order, over a background colour.
type Canvas struct {
	numPixels  int
	background interpolate.Sampler[interpolate.Colour]
	layers     []Layer
}

// NewCanvas creates an instance of a Canvas.
func NewCanvas(numPixels int, background interpolate.Sampler[interpolate.Colour]) *Canvas {
	c := new(Canvas)
	c.numPixels = numPixels
	c.background = background
	return c
}

// AddLayer draws animation on top of the existing layers during the given
// ranges, or always when there are none.
func (c *Canvas) AddLayer(animation Animation, active ...timeline.Range) *Canvas {
	c.layers = append(c.layers, Layer{Animation: animation, Active: active})
	return c
}

// Layers returns the layers in drawing order.
func (c *Canvas) Layers() []Layer {
	return c.layers
}

// CalculateFrame implements FrameSource.
func (c *Canvas) CalculateFrame(t timeline.TimeStamp, fps uint32) *Frame {
	f := NewFrame(c.numPixels)
	if c.background != nil {
		f.Fill(c.background.At(t, fps).Color)
	} else {
		f.Fill(colorful.Color{})
	}

	for _, l := range c.layers {
		if t.MatchesRange(l.Active) {
			l.Animation.Draw(f, t, fps)
		}
	}
	return f
}
