package stream

import (
	"encoding/binary"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxPixels is the largest frame the binary encoding can describe.
const MaxPixels = 1<<16 - 1

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a new black Frame with numPixels pixels.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// SetPixel sets the colour of pixel i.
func (f *Frame) SetPixel(i int, c colorful.Color) {
	f.pixels[i] = c
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Blend mixes c into pixel i; amount 0 leaves the pixel alone and 1 replaces
// it.
func (f *Frame) Blend(i int, c colorful.Color, amount float64) {
	switch {
	case amount <= 0:
		return
	case amount >= 1:
		f.pixels[i] = c
	default:
		f.pixels[i] = f.pixels[i].BlendRgb(c, amount)
	}
}

// InterpolateFrame merges two frames of the same length.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint).Clamped()
	}

	return out
}

// Hex returns every pixel as a "#rrggbb" string.
func (f *Frame) Hex() []string {
	out := make([]string, len(f.pixels))
	for i, p := range f.pixels {
		out[i] = p.Clamped().Hex()
	}
	return out
}

// MarshalBinary converts a Frame into binary data: a little-endian uint16
// pixel count followed by three bytes per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > MaxPixels {
		return nil, fmt.Errorf("frame has %d pixels, at most %d can be encoded", len(f.pixels), MaxPixels)
	}

	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
