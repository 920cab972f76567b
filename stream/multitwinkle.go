package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledanim/timeline"
)

// A MultiTwinkle is a Twinkle whose particles take the next colour from a
// palette each time they go dark.
type MultiTwinkle struct {
	palette   []colorful.Color
	particles []particle
}

// NewMultiTwinkle creates an instance of a MultiTwinkle object. palette must
// not be empty.
func NewMultiTwinkle(seed int64, numPixels, numParticles int, palette []colorful.Color) *MultiTwinkle {
	t := new(MultiTwinkle)
	t.palette = palette
	t.particles = newParticles(seed, numPixels, numParticles)
	return t
}

// Draw implements Animation.
func (t *MultiTwinkle) Draw(f *Frame, ts timeline.TimeStamp, fps uint32) {
	frame := ts.AsNumFrames(fps)
	for i, p := range t.particles {
		if p.pixel >= f.Len() {
			continue
		}
		n := frame + p.phase
		length := uint64(len(p.lut))
		colour := t.palette[(n/length+uint64(i))%uint64(len(t.palette))]
		f.Blend(p.pixel, colour, p.lut[n%length])
	}
}
