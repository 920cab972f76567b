package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledanim/interpolate/easing"
	"github.com/matt-g-everett/ledanim/timeline"
	"github.com/matt-g-everett/ledanim/util"
)

var lutMemoizer util.Memoizer

type particle struct {
	pixel int
	phase uint64
	lut   []float64
}

// A Twinkle is an Animation that twinkles random particles.
type Twinkle struct {
	colour    colorful.Color
	particles []particle
}

// NewTwinkle creates an instance of a Twinkle object. Particle placement and
// timing come from seed, so the same seed always gives the same animation.
func NewTwinkle(seed int64, numPixels, numParticles int, colour colorful.Color) *Twinkle {
	t := new(Twinkle)
	t.colour = colour

	t.particles = newParticles(seed, numPixels, numParticles)
	return t
}

func newParticles(seed int64, numPixels, numParticles int) []particle {
	r := rand.New(rand.NewSource(seed))
	particles := make([]particle, numParticles)
	for i := range particles {
		lut := util.GenerateLutMemoized((r.Intn(18)+6)*2, easing.InOut, &lutMemoizer)
		particles[i] = particle{
			pixel: r.Intn(numPixels),
			phase: uint64(r.Intn(len(lut))),
			lut:   lut,
		}
	}
	return particles
}

// Draw implements Animation.
func (t *Twinkle) Draw(f *Frame, ts timeline.TimeStamp, fps uint32) {
	frame := ts.AsNumFrames(fps)
	for _, p := range t.particles {
		if p.pixel >= f.Len() {
			continue
		}
		gain := p.lut[(frame+p.phase)%uint64(len(p.lut))]
		f.Blend(p.pixel, t.colour, gain)
	}
}
