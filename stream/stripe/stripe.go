package stripe

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// A Stripe is a run of pixels in one colour.
type Stripe struct {
	Colour colorful.Color
	Length int32
}

type RandomStripeGenerator struct {
	rand      *rand.Rand
	palette   []colorful.Color
	current   int
	stripeMin int32
	stripeMax int32
}

// NewRandomStripeGenerator creates a generator of stripes drawn from palette,
// or from random hues when palette is nil. The same seed always produces the
// same stripes.
func NewRandomStripeGenerator(seed int64, palette []colorful.Color) *RandomStripeGenerator {
	g := new(RandomStripeGenerator)
	g.rand = rand.New(rand.NewSource(seed))
	g.palette = palette
	g.current = -1
	g.stripeMax = 1000
	g.stripeMin = 200
	return g
}

// WithLengths bounds the length of generated stripes to [min, max).
func (g *RandomStripeGenerator) WithLengths(minLength, maxLength int32) *RandomStripeGenerator {
	g.stripeMin = minLength
	g.stripeMax = maxLength
	return g
}

func (g *RandomStripeGenerator) CreateStripe() Stripe {
	var colour colorful.Color
	switch {
	case len(g.palette) == 0:
		colour = colorful.Hsl(g.rand.Float64()*360.0, 1.0, 0.2)
	case len(g.palette) == 1:
		colour = g.palette[0]
	default:
		// Choose a new colour that's different from the previous colour
		for {
			newCurrent := g.rand.Intn(len(g.palette))
			if newCurrent != g.current {
				g.current = newCurrent
				break
			}
		}
		colour = g.palette[g.current]
	}

	length := g.stripeMin
	if g.stripeMax > g.stripeMin {
		length += g.rand.Int31n(g.stripeMax - g.stripeMin)
	}
	return Stripe{colour, length}
}

// CreateStripes returns the next n stripes.
func (g *RandomStripeGenerator) CreateStripes(n int) []Stripe {
	stripes := make([]Stripe, n)
	for i := range stripes {
		stripes[i] = g.CreateStripe()
	}
	return stripes
}
