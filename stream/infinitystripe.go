package stream

import (
	"math"
	"slices"

	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/stream/stripe"
	"github.com/matt-g-everett/ledanim/timeline"
)

// An InfinityStripe is an Animation that scrolls an endless loop of stripes
// along the strip. Stripes are stretched towards the end of the strip so
// that, wound round a cone, they look level.
type InfinityStripe struct {
	stripes  []stripe.Stripe
	ends     []float64
	offset   interpolate.Sampler[interpolate.Scalar]
	adjusted bool
}

// NewInfinityStripe creates an instance of a InfinityStripe object. offset
// says how far, in pixels, the stripes have scrolled at any time.
func NewInfinityStripe(stripes []stripe.Stripe, offset interpolate.Sampler[interpolate.Scalar]) *InfinityStripe {
	s := new(InfinityStripe)
	s.offset = offset
	s.adjusted = true

	var length float64
	for _, st := range stripes {
		if st.Length <= 0 {
			continue
		}
		length += float64(st.Length)
		s.stripes = append(s.stripes, st)
		s.ends = append(s.ends, length)
	}
	return s
}

// Flat turns off the perspective stretch.
func (s *InfinityStripe) Flat() *InfinityStripe {
	s.adjusted = false
	return s
}

// Draw implements Animation.
func (s *InfinityStripe) Draw(f *Frame, t timeline.TimeStamp, fps uint32) {
	if len(s.stripes) == 0 {
		return
	}

	total := s.ends[len(s.ends)-1]
	current := float64(s.offset.At(t, fps))
	numPixels := f.Len()
	for i := 0; i < numPixels; i++ {
		adjustmentFactor := 1.0
		if s.adjusted {
			adjustmentFactor = 1.0 + 1.4*(float64(i)/float64(numPixels))
		}

		pos := math.Mod(adjustmentFactor*float64(i)+current, total)
		if pos < 0 {
			pos += total
		}
		index, found := slices.BinarySearch(s.ends, pos)
		if found {
			index++
		}
		f.SetPixel(i, s.stripes[index%len(s.stripes)].Colour)
	}
}
