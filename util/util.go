package util

import (
	"sync"

	"github.com/matt-g-everett/ledanim/interpolate/easing"
)

// GenerateLut creates a look-up table that rises from 0 to 1 over the first
// half and falls back to 0 over the second, shaped by e.
func GenerateLut(length int, e easing.Function) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := e.Ease(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	if length%2 == 1 {
		lut[length/2] = e.Ease(1)
	}
	return lut
}

type lutKey struct {
	length int
	easing easing.Function
}

// Memoizer caches look-up tables so that many particles can share them. It is
// safe for concurrent use; the zero value is ready to use.
type Memoizer struct {
	mu   sync.Mutex
	luts map[lutKey][]float64
}

// GenerateLutMemoized returns the table GenerateLut would create, building it
// at most once per length and easing. Callers must not modify the result.
func GenerateLutMemoized(length int, e easing.Function, m *Memoizer) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := lutKey{length, e}
	if lut, ok := m.luts[key]; ok {
		return lut
	}
	if m.luts == nil {
		m.luts = make(map[lutKey][]float64)
	}
	lut := GenerateLut(length, e)
	m.luts[key] = lut
	return lut
}
