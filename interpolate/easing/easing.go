// Package easing reshapes linear progress to give animations acceleration and
// deceleration.
package easing

import (
	"fmt"

	"github.com/fogleman/ease"
)

// A Function remaps progress in [0, 1] onto [0, 1]. The zero value is Linear.
type Function int

const (
	Linear Function = iota
	In
	Out
	InOut
)

// Ease applies the easing to t after clamping it to [0, 1].
func (e Function) Ease(t float64) float64 {
	t = clamp(t)
	switch e {
	case In:
		return ease.InQuad(t)
	case Out:
		return ease.OutQuad(t)
	case InOut:
		return ease.InOutQuad(t)
	default:
		return ease.Linear(t)
	}
}

func (e Function) String() string {
	switch e {
	case Linear:
		return "linear"
	case In:
		return "ease-in"
	case Out:
		return "ease-out"
	case InOut:
		return "ease-in-out"
	}
	return fmt.Sprintf("easing(%d)", int(e))
}

func clamp(t float64) float64 {
	if t < 0 {
		return 0
	} else if t > 1 {
		return 1
	}
	return t
}
