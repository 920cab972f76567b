package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledanim/interpolate/easing"
	"github.com/matt-g-everett/ledanim/timeline"
)

// A Streak is an Animation that sends streaks along the strip that fade in
// then out. A new streak starts every interval frames.
type Streak struct {
	colour   colorful.Color
	interval uint64
	speed    float64
	length   float64
	gainRate float64
}

// NewStreak creates an instance of a Streak object. speed is in pixels per
// frame.
func NewStreak(colour colorful.Color, interval uint64, speed float64) *Streak {
	s := new(Streak)
	s.colour = colour
	s.interval = max(interval, 1)
	s.speed = speed
	s.length = 10
	s.gainRate = 0.05
	return s
}

// lifetime is the number of frames a streak stays lit.
func (s *Streak) lifetime() uint64 {
	return uint64(2 / (s.gainRate * math.Abs(s.speed)))
}

// overallGain fades the streak in over its first half and out over the
// second.
func (s *Streak) overallGain(easeDistance float64) float64 {
	if easeDistance > 2 {
		return 0
	} else if easeDistance > 1 {
		easeDistance = 1 - (easeDistance - 1)
	}

	return easing.InOut.Ease(easeDistance)
}

func (s *Streak) addStreak(f *Frame, age uint64) {
	current := s.speed * float64(age)
	gain := s.overallGain(math.Abs(current) * s.gainRate)
	start := max(int(math.Ceil(current)), 0)
	end := min(int(math.Floor(current+s.length)), f.Len()-1)
	for i := start; i <= end; i++ {
		f.Blend(i, s.colour, gain)
	}
}

// Draw implements Animation.
func (s *Streak) Draw(f *Frame, t timeline.TimeStamp, fps uint32) {
	if s.speed == 0 {
		return
	}

	frame := t.AsNumFrames(fps)
	lifetime := s.lifetime()
	for launch := frame - frame%s.interval; frame-launch <= lifetime; launch -= s.interval {
		s.addStreak(f, frame-launch)
		if launch < s.interval {
			break
		}
	}
}
