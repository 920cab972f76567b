package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/ledanim/timeline"
)

func lit(f *Frame) []int {
	var out []int
	for i := 0; i < f.Len(); i++ {
		if f.Pixel(i) != black {
			out = append(out, i)
		}
	}
	return out
}

func TestCalibration_Patterns(t *testing.T) {
	c := NewCalibration(8, 2)
	require.Equal(t, 4, c.Patterns())

	tests := []struct {
		frame uint64
		bit   int
		lit   []int
	}{
		{0, 3, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{1, 3, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{2, 2, []int{0, 1, 2, 3}},
		{4, 1, []int{0, 1, 4, 5}},
		{6, 0, []int{0, 2, 4, 6}},
		{8, 3, []int{0, 1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		at := timeline.FromFrames(tt.frame, fps)
		assert.Equal(t, tt.bit, c.Bit(at, fps), "frame %d", tt.frame)
		assert.Equal(t, tt.lit, lit(c.CalculateFrame(at, fps)), "frame %d", tt.frame)
	}
}

func TestCalibration_PatternsCoverEveryPixel(t *testing.T) {
	assert.Equal(t, 2, NewCalibration(1, 1).Patterns())
	assert.Equal(t, 2, NewCalibration(2, 1).Patterns())
	assert.Equal(t, 10, NewCalibration(500, 1).Patterns())
	assert.Equal(t, 10, NewCalibration(512, 1).Patterns())
	assert.Equal(t, 11, NewCalibration(513, 1).Patterns())

	for _, n := range []int{1, 2, 7, 8, 9, 100} {
		c := NewCalibration(n, 1)
		counts := make([]int, n)
		codes := make(map[string]int)
		code := make([][]byte, n)
		for p := 0; p < c.Patterns(); p++ {
			on := make([]bool, n)
			for _, i := range lit(c.CalculateFrame(timeline.FromFrames(uint64(p), fps), fps)) {
				on[i] = true
				counts[i]++
			}
			for i := range on {
				if on[i] {
					code[i] = append(code[i], '1')
				} else {
					code[i] = append(code[i], '0')
				}
			}
		}
		for i := range counts {
			assert.Positive(t, counts[i], "%d pixels: pixel %d is dark in every pattern", n, i)
			codes[string(code[i])]++
		}
		assert.Len(t, codes, n, "%d pixels: every pixel has its own sequence", n)
	}
}

func TestCalibrator_StartsPassWhenAsked(t *testing.T) {
	animation := &recordingSource{numPixels: 8, colour: blue}
	s := NewStreamer(streamerConfig(), animation, &fakePublisher{}, discardLogger())
	c := NewCalibrator(s, NewCalibration(8, 1), discardLogger())

	for i := 0; i < 5; i++ {
		require.NoError(t, s.SendFrame())
	}

	require.NoError(t, c.HandleMessage([]byte(`{"type":"start"}`)))
	require.NoError(t, s.SendFrame())
	f, at := s.LastFrame()
	assert.Equal(t, timeline.New(0, 0, 5), at, "the stream clock keeps running")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, lit(f), "a pass opens with the reference")

	require.NoError(t, s.SendFrame())
	f, _ = s.LastFrame()
	assert.Equal(t, []int{0, 1, 2, 3}, lit(f), "then the most significant bit")
	assert.Len(t, animation.Times(), 5)

	require.NoError(t, c.HandleMessage([]byte(`{"type":"stop"}`)))
	require.NoError(t, s.SendFrame())
	f, at = s.LastFrame()
	assert.Equal(t, blue, f.Pixel(0))
	assert.Equal(t, at, animation.Times()[5], "the animation resumes on the stream clock")
}

func TestCalibrator_RestartBeginsNewPass(t *testing.T) {
	s := NewStreamer(streamerConfig(), solid(8, blue), &fakePublisher{}, discardLogger())
	c := NewCalibrator(s, NewCalibration(8, 1), discardLogger())

	require.NoError(t, c.HandleMessage([]byte(`{"type":"start"}`)))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.SendFrame())
	}
	require.NoError(t, c.HandleMessage([]byte(`{"type":"start"}`)))
	require.NoError(t, s.SendFrame())

	f, _ := s.LastFrame()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, lit(f))
}

func TestCalibrator_BadMessages(t *testing.T) {
	s := NewStreamer(streamerConfig(), solid(1, red), &fakePublisher{}, discardLogger())
	c := NewCalibrator(s, NewCalibration(1, 1), discardLogger())

	assert.Error(t, c.HandleMessage([]byte(`{"type":"dance"}`)))
	assert.Error(t, c.HandleMessage([]byte(`not json`)))
}

func TestConfig_Calibration(t *testing.T) {
	c := DefaultConfig()
	c.Strip.Pixels = 16

	cal := c.Calibration()
	assert.Equal(t, 5, cal.Patterns())
	assert.Equal(t, 4, cal.Bit(timeline.New(0, 0, 5), c.Animation.FPS), "0.2s at 30fps is 6 frames")
	assert.Equal(t, 3, cal.Bit(timeline.New(0, 0, 6), c.Animation.FPS))
}
