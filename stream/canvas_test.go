package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/ledanim/timeline"
)

func TestCanvas_BackgroundAndLayers(t *testing.T) {
	c := solid(3, red).
		AddLayer(setPixel{0, green}).
		AddLayer(setPixel{0, blue})

	f := c.CalculateFrame(timeline.TimeStamp{}, fps)

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, blue, f.Pixel(0), "later layers draw on top")
	assert.Equal(t, red, f.Pixel(1))
	assert.Equal(t, red, f.Pixel(2))
	assert.Len(t, c.Layers(), 2)
}

func TestCanvas_NilBackgroundIsBlack(t *testing.T) {
	f := NewCanvas(2, nil).CalculateFrame(timeline.TimeStamp{}, fps)

	assert.Equal(t, black, f.Pixel(0))
	assert.Equal(t, black, f.Pixel(1))
}

func TestCanvas_ActiveRanges(t *testing.T) {
	c := solid(2, black).
		AddLayer(setPixel{0, green}, timeline.NewRange(timeline.New(0, 1, 0), timeline.New(0, 2, 0))).
		AddLayer(setPixel{1, blue}, timeline.NewRange(timeline.New(0, 0, 0), timeline.New(0, 0, 5)),
			timeline.NewRange(timeline.New(0, 3, 0), timeline.New(0, 4, 0)))

	tests := []struct {
		name  string
		at    timeline.TimeStamp
		first bool
		other bool
	}{
		{"start", timeline.New(0, 0, 0), false, true},
		{"between", timeline.New(0, 0, 6), false, false},
		{"first range", timeline.New(0, 1, 5), true, false},
		{"first range end", timeline.New(0, 2, 0), true, false},
		{"second interval", timeline.New(0, 3, 5), false, true},
		{"after", timeline.New(0, 5, 0), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := c.CalculateFrame(tt.at, fps)
			assert.Equal(t, tt.first, f.Pixel(0) == green)
			assert.Equal(t, tt.other, f.Pixel(1) == blue)
		})
	}
}
