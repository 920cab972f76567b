package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_MarshalBinary(t *testing.T) {
	f := NewFrame(3)
	f.SetPixel(0, red)
	f.SetPixel(1, colorful.Color{R: 0.5, G: 2, B: -1})
	f.SetPixel(2, blue)

	b, err := f.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		3, 0,
		255, 0, 0,
		128, 255, 0,
		0, 0, 255,
	}, b)
}

func TestFrame_MarshalBinaryCountIsLittleEndian(t *testing.T) {
	f := NewFrame(300)

	b, err := f.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, b, 2+300*3)
	assert.Equal(t, []byte{0x2c, 0x01}, b[:2])
}

func TestFrame_MarshalBinaryTooLarge(t *testing.T) {
	_, err := NewFrame(MaxPixels + 1).MarshalBinary()
	assert.Error(t, err)
}

func TestFrame_Blend(t *testing.T) {
	f := NewFrame(3)
	f.Fill(red)

	f.Blend(0, blue, 0)
	f.Blend(1, blue, 1)
	f.Blend(2, blue, 0.5)

	assert.Equal(t, red, f.Pixel(0))
	assert.Equal(t, blue, f.Pixel(1))
	assert.InDelta(t, 0.5, f.Pixel(2).R, 1e-9)
	assert.InDelta(t, 0.5, f.Pixel(2).B, 1e-9)
}

func TestFrame_InterpolateFrameEndpoints(t *testing.T) {
	a := NewFrame(2)
	a.Fill(red)
	b := NewFrame(2)
	b.Fill(green)

	start := a.InterpolateFrame(b, 0)
	end := a.InterpolateFrame(b, 1)
	for i := 0; i < 2; i++ {
		assert.True(t, start.Pixel(i).AlmostEqualRgb(red), "pixel %d: %v", i, start.Pixel(i))
		assert.True(t, end.Pixel(i).AlmostEqualRgb(green), "pixel %d: %v", i, end.Pixel(i))
	}
	assert.Equal(t, red, a.Pixel(0), "source frame is left alone")
}

func TestFrame_Hex(t *testing.T) {
	f := NewFrame(2)
	f.SetPixel(0, red)

	assert.Equal(t, []string{"#ff0000", "#000000"}, f.Hex())
}
