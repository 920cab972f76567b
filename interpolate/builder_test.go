package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/ledanim/interpolate/easing"
)

func TestBuilder_Linear(t *testing.T) {
	in := From[Scalar](0).To(10).Over(ts(0, 0), ts(1, 0))

	assert.Equal(t, KindLinear, in.Kind())
	assert.Equal(t, easing.Linear, in.Easing())
	assert.Equal(t, Scalar(0), in.At(ts(0, 0), fps))
	assert.Equal(t, Scalar(10), in.At(ts(1, 0), fps))
	assert.InDelta(t, 5.0, float64(in.At(ts(0, 12), fps)), 1e-2)
}

func TestBuilder_WithEasing(t *testing.T) {
	in := From[Scalar](0).To(10).Ease(easing.InOut).Over(ts(0, 0), ts(1, 0))

	assert.Equal(t, KindLinear, in.Kind())
	assert.Equal(t, easing.InOut, in.Easing())

	mid := float64(in.At(ts(0, 12), fps))
	assert.True(t, mid > 4 && mid < 6)
	assert.Equal(t, Scalar(0), in.At(ts(0, 0), fps))
	assert.Equal(t, Scalar(10), in.At(ts(1, 0), fps))
}

func TestBuilder_TwoControlsUsesCubic(t *testing.T) {
	in := From[Scalar](0).To(10).Through(3).Through(7).Over(ts(0, 0), ts(1, 0))
	assert.Equal(t, KindCubic, in.Kind())

	want := Cubic[Scalar](0, 3, 7, 10, ts(0, 0), ts(1, 0))
	for frame := uint32(0); frame < uint32(fps+1); frame++ {
		assert.Equal(t, want.At(ts(0, frame), fps), in.At(ts(0, frame), fps))
	}
}

func TestBuilder_CubicIgnoresEasing(t *testing.T) {
	eased := From[Scalar](0).To(10).Ease(easing.In).Through(3).Through(7).Over(ts(0, 0), ts(1, 0))
	plain := From[Scalar](0).To(10).Through(3).Through(7).Over(ts(0, 0), ts(1, 0))

	for frame := uint32(0); frame < uint32(fps+1); frame++ {
		assert.Equal(t, plain.At(ts(0, frame), fps), eased.At(ts(0, frame), fps))
	}
}

func TestBuilder_OneControlUsesBezier(t *testing.T) {
	in := From[Scalar](0).To(10).Through(5).Over(ts(0, 0), ts(1, 0))
	assert.Equal(t, KindBezier, in.Kind())

	assert.InDelta(t, 0.0, float64(in.At(ts(0, 0), fps)), 1e-2)
	assert.InDelta(t, 10.0, float64(in.At(ts(1, 0), fps)), 1e-2)

	mid := float64(in.At(ts(0, 12), fps))
	assert.True(t, mid > 4 && mid < 6)
}

func TestBuilder_ThreeControlsUsesBezier(t *testing.T) {
	in := From[Scalar](0).To(10).Through(2).Through(5).Through(8).Over(ts(0, 0), ts(1, 0))
	assert.Equal(t, KindBezier, in.Kind())

	want := Bezier([]Scalar{0, 2, 5, 8, 10}, ts(0, 0), ts(1, 0))
	for frame := uint32(0); frame < uint32(fps+1); frame++ {
		assert.Equal(t, want.At(ts(0, frame), fps), in.At(ts(0, frame), fps))
	}
}

func TestBuilder_Colours(t *testing.T) {
	in := From(Vec4{1, 0, 0, 1}).
		To(Vec4{0, 0, 1, 1}).
		Through(Vec4{1, 0.5, 0, 1}).
		Through(Vec4{0.5, 0, 1, 1}).
		Over(ts(0, 0), ts(1, 0))

	assert.Equal(t, Vec4{1, 0, 0, 1}, in.At(ts(0, 0), fps))
	assert.Equal(t, Vec4{0, 0, 1, 1}, in.At(ts(1, 0), fps))

	mid := in.At(ts(0, 12), fps)
	assert.Greater(t, mid[0], 0.0)
	assert.Greater(t, mid[2], 0.0)
}

func TestBuilder_StagesDoNotShareControls(t *testing.T) {
	base := From[Scalar](0).To(10).Through(2)
	a := base.Through(4).Over(ts(0, 0), ts(1, 0))
	b := base.Through(8).Over(ts(0, 0), ts(1, 0))

	assert.Equal(t, Cubic[Scalar](0, 2, 4, 10, ts(0, 0), ts(1, 0)), a)
	assert.Equal(t, Cubic[Scalar](0, 2, 8, 10, ts(0, 0), ts(1, 0)), b)
}
