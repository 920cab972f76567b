package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/f64"

	"github.com/matt-g-everett/ledanim/geometry"
	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/interpolate/easing"
	"github.com/matt-g-everett/ledanim/stream/stripe"
	"github.com/matt-g-everett/ledanim/timeline"
)

// DemoScenes builds the canvases the controller cycles through. Each scene
// plays out over one cycle of the config.
func DemoScenes(config Config) []FrameSource {
	layout := config.Layout()
	fps := config.Animation.FPS
	cycle := timeline.FromFrames(uint64(config.Animation.CycleSeconds)*uint64(fps), fps)

	return []FrameSource{
		rainbowScene(config, cycle),
		shapesScene(config, layout, cycle),
		cometScene(config, layout, cycle),
		stripeScene(config, cycle),
	}
}

func rainbowScene(config Config, cycle timeline.TimeStamp) *Canvas {
	pixels := config.Strip.Pixels
	start := timeline.New(0, 0, 0)

	offset := interpolate.Linear[interpolate.Scalar](0, interpolate.Scalar(4*pixels), start, cycle)
	sparkle := interpolate.MustHex("#808080").Color

	return NewCanvas(pixels, interpolate.Constant(interpolate.MustHex("#000005"))).
		AddLayer(NewGradientTrail(RainbowGradient, max(pixels/3, 1), offset)).
		AddLayer(NewTwinkle(1, pixels, max(pixels/10, 1), sparkle))
}

func shapesScene(config Config, layout Layout, cycle timeline.TimeStamp) *Canvas {
	start := timeline.New(0, 0, 0)
	half := timeline.FromFrames(cycle.AsNumFrames(config.Animation.FPS)/2, config.Animation.FPS)

	triangle := geometry.NewPolygon(
		f64.Vec2{-0.5, 0.6},
		f64.Vec2{-0.95, -0.3},
		f64.Vec2{-0.05, -0.3},
	)
	triangleColour := interpolate.EaseInOut(
		interpolate.MustHex("#ff3333"),
		interpolate.MustHex("#33ffff"),
		start, cycle,
	)
	spin := interpolate.Linear(
		geometry.NewTransform().WithCenter(f64.Vec2{-0.5, 0}),
		geometry.NewTransform().WithCenter(f64.Vec2{-0.5, 0}).WithRotation(4*math.Pi),
		start, cycle,
	)

	hexagon := geometry.RegularPolygon(f64.Vec2{0.5, 0}, 0.45, 6, 0)
	hexagonColour := interpolate.From(interpolate.MustHex("#ff8000")).
		To(interpolate.MustHex("#8000ff")).
		Through(interpolate.MustHex("#ffff00")).
		Through(interpolate.MustHex("#ff00ff")).
		Over(start, cycle)
	pulse := interpolate.Keyframes(easing.InOut,
		interpolate.KF(start, geometry.NewTransform().WithCenter(f64.Vec2{0.5, 0}).WithUniformScale(1.0)),
		interpolate.KF(half, geometry.NewTransform().WithCenter(f64.Vec2{0.5, 0}).WithRotation(-math.Pi).WithUniformScale(0.5)),
		interpolate.KF(cycle, geometry.NewTransform().WithCenter(f64.Vec2{0.5, 0}).WithRotation(-2*math.Pi).WithUniformScale(1.0)),
	)

	return NewCanvas(config.Strip.Pixels, interpolate.Constant(interpolate.NewColour(colorful.Color{}))).
		AddLayer(NewShape(layout, triangle, triangleColour).WithTransform(spin)).
		AddLayer(NewShape(layout, hexagon, hexagonColour).WithTransform(pulse))
}

func cometScene(config Config, layout Layout, cycle timeline.TimeStamp) *Canvas {
	start := timeline.New(0, 0, 0)
	half := timeline.FromFrames(cycle.AsNumFrames(config.Animation.FPS)/2, config.Animation.FPS)

	path := interpolate.Bezier([]interpolate.Vec2{
		{-1, -1},
		{-1, 1},
		{0, -1.5},
		{1, 1},
		{1, -1},
	}, start, cycle)
	radius := interpolate.From[interpolate.Scalar](0.2).To(0.2).Through(0.6).Over(start, cycle)
	colour := interpolate.Keyframes(easing.Linear,
		interpolate.KF(start, interpolate.MustHex("#ffffff")),
		interpolate.KF(half, interpolate.MustHex("#00a0ff")),
		interpolate.KF(cycle, interpolate.MustHex("#ffffff")),
	)
	background := interpolate.Cubic(
		interpolate.MustHex("#000000"),
		interpolate.MustHex("#100010"),
		interpolate.MustHex("#100010"),
		interpolate.MustHex("#000000"),
		start, cycle,
	)
	glow := interpolate.Constant(interpolate.MustHex("#201000"))
	fade := interpolate.SamplerFunc[interpolate.Scalar](func(t timeline.TimeStamp, fps uint32) interpolate.Scalar {
		secs := float64(t.AsNumFrames(fps)) / float64(fps)
		return interpolate.Scalar(0.5 + 0.5*math.Sin(secs*math.Pi))
	})

	return NewCanvas(config.Strip.Pixels, background).
		AddLayer(NewFill(glow, fade), timeline.NewRange(start, half)).
		AddLayer(NewSpot(layout, path, radius, colour))
}

func stripeScene(config Config, cycle timeline.TimeStamp) *Canvas {
	pixels := config.Strip.Pixels
	start := timeline.New(0, 0, 0)

	palette := []colorful.Color{
		{R: 0.45, G: 0, B: 0.02},
		{R: 0.23, G: 0.04, B: 0},
		colorful.Hcl(280.0, 1.0, 0.06),
	}
	stripes := stripe.NewRandomStripeGenerator(2, palette).
		WithLengths(int32(max(pixels/4, 1)), int32(max(pixels/2, 2))).
		CreateStripes(12)
	scroll := interpolate.Linear[interpolate.Scalar](0, interpolate.Scalar(3*pixels), start, cycle)

	sparkles := []colorful.Color{
		interpolate.MustHex("#ffffff").Color,
		interpolate.MustHex("#ffd080").Color,
		interpolate.MustHex("#80d0ff").Color,
	}

	return NewCanvas(pixels, nil).
		AddLayer(NewInfinityStripe(stripes, scroll)).
		AddLayer(NewStreak(interpolate.MustHex("#ffffff").Color, uint64(config.Animation.FPS)*2, 0.5)).
		AddLayer(NewMultiTwinkle(3, pixels, max(pixels/12, 1), sparkles))
}
