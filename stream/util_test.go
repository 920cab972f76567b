package stream

import (
	"io"
	"log/slog"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledanim/interpolate"
	"github.com/matt-g-everett/ledanim/timeline"
)

const fps = 10

var (
	red   = colorful.Color{R: 1}
	green = colorful.Color{G: 1}
	blue  = colorful.Color{B: 1}
	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func solid(numPixels int, c colorful.Color) *Canvas {
	return NewCanvas(numPixels, interpolate.Constant(interpolate.NewColour(c)))
}

// recordingSource fills frames with one colour and remembers the times it was
// asked for.
type recordingSource struct {
	numPixels int
	colour    colorful.Color

	mu    sync.Mutex
	times []timeline.TimeStamp
}

func (s *recordingSource) CalculateFrame(t timeline.TimeStamp, fps uint32) *Frame {
	s.mu.Lock()
	s.times = append(s.times, t)
	s.mu.Unlock()

	f := NewFrame(s.numPixels)
	f.Fill(s.colour)
	return f
}

func (s *recordingSource) Times() []timeline.TimeStamp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]timeline.TimeStamp(nil), s.times...)
}

type published struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	err     error
	onPub   func(n int)
	mu      sync.Mutex
	history []published
}

func (p *fakePublisher) Publish(topic string, payload []byte) error {
	p.mu.Lock()
	p.history = append(p.history, published{topic, payload})
	n := len(p.history)
	p.mu.Unlock()

	if p.onPub != nil {
		p.onPub(n)
	}
	return p.err
}

func (p *fakePublisher) History() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.history...)
}

// setPixel is an Animation that paints a single pixel.
type setPixel struct {
	index  int
	colour colorful.Color
}

func (a setPixel) Draw(f *Frame, _ timeline.TimeStamp, _ uint32) {
	f.SetPixel(a.index, a.colour)
}
