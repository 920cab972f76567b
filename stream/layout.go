package stream

import (
	"golang.org/x/image/math/f64"
)

// Point that represents LED location
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Layout holds the location of every LED, indexed by pixel.
type Layout []f64.Vec2

// GridLayout places pixels row by row on a grid with the given number of
// columns, scaled to fit [-1, 1] on both axes. Rows alternate direction the
// way a single strip is snaked across a panel.
func GridLayout(pixels, columns int) Layout {
	if columns <= 0 || columns > pixels {
		columns = pixels
	}
	rows := (pixels + columns - 1) / columns

	l := make(Layout, pixels)
	for i := range l {
		row, col := i/columns, i%columns
		if row%2 == 1 {
			col = columns - 1 - col
		}
		l[i] = f64.Vec2{normalise(col, columns), normalise(row, rows)}
	}
	return l
}

// PointLayout converts configured points into a Layout.
func PointLayout(points []Point) Layout {
	l := make(Layout, len(points))
	for i, p := range points {
		l[i] = f64.Vec2{p.X, p.Y}
	}
	return l
}

func normalise(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return -1 + 2*float64(i)/float64(n-1)
}
