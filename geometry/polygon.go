package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
)

// A Polygon is a closed outline through its corners; the last corner joins
// back to the first.
type Polygon struct {
	Corners []f64.Vec2
}

// NewPolygon creates a polygon from its corners.
func NewPolygon(corners ...f64.Vec2) Polygon {
	return Polygon{Corners: corners}
}

// RegularPolygon creates a polygon with sides corners evenly spaced on a
// circle of the given radius, the first at angle phase.
func RegularPolygon(center f64.Vec2, radius float64, sides int, phase float64) Polygon {
	corners := make([]f64.Vec2, sides)
	for i := range corners {
		th := phase + 2*math.Pi*float64(i)/float64(sides)
		sin, cos := math.Sincos(th)
		corners[i] = f64.Vec2{center[0] + radius*cos, center[1] + radius*sin}
	}
	return Polygon{Corners: corners}
}

// Transformed returns a copy of the polygon with tr applied to every corner.
func (p Polygon) Transformed(tr Transform) Polygon {
	m := tr.Affine()
	corners := make([]f64.Vec2, len(p.Corners))
	for i, c := range p.Corners {
		corners[i] = apply(m, c)
	}
	return Polygon{Corners: corners}
}

// Winding returns the winding number of the outline around pt. Points on a
// lower or left edge count as inside; points on an upper or right edge do not.
func (p Polygon) Winding(pt f64.Vec2) int {
	n := len(p.Corners)
	if n < 3 {
		return 0
	}

	w := 0
	for i := 0; i < n; i++ {
		w += edgeWinding(p.Corners[i], p.Corners[(i+1)%n], pt)
	}
	return w
}

// Contains reports whether pt is inside the polygon under the non-zero rule.
func (p Polygon) Contains(pt f64.Vec2) bool {
	return p.Winding(pt) != 0
}

func edgeWinding(start, end, pt f64.Vec2) int {
	var sign int
	if end[1] > start[1] {
		if pt[1] < start[1] || pt[1] >= end[1] {
			return 0
		}
		sign = -1
	} else if end[1] < start[1] {
		if pt[1] < end[1] || pt[1] >= start[1] {
			return 0
		}
		sign = 1
	} else {
		return 0
	}

	if pt[0] < min(start[0], end[0]) {
		return 0
	}
	if pt[0] >= max(start[0], end[0]) {
		return sign
	}

	// line equation ax + by = c
	a := end[1] - start[1]
	b := start[0] - end[0]
	c := a*start[0] + b*start[1]
	if (a*pt[0]+b*pt[1]-c)*float64(sign) <= 0 {
		return sign
	}
	return 0
}
