package interpolate

// DeCasteljau evaluates the Bezier curve defined by points at parameter t by
// repeatedly interpolating between neighbouring points until one remains.
// It only needs Lerp, so it works for any Interpolatable type. points is not
// modified. It panics with ErrNoPoints if points is empty.
func DeCasteljau[T Interpolatable[T]](points []T, t float64) T {
	if len(points) == 0 {
		panic(ErrNoPoints)
	}
	if len(points) == 1 {
		return points[0]
	}

	working := make([]T, len(points)-1)
	for i := range working {
		working[i] = points[i].Lerp(points[i+1], t)
	}
	for n := len(working) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			working[i] = working[i].Lerp(working[i+1], t)
		}
	}
	return working[0]
}
