package timeline

// A Range is a closed interval of time; both ends are inclusive.
type Range [2]TimeStamp

// NewRange creates a Range from lo to hi.
func NewRange(lo, hi TimeStamp) Range {
	return Range{lo, hi}
}

// Contains reports whether ts lies within the range.
func (r Range) Contains(ts TimeStamp) bool {
	return r[0].BeforeOrEqual(ts) && ts.BeforeOrEqual(r[1])
}

// InRange reports whether ts lies within any of the ranges.
func (ts TimeStamp) InRange(ranges []Range) bool {
	for _, r := range ranges {
		if r.Contains(ts) {
			return true
		}
	}
	return false
}

// MatchesRange is like InRange except that having no ranges at all means
// always active.
func (ts TimeStamp) MatchesRange(ranges []Range) bool {
	if len(ranges) == 0 {
		return true
	}
	return ts.InRange(ranges)
}
