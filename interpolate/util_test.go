package interpolate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matt-g-everett/ledanim/timeline"
)

const fps = 24

func ts(second, frame uint32) timeline.TimeStamp {
	return timeline.New(0, second, frame)
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-4)
