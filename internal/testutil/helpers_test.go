package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder collects failure output instead of failing the enclosing test.
type recorder struct {
	failed bool
	output string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
	r.output += fmt.Sprintf(format, args...)
}

func TestHelpers_ReportCallerMessage(t *testing.T) {
	tests := []struct {
		name   string
		assert func(r *recorder) bool
	}{
		{"no_nan", func(r *recorder) bool {
			return AssertNoNaNOrInf(r, []float64{1, math.NaN()}, "sample %s", "velocities")
		}},
		{"no_inf", func(r *recorder) bool {
			return AssertNoNaNOrInf(r, []float64{math.Inf(-1)}, "sample %s", "velocities")
		}},
		{"in_range", func(r *recorder) bool {
			return AssertAllInRange(r, []float64{0, 11}, 0, 10, "sample %s", "velocities")
		}},
		{"monotonic", func(r *recorder) bool {
			return AssertMonotonic(r, []float64{0, 2, 1}, "sample %s", "velocities")
		}},
		{"strictly_increasing", func(r *recorder) bool {
			return AssertStrictlyIncreasing(r, []float64{0, 1, 1}, "sample %s", "velocities")
		}},
		{"relative_error", func(r *recorder) bool {
			return AssertRelativeError(r, 1, 2, DefaultTolerance, "sample %s", "velocities")
		}},
		{"slices_in_delta", func(r *recorder) bool {
			return AssertSlicesInDelta(r, []float64{1, 2}, []float64{1, 3}, DefaultTolerance, "sample %s", "velocities")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			assert.False(t, tt.assert(r))
			assert.True(t, r.failed)
			assert.Contains(t, r.output, "sample velocities")
		})
	}
}

func TestHelpers_DefaultMessage(t *testing.T) {
	r := &recorder{}
	assert.False(t, AssertSlicesInDelta(r, []float64{1, 2}, []float64{1, 3}, DefaultTolerance))
	assert.Contains(t, r.output, "element 1")

	r = &recorder{}
	assert.False(t, AssertMonotonic(r, []float64{0, 2, 1}))
	assert.Contains(t, r.output, "s[2]")
}

func TestHelpers_Pass(t *testing.T) {
	r := &recorder{}
	assert.True(t, AssertNoNaNOrInf(r, []float64{0, 1}))
	assert.True(t, AssertAllInRange(r, []float64{0, 10}, 0, 10))
	assert.True(t, AssertMonotonic(r, []float64{0, 0, 1}))
	assert.True(t, AssertStrictlyIncreasing(r, []float64{0, 1, 2}))
	assert.True(t, AssertRelativeError(r, 0, 0, DefaultTolerance))
	assert.True(t, AssertSlicesInDelta(r, []float64{1}, []float64{1}, DefaultTolerance))
	assert.False(t, r.failed)
}
