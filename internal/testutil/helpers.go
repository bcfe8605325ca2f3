// Package testutil provides reusable test helper functions for trajectory tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	KnotTolerance    = 1e-9
	TimeTolerance    = 1e-6
)

type tHelper interface {
	Helper()
}

func helper(t assert.TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// orDefault returns msgAndArgs, or the default message when the caller gave none.
func orDefault(msgAndArgs []any, format string, args ...any) []any {
	if len(msgAndArgs) > 0 {
		return msgAndArgs
	}
	return []any{fmt.Sprintf(format, args...)}
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	helper(t)
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t assert.TestingT, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	helper(t)
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%f is outside range [%f, %f]",
				i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	helper(t)
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonic: s[%d]=%f < s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element is larger than its predecessor.
func AssertStrictlyIncreasing(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	helper(t)
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not strictly increasing: s[%d]=%f <= s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t assert.TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	helper(t)
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance, orDefault(msgAndArgs,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)...)
}

// AssertSlicesInDelta verifies element-wise closeness of two equal-length slices.
func AssertSlicesInDelta(t assert.TestingT, expected, actual []float64, delta float64, msgAndArgs ...any) bool {
	helper(t)
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], delta, orDefault(msgAndArgs,
			"element %d: expected %f, got %f", i, expected[i], actual[i])...) {
			return false
		}
	}
	return true
}
