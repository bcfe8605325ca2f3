// Package mathutil provides grid and reduction helpers for trajectory sampling.
package mathutil

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument indicates a grid parameter outside its valid range.
var ErrInvalidArgument = errors.New("invalid argument")

// SampleCount returns ceil(freq * duration), the number of samples needed to
// cover duration seconds at freq Hz.
func SampleCount(freq, duration float64) (int, error) {
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq < 0 {
		return 0, fmt.Errorf("%w: sample frequency %v", ErrInvalidArgument, freq)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, fmt.Errorf("%w: duration %v", ErrInvalidArgument, duration)
	}

	n := math.Ceil(freq * duration)
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v samples exceeds limit", ErrInvalidArgument, n)
	}
	return int(n), nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 0 yields an empty slice and n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n < minSpanPoints {
		return []float64{start}
	}

	out := floats.Span(make([]float64, n), start, stop)
	out[n-1] = stop
	return out
}

// MaxAbs returns the largest absolute value in s, or 0 for an empty slice.
func MaxAbs(s []float64) float64 {
	var peak float64
	for _, v := range s {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
