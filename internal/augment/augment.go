package augment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig indicates an order or depth outside the accepted range.
var ErrInvalidConfig = errors.New("invalid configuration")

// IsBoundary reports whether index j of a sequence of length n falls within
// depth indices of either end.
func IsBoundary(j, n, depth int) bool {
	return j-depth+1 <= 0 || j+depth-1 >= n-1
}

// Append returns one control point per waypoint. Points in the boundary zone
// become [p, 0, ..., 0] with order zero slots; interior points stay bare
// scalars so the fit is free to choose their slopes.
//
// The result has the same length as points. depth must be at least 1 and
// order must be non-negative.
func Append(points []float64, order, depth int) ([]ControlPoint, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: order must be non-negative, got %d", ErrInvalidConfig, order)
	}
	if depth <= 0 {
		return nil, fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidConfig, depth)
	}

	n := len(points)
	out := make([]ControlPoint, n)
	for j, p := range points {
		if IsBoundary(j, n, depth) {
			out[j] = Derivatives(p, order)
		} else {
			out[j] = Scalar(p)
		}
	}
	return out, nil
}

// Values extracts the value of every control point.
func Values(points []ControlPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value()
	}
	return out
}

// Format renders a sequence as "[[0 0] [2 0] 1 4 [2 0] [0 0]]".
func Format(points []ControlPoint) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
