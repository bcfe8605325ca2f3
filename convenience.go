package trajectory

import (
	"github.com/tphakala/go-trajectory/internal/augment"
	"github.com/tphakala/go-trajectory/internal/timing"
)

// ComputeRefTime returns sum |points[i] - points[i+1]/maxSpeed| over
// consecutive pairs.
//
// The speed bound divides only the second term of each pair, so the result
// is not displacement over speed. Sequences of fewer than two points return
// 0. A zero maxSpeed returns an error wrapping ErrDomain rather than Inf or
// NaN; non-finite bounds are rejected the same way.
//
// A negative maxSpeed is also rejected with ErrDomain. Earlier tooling
// evaluated the formula for negative bounds; this function only accepts a
// positive speed bound.
func ComputeRefTime(points []float64, maxSpeed float64) (float64, error) {
	return timing.RefTime(points, maxSpeed)
}

// ComputeRefTimeFloat32 is like ComputeRefTime but for float32 waypoints.
func ComputeRefTimeFloat32(points []float32, maxSpeed float32) (float32, error) {
	return timing.RefTime(points, maxSpeed)
}

// AppendDerivatives returns one control point per waypoint. Index j is a
// boundary point when j-depth+1 <= 0 or j+depth-1 >= len(points)-1; boundary
// points become [p, 0, ..., 0] with order zeros and the rest stay scalars.
//
// depth must be at least 1 and order non-negative, otherwise the error wraps
// ErrInvalidConfig.
func AppendDerivatives(points []float64, order, depth int) ([]ControlPoint, error) {
	return augment.Append(points, order, depth)
}

// ControlValues returns the value of every control point, which reproduces
// the waypoints the points were built from.
func ControlValues(points []ControlPoint) []float64 {
	return augment.Values(points)
}

// FormatControlPoints renders points as "[[0 0] [2 0] 1 4 [2 0] [0 0]]".
func FormatControlPoints(points []ControlPoint) string {
	return augment.Format(points)
}

// Scalar returns an unconstrained control point.
func Scalar(v float64) ControlPoint {
	return augment.Scalar(v)
}

// Derivatives returns a control point pinned to v with order zero derivatives.
func Derivatives(v float64, order int) ControlPoint {
	return augment.Derivatives(v, order)
}

// Generate is a convenience function for one-shot generation.
// A nil config uses DefaultConfig.
func Generate(waypoints []float64, config *Config) (*Trajectory, error) {
	if config == nil {
		config = DefaultConfig()
	}

	g, err := New(config)
	if err != nil {
		return nil, err
	}
	return g.Generate(waypoints)
}

// Sample is a convenience function returning only the sampled positions.
func Sample(waypoints []float64, config *Config) ([]float64, error) {
	traj, err := Generate(waypoints, config)
	if err != nil {
		return nil, err
	}
	return traj.Positions, nil
}

// SampleFloat32 is like Sample but converts the positions to float32.
func SampleFloat32(waypoints []float32, config *Config) ([]float32, error) {
	input64 := make([]float64, len(waypoints))
	for i, v := range waypoints {
		input64[i] = float64(v)
	}

	traj, err := Generate(input64, config)
	if err != nil {
		return nil, err
	}
	return traj.PositionsFloat32(), nil
}
