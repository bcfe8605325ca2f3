package trajectory

import (
	"fmt"
	"math"

	"github.com/tphakala/go-trajectory/internal/augment"
	"github.com/tphakala/go-trajectory/internal/fit"
	"github.com/tphakala/go-trajectory/internal/mathutil"
	"github.com/tphakala/simd/cpu"
)

// Generator turns waypoint sequences into sampled trajectories.
type Generator struct {
	config Config
}

// Trajectory is a fitted and sampled reference trajectory.
type Trajectory struct {
	// Duration is the traversal time in seconds.
	Duration float64

	// Waypoints is a copy of the input sequence.
	Waypoints []float64

	// KnotTimes holds the time assigned to each waypoint.
	KnotTimes []float64

	// Controls holds the augmented control points handed to the fit.
	Controls []ControlPoint

	// Times is the sample grid.
	Times []float64

	// Positions and Velocities are the fitted curve and its derivative at Times.
	Positions  []float64
	Velocities []float64

	curve fit.Curve
}

// Info describes a generator's configuration.
type Info struct {
	// Method is the fit backend name.
	Method string

	// Order and Depth are the augmentation parameters.
	Order int
	Depth int

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// New creates a generator with the given configuration.
// The configuration is copied; later changes to config have no effect.
func New(config *Config) (*Generator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Generator{config: *config}, nil
}

// Config returns a copy of the generator configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Info returns information about the generator.
func (g *Generator) Info() Info {
	return Info{
		Method:   g.config.Method.String(),
		Order:    g.config.Order,
		Depth:    g.config.Depth,
		SIMDType: cpu.Info(),
	}
}

// Generate fits and samples a trajectory through waypoints.
func (g *Generator) Generate(waypoints []float64) (*Trajectory, error) {
	if len(waypoints) < minWaypoints {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewWaypoints, len(waypoints), minWaypoints)
	}
	for i, p := range waypoints {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: waypoint %d is not finite", ErrInvalidInput, i)
		}
	}

	duration, err := g.duration(waypoints)
	if err != nil {
		return nil, err
	}

	samples := g.config.Samples
	if samples == 0 {
		samples, err = mathutil.SampleCount(g.config.SampleFreq, duration)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	controls, err := augment.Append(waypoints, g.config.Order, g.config.Depth)
	if err != nil {
		return nil, err
	}

	knots := mathutil.Linspace(0, duration, len(waypoints))
	curve, err := fit.Fit(g.config.Method, knots, controls)
	if err != nil {
		return nil, fmt.Errorf("failed to fit curve: %w", err)
	}

	times := mathutil.Linspace(0, duration, samples)
	velocities := make([]float64, len(times))
	for i, t := range times {
		velocities[i] = curve.Derivative(t)
	}

	traj := &Trajectory{
		Duration:   duration,
		Waypoints:  append([]float64(nil), waypoints...),
		KnotTimes:  knots,
		Controls:   controls,
		Times:      times,
		Positions:  curve.EvalAll(times),
		Velocities: velocities,
		curve:      curve,
	}
	return traj, nil
}

func (g *Generator) duration(waypoints []float64) (float64, error) {
	if g.config.Duration > 0 {
		return g.config.Duration, nil
	}

	duration, err := ComputeRefTime(waypoints, g.config.MaxSpeed)
	if err != nil {
		return 0, fmt.Errorf("failed to compute duration: %w", err)
	}
	if duration == 0 {
		return 0, fmt.Errorf("%w: waypoints yield zero traversal time", ErrDegenerateDuration)
	}
	return duration, nil
}

// At returns the position at time t, clamped to [0, Duration].
func (tr *Trajectory) At(t float64) float64 {
	return tr.curve.Eval(t)
}

// VelocityAt returns the velocity at time t, clamped to [0, Duration].
func (tr *Trajectory) VelocityAt(t float64) float64 {
	return tr.curve.Derivative(t)
}

// Method returns the fit method that produced the trajectory.
func (tr *Trajectory) Method() Method {
	return tr.curve.Method()
}

// PositionsFloat32 returns Positions converted to float32.
func (tr *Trajectory) PositionsFloat32() []float32 {
	out := make([]float32, len(tr.Positions))
	for i, v := range tr.Positions {
		out[i] = float32(v)
	}
	return out
}
