package trajectory

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-trajectory/internal/augment"
	"github.com/tphakala/go-trajectory/internal/fit"
	"github.com/tphakala/go-trajectory/internal/timing"
)

// Config holds trajectory generation settings.
type Config struct {
	// MaxSpeed is the speed bound passed to ComputeRefTime, in m/s.
	// It is also the bound checked by Trajectory.CheckLimits.
	MaxSpeed float64

	// MaxAccel is the acceleration bound checked by Trajectory.CheckLimits.
	// Zero disables the check.
	MaxAccel float64

	// MaxJerk is the jerk bound checked by Trajectory.CheckLimits.
	// Zero disables the check.
	MaxJerk float64

	// SampleFreq is the rate in Hz at which the fitted curve is sampled.
	SampleFreq float64

	// Order is the number of zero derivative slots appended to boundary points.
	Order int

	// Depth is the width, in indices, of the boundary zone at each end.
	Depth int

	// Method selects the curve fitting backend.
	Method Method

	// Duration overrides the computed traversal time when positive.
	Duration float64

	// Samples overrides the sample count derived from SampleFreq when positive.
	Samples int
}

// ControlPoint is a waypoint, optionally paired with fixed derivatives.
type ControlPoint = augment.ControlPoint

// Kind discriminates the forms of a ControlPoint.
type Kind = augment.Kind

// ControlPoint kinds.
const (
	KindScalar      = augment.KindScalar
	KindDerivatives = augment.KindDerivatives
)

// Method selects the curve fitting backend.
type Method = fit.Method

// Fit methods.
const (
	MethodHermite        = fit.MethodHermite
	MethodClamped        = fit.MethodClamped
	MethodNatural        = fit.MethodNatural
	MethodNotAKnot       = fit.MethodNotAKnot
	MethodAkima          = fit.MethodAkima
	MethodFritschButland = fit.MethodFritschButland
	MethodLinear         = fit.MethodLinear
)

// Common errors returned by the generator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = augment.ErrInvalidConfig

	// ErrDomain indicates a value outside the domain of the duration formula,
	// such as a zero speed bound.
	ErrDomain = timing.ErrDomain

	// ErrInvalidInput indicates waypoints or grids that cannot be fitted.
	ErrInvalidInput = fit.ErrInvalidInput

	// ErrTooFewWaypoints indicates fewer than two waypoints.
	ErrTooFewWaypoints = errors.New("too few waypoints")

	// ErrDegenerateDuration indicates a zero traversal time.
	ErrDegenerateDuration = errors.New("degenerate trajectory duration")

	// ErrLimitExceeded indicates a sampled trajectory exceeds a motion bound.
	ErrLimitExceeded = errors.New("motion limit exceeded")
)

// DefaultConfig returns the default limits with order 1, depth 1 and
// Hermite fitting.
func DefaultConfig() *Config {
	return &Config{
		MaxSpeed:   DefaultMaxSpeed,
		MaxAccel:   DefaultMaxAccel,
		MaxJerk:    DefaultMaxJerk,
		SampleFreq: DefaultSampleFreq,
		Order:      DefaultOrder,
		Depth:      DefaultDepth,
		Method:     MethodHermite,
	}
}

// ParseMethod maps a name such as "hermite" or "not-a-knot" to a Method.
func ParseMethod(name string) (Method, error) {
	return fit.ParseMethod(name)
}

// Validate checks if the configuration is valid.
//
// MaxSpeed is not checked; ComputeRefTime reports a zero or negative bound
// as ErrDomain when the duration is derived.
func (c *Config) Validate() error {
	if c.Order < 0 {
		return fmt.Errorf("%w: order must be non-negative", ErrInvalidConfig)
	}

	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be at least 1", ErrInvalidConfig)
	}

	if !c.Method.Valid() {
		return fmt.Errorf("%w: unknown fit method %v", ErrInvalidConfig, c.Method)
	}

	if !finiteNonNegative(c.MaxAccel) || !finiteNonNegative(c.MaxJerk) {
		return fmt.Errorf("%w: acceleration and jerk bounds must be finite and non-negative", ErrInvalidConfig)
	}

	if !finiteNonNegative(c.Duration) {
		return fmt.Errorf("%w: duration must be finite and non-negative", ErrInvalidConfig)
	}

	if c.Samples < 0 {
		return fmt.Errorf("%w: samples must be non-negative", ErrInvalidConfig)
	}

	if c.Samples == 0 && !(c.SampleFreq > 0 && !math.IsInf(c.SampleFreq, 0)) {
		return fmt.Errorf("%w: sample frequency must be positive", ErrInvalidConfig)
	}

	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
