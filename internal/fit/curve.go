// Package fit fits interpolating curves through augmented control points.
// The numerical work is done by gonum's interp package; this package
// validates input, resolves derivative constraints and exposes a small
// evaluation surface.
package fit

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tphakala/go-trajectory/internal/augment"
	"gonum.org/v1/gonum/interp"
)

// ErrInvalidInput indicates knots or control points the backend cannot fit.
var ErrInvalidInput = errors.New("invalid fit input")

// Curve is a fitted 1-D curve over the closed knot range.
type Curve interface {
	// Eval returns the curve value at t. t outside the knot range is clamped.
	Eval(t float64) float64

	// Derivative returns the first derivative at t, clamped like Eval.
	Derivative(t float64) float64

	// EvalAll evaluates the curve at each ts[i]. If out is given, out[0] is
	// reused when it has the right length.
	EvalAll(ts []float64, out ...[]float64) []float64

	// Method returns the backend that produced the curve.
	Method() Method

	// Knots returns the first and last knot times.
	Knots() (start, end float64)

	// Peaks returns the largest |second derivative| and |third derivative|
	// over the knot range, excluding the impulses at knots where a lower
	// derivative is discontinuous.
	Peaks() (accel, jerk float64)
}

// predictor is the evaluation surface shared by the gonum interpolators.
type predictor interface {
	Predict(x float64) float64
	PredictDerivative(x float64) float64
}

type curve struct {
	method     Method
	predictor  predictor
	xs, ys     []float64
	start, end float64
}

var _ Curve = (*curve)(nil)

// Fit fits a curve of the given method through controls placed at knots.
// knots must be finite and strictly increasing, with one knot per control.
func Fit(method Method, knots []float64, controls []augment.ControlPoint) (Curve, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown method %d", ErrInvalidInput, int(method))
	}
	if len(knots) != len(controls) {
		return nil, fmt.Errorf("%w: %d knots for %d control points", ErrInvalidInput, len(knots), len(controls))
	}
	if len(knots) < method.MinKnots() {
		return nil, fmt.Errorf("%w: %s needs at least %d knots, got %d",
			ErrInvalidInput, method, method.MinKnots(), len(knots))
	}
	if err := checkKnots(knots); err != nil {
		return nil, err
	}

	xs := make([]float64, len(knots))
	copy(xs, knots)
	ys := augment.Values(controls)
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("%w: control point %d is not finite", ErrInvalidInput, i)
		}
	}

	p, err := newPredictor(method, xs, ys, controls)
	if err != nil {
		return nil, fmt.Errorf("%s fit: %w", method, err)
	}

	return &curve{
		method:    method,
		predictor: p,
		xs:        xs,
		ys:        ys,
		start:     xs[0],
		end:       xs[len(xs)-1],
	}, nil
}

func newPredictor(method Method, xs, ys []float64, controls []augment.ControlPoint) (predictor, error) {
	switch method {
	case MethodHermite:
		var pc interp.PiecewiseCubic
		pc.FitWithDerivatives(xs, ys, resolveSlopes(xs, ys, controls))
		return &pc, nil
	case MethodLinear:
		lin := &linear{xs: xs, ys: ys}
		if err := lin.pl.Fit(xs, ys); err != nil {
			return nil, err
		}
		return lin, nil
	}

	var f interface {
		interp.Fitter
		predictor
	}
	switch method {
	case MethodClamped:
		f = &interp.ClampedCubic{}
	case MethodNatural:
		f = &interp.NaturalCubic{}
	case MethodNotAKnot:
		f = &interp.NotAKnotCubic{}
	case MethodAkima:
		f = &interp.AkimaSpline{}
	case MethodFritschButland:
		f = &interp.FritschButland{}
	default:
		return nil, fmt.Errorf("%w: unknown method %d", ErrInvalidInput, int(method))
	}
	if err := f.Fit(xs, ys); err != nil {
		return nil, err
	}
	return f, nil
}

func checkKnots(knots []float64) error {
	for i, x := range knots {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: knot %d is not finite", ErrInvalidInput, i)
		}
		if i > 0 && x <= knots[i-1] {
			return fmt.Errorf("%w: knots not strictly increasing at index %d (%v <= %v)",
				ErrInvalidInput, i, x, knots[i-1])
		}
	}
	return nil
}

func (c *curve) clamp(t float64) float64 {
	return math.Max(c.start, math.Min(c.end, t))
}

func (c *curve) Eval(t float64) float64 {
	return c.predictor.Predict(c.clamp(t))
}

func (c *curve) Derivative(t float64) float64 {
	return c.predictor.PredictDerivative(c.clamp(t))
}

func (c *curve) EvalAll(ts []float64, out ...[]float64) []float64 {
	var dst []float64
	if len(out) > 0 && len(out[0]) == len(ts) {
		dst = out[0]
	} else {
		dst = make([]float64, len(ts))
	}
	for i, t := range ts {
		dst[i] = c.Eval(t)
	}
	return dst
}

func (c *curve) Method() Method {
	return c.method
}

func (c *curve) Knots() (start, end float64) {
	return c.start, c.end
}

// Peaks rebuilds each segment as the cubic through its end values and end
// slopes. Every backend except linear is at least C1, so the slope at an
// interior knot is shared by both neighbouring segments. Within a segment
// the second derivative is linear and the third is constant.
func (c *curve) Peaks() (accel, jerk float64) {
	if c.method == MethodLinear {
		return 0, 0
	}

	d0 := c.predictor.PredictDerivative(c.xs[0])
	for i := 0; i < len(c.xs)-1; i++ {
		d1 := c.predictor.PredictDerivative(c.xs[i+1])
		a0, a1, j := segmentPeaks(c.xs[i+1]-c.xs[i], c.ys[i+1]-c.ys[i], d0, d1)
		accel = max(accel, math.Abs(a0), math.Abs(a1))
		jerk = max(jerk, math.Abs(j))
		d0 = d1
	}
	return accel, jerk
}

// segmentPeaks returns the second derivative at both ends and the constant
// third derivative of the cubic on [0, h] that rises by dy with end slopes
// d0 and d1.
func segmentPeaks(h, dy, d0, d1 float64) (a0, a1, jerk float64) {
	secant := dy / h
	c2 := (3*secant - 2*d0 - d1) / h
	c3 := (d0 + d1 - 2*secant) / (h * h)
	return 2 * c2, 2*c2 + 6*c3*h, 6 * c3
}

// linear adds a derivative to gonum's piecewise linear interpolator.
type linear struct {
	pl     interp.PiecewiseLinear
	xs, ys []float64
}

func (l *linear) Predict(x float64) float64 {
	return l.pl.Predict(x)
}

// PredictDerivative returns the slope of the segment containing x. At an
// interior knot the slope of the following segment is used.
func (l *linear) PredictDerivative(x float64) float64 {
	i := sort.SearchFloat64s(l.xs, x)
	if i < len(l.xs) && l.xs[i] == x {
		i++
	}
	i = max(1, min(i, len(l.xs)-1))
	return (l.ys[i] - l.ys[i-1]) / (l.xs[i] - l.xs[i-1])
}
