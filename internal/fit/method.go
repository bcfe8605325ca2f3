package fit

import (
	"fmt"
	"strings"
)

// Method selects the interpolation backend.
type Method int

const (
	// MethodHermite fits a piecewise cubic Hermite curve. Pinned control points
	// supply their first derivative; free points get an estimated slope.
	MethodHermite Method = iota

	// MethodClamped fits a cubic spline with zero slope at both ends.
	MethodClamped

	// MethodNatural fits a cubic spline with zero curvature at both ends.
	MethodNatural

	// MethodNotAKnot fits a cubic spline with not-a-knot end conditions.
	MethodNotAKnot

	// MethodAkima fits an Akima spline, which limits overshoot near outliers.
	MethodAkima

	// MethodFritschButland fits a monotone piecewise cubic.
	MethodFritschButland

	// MethodLinear joins the waypoints with straight segments.
	MethodLinear
)

var methodNames = map[Method]string{
	MethodHermite:        "hermite",
	MethodClamped:        "clamped",
	MethodNatural:        "natural",
	MethodNotAKnot:       "not-a-knot",
	MethodAkima:          "akima",
	MethodFritschButland: "fritsch-butland",
	MethodLinear:         "linear",
}

// Minimum knot counts accepted per method.
const (
	minKnotsHermite  = 2
	minKnotsLinear   = 2
	minKnotsCubic    = 3
	minKnotsNotAKnot = 4
)

// String returns the method name accepted by ParseMethod.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a name such as "hermite" or "akima" to a Method.
// Matching is case-insensitive and treats '_' like '-'.
func ParseMethod(name string) (Method, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for m, n := range methodNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown fit method %q", ErrInvalidInput, name)
}

// MinKnots returns the fewest knots m can fit.
func (m Method) MinKnots() int {
	switch m {
	case MethodHermite:
		return minKnotsHermite
	case MethodLinear:
		return minKnotsLinear
	case MethodNotAKnot:
		return minKnotsNotAKnot
	default:
		return minKnotsCubic
	}
}

// Valid reports whether m names a known method.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}
