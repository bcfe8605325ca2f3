// Package timing derives the traversal duration of a waypoint sequence.
package timing

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-trajectory/internal/simdops"
)

// ErrDomain indicates an input outside the domain of the duration formula.
var ErrDomain = errors.New("domain error")

// RefTime returns the reference traversal time of points under maxSpeed:
//
//	sum over i of |points[i] - points[i+1]/maxSpeed|
//
// Only the second term of each pair is divided by maxSpeed. This is not
// distance/speed; the expression is kept literally so that durations match
// trajectories generated by earlier tooling. Callers that need a physical
// time bound must not rely on it.
//
// Sequences shorter than two points have zero duration. A zero, NaN or
// infinite maxSpeed is rejected with ErrDomain. A negative maxSpeed is
// rejected too, although earlier tooling evaluated the formula for it.
func RefTime[F simdops.Float](points []F, maxSpeed F) (F, error) {
	speed := float64(maxSpeed)
	switch {
	case speed == 0:
		return 0, fmt.Errorf("%w: division by zero max speed", ErrDomain)
	case math.IsNaN(speed) || math.IsInf(speed, 0):
		return 0, fmt.Errorf("%w: max speed %v is not finite", ErrDomain, speed)
	case speed < 0:
		return 0, fmt.Errorf("%w: max speed %v is negative", ErrDomain, speed)
	}

	if len(points) < 2 {
		return 0, nil
	}

	ops := simdops.For[F]()
	terms := make([]F, len(points)-1)
	ops.Scale(terms, points[1:], 1/maxSpeed)
	for i := range terms {
		terms[i] = abs(points[i] - terms[i])
	}

	return ops.Sum(terms), nil
}

func abs[F simdops.Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}
