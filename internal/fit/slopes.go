package fit

import "github.com/tphakala/go-trajectory/internal/augment"

// resolveSlopes returns one first derivative per knot. A pinned control
// point supplies its own; a free interior point gets the spacing-weighted
// average of its neighbouring secants and a free end gets the one-sided
// secant. Derivative slots past the first are not used by cubic backends.
func resolveSlopes(xs, ys []float64, controls []augment.ControlPoint) []float64 {
	n := len(xs)
	secants := make([]float64, n-1)
	for i := range secants {
		secants[i] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}

	slopes := make([]float64, n)
	for i, p := range controls {
		if p.Pinned() {
			slopes[i] = p.Derivatives()[0]
			continue
		}
		switch i {
		case 0:
			slopes[i] = secants[0]
		case n - 1:
			slopes[i] = secants[n-2]
		default:
			hl, hr := xs[i]-xs[i-1], xs[i+1]-xs[i]
			slopes[i] = (hr*secants[i-1] + hl*secants[i]) / (hl + hr)
		}
	}
	return slopes
}
