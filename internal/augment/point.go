// Package augment builds derivative-augmented control points for
// Hermite-style curve fits.
package augment

import (
	"strconv"
	"strings"
)

// Kind discriminates the two forms a ControlPoint can take.
type Kind uint8

const (
	// KindScalar is a bare value with free derivatives.
	KindScalar Kind = iota

	// KindDerivatives is a value followed by fixed derivative constraints.
	KindDerivatives
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindDerivatives:
		return "derivatives"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ControlPoint is either a bare scalar or a vector [value, d1, ..., dOrder].
// The zero value is the scalar 0.
type ControlPoint struct {
	kind   Kind
	value  float64
	derivs []float64
}

// Scalar returns an unconstrained control point.
func Scalar(v float64) ControlPoint {
	return ControlPoint{kind: KindScalar, value: v}
}

// Derivatives returns a control point pinned to v with order derivative
// slots, all zero. A negative order is treated as zero.
func Derivatives(v float64, order int) ControlPoint {
	if order < 0 {
		order = 0
	}
	return ControlPoint{kind: KindDerivatives, value: v, derivs: make([]float64, order)}
}

// Kind returns the variant tag.
func (p ControlPoint) Kind() Kind {
	return p.kind
}

// Value returns the scalar, or element 0 of the vector.
func (p ControlPoint) Value() float64 {
	return p.value
}

// Derivatives returns a copy of the derivative slots (elements 1..order).
// It is empty for scalars and for vectors of order 0.
func (p ControlPoint) Derivatives() []float64 {
	out := make([]float64, len(p.derivs))
	copy(out, p.derivs)
	return out
}

// Pinned reports whether a first derivative is constrained.
func (p ControlPoint) Pinned() bool {
	return p.kind == KindDerivatives && len(p.derivs) > 0
}

// Len returns the number of reals carried: 1 for a scalar, order+1 for a vector.
func (p ControlPoint) Len() int {
	return 1 + len(p.derivs)
}

// Values returns the full vector. A scalar projects to the one-element vector
// [value], which is numerically the same as a wrapped interior point.
func (p ControlPoint) Values() []float64 {
	out := make([]float64, 0, p.Len())
	out = append(out, p.value)
	return append(out, p.derivs...)
}

// String formats a scalar as its value and a vector as "[v d1 ...]".
func (p ControlPoint) String() string {
	if p.kind == KindScalar {
		return formatFloat(p.value)
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p.Values() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatFloat(v))
	}
	b.WriteByte(']')
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
