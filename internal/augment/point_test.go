package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlPoint_ZeroValue(t *testing.T) {
	var p ControlPoint
	assert.Equal(t, KindScalar, p.Kind())
	assert.Zero(t, p.Value())
	assert.Equal(t, 1, p.Len())
}

func TestControlPoint_DerivativesCopy(t *testing.T) {
	p := Derivatives(3.5, 2)
	d := p.Derivatives()
	d[0] = 99

	assert.Equal(t, []float64{0, 0}, p.Derivatives(), "caller must not mutate the point")
	assert.True(t, p.Pinned())
	assert.Equal(t, "[3.5 0 0]", p.String())
}

func TestControlPoint_NegativeOrder(t *testing.T) {
	p := Derivatives(1, -3)
	assert.Equal(t, KindDerivatives, p.Kind())
	assert.Equal(t, []float64{1}, p.Values())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "derivatives", KindDerivatives.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
