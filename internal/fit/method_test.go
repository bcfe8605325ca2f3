package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for m, name := range methodNames {
		got, err := ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMethod("  Not_A_Knot ")
	require.NoError(t, err)
	assert.Equal(t, MethodNotAKnot, got)

	_, err = ParseMethod("bspline")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "hermite", MethodHermite.String())
	assert.Equal(t, "Method(99)", Method(99).String())
	assert.False(t, Method(99).Valid())
}

func TestMethod_MinKnots(t *testing.T) {
	assert.Equal(t, 2, MethodHermite.MinKnots())
	assert.Equal(t, 2, MethodLinear.MinKnots())
	assert.Equal(t, 3, MethodAkima.MinKnots())
	assert.Equal(t, 4, MethodNotAKnot.MinKnots())
}
