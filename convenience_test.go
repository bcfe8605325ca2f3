package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-trajectory/internal/testutil"
)

func TestComputeRefTime(t *testing.T) {
	got, err := ComputeRefTime([]float64{0, 2, 8}, DefaultMaxSpeed)
	require.NoError(t, err)
	assert.InDelta(t, 1.1429, got, 1e-4)

	got, err = ComputeRefTime([]float64{5}, DefaultMaxSpeed)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = ComputeRefTime([]float64{0, 2, 8}, 0)
	require.ErrorIs(t, err, ErrDomain)

	_, err = ComputeRefTime([]float64{0, 2, 8}, -DefaultMaxSpeed)
	require.ErrorIs(t, err, ErrDomain)
}

// TestComputeRefTime_LiteralFormula documents that the speed bound divides
// only the second waypoint of each pair.
func TestComputeRefTime_LiteralFormula(t *testing.T) {
	got, err := ComputeRefTime(routePoints, DefaultMaxSpeed)
	require.NoError(t, err)
	testutil.AssertRelativeError(t, routeDuration, got, testutil.DefaultTolerance)

	var distance float64
	for i := 1; i < len(routePoints); i++ {
		d := routePoints[i] - routePoints[i-1]
		if d < 0 {
			d = -d
		}
		distance += d
	}
	assert.NotEqual(t, distance/DefaultMaxSpeed, got)
}

func TestComputeRefTimeFloat32(t *testing.T) {
	got, err := ComputeRefTimeFloat32([]float32{0, 2, 8}, DefaultMaxSpeed)
	require.NoError(t, err)
	assert.InDelta(t, 1.142857, float64(got), 1e-6)
}

func TestAppendDerivatives(t *testing.T) {
	got, err := AppendDerivatives(demoPoints, 1, 2)
	require.NoError(t, err)

	want := []ControlPoint{
		Derivatives(0, 1), Derivatives(2, 1), Scalar(1), Scalar(4), Derivatives(2, 1), Derivatives(0, 1),
	}
	assert.Equal(t, want, got)
	assert.Equal(t, demoPoints, ControlValues(got))
}

func TestAppendDerivatives_Properties(t *testing.T) {
	for order := 0; order <= 3; order++ {
		for depth := 1; depth <= len(routePoints)+1; depth++ {
			got, err := AppendDerivatives(routePoints, order, depth)
			require.NoError(t, err)
			require.Len(t, got, len(routePoints))
			assert.Equal(t, routePoints, ControlValues(got))

			for i, p := range got {
				if p.Kind() == KindDerivatives {
					assert.Equal(t, order+1, p.Len(), "order=%d depth=%d index %d", order, depth, i)
				}
				if depth >= len(routePoints) {
					assert.Equal(t, KindDerivatives, p.Kind(), "depth=%d index %d", depth, i)
				}
			}
		}
	}
}

func TestAppendDerivatives_Invalid(t *testing.T) {
	_, err := AppendDerivatives(demoPoints, 1, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = AppendDerivatives(demoPoints, -1, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSample(t *testing.T) {
	got, err := Sample(demoPoints, demoConfig())
	require.NoError(t, err)
	assert.Len(t, got, demoSamples)
	testutil.AssertNoNaNOrInf(t, got)
	assert.InDelta(t, demoPoints[len(demoPoints)-1], got[len(got)-1], testutil.KnotTolerance)
}

func TestSampleFloat32(t *testing.T) {
	got, err := SampleFloat32([]float32{0, 2, 1, 4, 2, 0}, demoConfig())
	require.NoError(t, err)
	assert.Len(t, got, demoSamples)

	_, err = SampleFloat32([]float32{1}, nil)
	require.ErrorIs(t, err, ErrTooFewWaypoints)
}
