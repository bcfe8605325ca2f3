package trajectory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig(`
[trajectory]
maxspeed = 3.5
sampleFreq = 50
order = 2
depth = 2
method = not-a-knot
`)
	require.NoError(t, err)

	assert.Equal(t, 3.5, c.MaxSpeed)
	assert.Equal(t, 50.0, c.SampleFreq)
	assert.Equal(t, 2, c.Order)
	assert.Equal(t, 2, c.Depth)
	assert.Equal(t, MethodNotAKnot, c.Method)

	// Unset keys keep their defaults.
	assert.Equal(t, DefaultMaxAccel, c.MaxAccel)
	assert.Equal(t, DefaultMaxJerk, c.MaxJerk)
	assert.Zero(t, c.Duration)
}

func TestParseConfig_Empty(t *testing.T) {
	c, err := ParseConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"unknown_method", "[trajectory]\nmethod = bezier\n", ErrInvalidConfig},
		{"invalid_depth", "[trajectory]\ndepth = 0\n", ErrInvalidConfig},
		{"negative_order", "[trajectory]\norder = -1\n", ErrInvalidConfig},
		{"unknown_key", "[trajectory]\nspeed = 3\n", nil},
		{"bad_number", "[trajectory]\nmaxspeed = fast\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseConfig(tt.text)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			assert.Nil(t, c)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectory.ini")
	err := os.WriteFile(path, []byte("[Trajectory]\nDuration = 12\nSamples = 30\nMethod = akima\n"), 0o644)
	require.NoError(t, err)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, c.Duration)
	assert.Equal(t, 30, c.Samples)
	assert.Equal(t, MethodAkima, c.Method)

	traj, err := Generate(demoPoints, c)
	require.NoError(t, err)
	assert.Len(t, traj.Times, 30)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/trajectory.ini")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}
