package physics

import (
	"strings"
	"testing"

	"github.com/holoterm/holoterm/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProjectile(t *testing.T) {
	lines, err := Compute("projectile", []string{"20", "45"})
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "Range: 40.77 m", lines[0])
	assert.Equal(t, "Max height: 10.19 m", lines[1])
	assert.Equal(t, "Flight time: 2.88 s", lines[2])
}

func TestComputeForce(t *testing.T) {
	lines, err := Compute("force", []string{"10", "9.81"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Force: 98.1 N"}, lines)
}

func TestComputeEnergy(t *testing.T) {
	lines, err := Compute("energy", []string{"2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Kinetic energy: 9 J"}, lines)
}

func TestComputePendulum(t *testing.T) {
	lines, err := Compute("pendulum", []string{"1"})
	require.NoError(t, err)
	// T = 2*pi*sqrt(1/9.81) ~ 2.006 s
	assert.Equal(t, []string{"Period: 2.01 s"}, lines)
}

func TestComputeUnknownFormula(t *testing.T) {
	_, err := Compute("flux-capacitor", []string{"1.21"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestComputeArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too few args", []string{"20"}},
		{"too many args", []string{"20", "45", "99"}},
		{"non numeric", []string{"fast", "45"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute("projectile", tt.args)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeUsage))
			assert.Contains(t, err.Error(), "physics projectile")
		})
	}
}

func TestComputeDegenerateInputs(t *testing.T) {
	lines, err := Compute("ohm", []string{"12", "0"})
	require.NoError(t, err)
	assert.Contains(t, lines[0], "undefined")
}

func TestDirectoryListsEveryFormula(t *testing.T) {
	dir := strings.Join(Directory(), "\n")
	for _, name := range Names() {
		assert.Contains(t, dir, name)
	}
}
