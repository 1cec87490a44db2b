package trrbench

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProbeBackendSelection(t *testing.T) {
	backend, err := NewProbeBackend(BackendChannel)
	require.NoError(t, err)
	assert.Equal(t, BackendChannel, backend.Name())

	backend, err = NewProbeBackend("")
	require.NoError(t, err)
	assert.Equal(t, BackendChannel, backend.Name(), "empty name selects the default backend")

	backend, err = NewProbeBackend(BackendDepolarizing)
	require.NoError(t, err)
	assert.Equal(t, BackendDepolarizing, backend.Name())
}

func TestNewProbeBackendUnavailable(t *testing.T) {
	for _, name := range []string{BackendNone, "qiskit", "cirq"} {
		backend, err := NewProbeBackend(name)
		assert.Nil(t, backend, "name %q", name)
		assert.ErrorIs(t, err, ErrBackendUnavailable, "name %q", name)
		// Must stay distinct from input validation failures.
		assert.NotErrorIs(t, err, ErrInvalidInput, "name %q", name)
	}
}

func TestProbeInvalidShots(t *testing.T) {
	for _, name := range []string{BackendChannel, BackendDepolarizing} {
		backend, err := NewProbeBackend(name)
		require.NoError(t, err)

		for _, shots := range []int{0, -1, -4096} {
			_, err := backend.Run(1e-3, 0.013, 0.54, shots, rand.NewPCG(1, 1))
			assert.ErrorIs(t, err, ErrInvalidInput, "%s with %d shots", name, shots)
		}
	}
}

func TestProbeNilSource(t *testing.T) {
	backend, err := NewProbeBackend(BackendChannel)
	require.NoError(t, err)

	_, err = backend.Run(1e-3, 0.013, 0.54, 1024, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProbeHistogramInvariants(t *testing.T) {
	const shots = 4096

	for _, name := range []string{BackendChannel, BackendDepolarizing} {
		backend, err := NewProbeBackend(name)
		require.NoError(t, err)

		res, err := backend.Run(1e-3, 0.013, 0.54, shots, rand.NewPCG(11, 11))
		require.NoError(t, err)

		AssertHistogramTotal(t, res.Counts, shots)
		AssertProbability(t, name+" fidelity proxy", res.FidelityProxy)

		correlated := res.Counts["00"] + res.Counts["11"]
		assert.InDelta(t, float64(correlated)/shots, res.FidelityProxy, 1e-12,
			"%s: fidelity must be the correlated fraction", name)

		assert.GreaterOrEqual(t, res.DepErr, 0.0)
		assert.LessOrEqual(t, res.DepErr, 0.9)
		assert.GreaterOrEqual(t, res.SecondaryErr, 0.0)
		assert.LessOrEqual(t, res.SecondaryErr, 0.9)
	}
}

func TestProbeDeterminism(t *testing.T) {
	for _, name := range []string{BackendChannel, BackendDepolarizing} {
		backend, err := NewProbeBackend(name)
		require.NoError(t, err)

		a, err := backend.Run(1e-3, 0.013, 0.54, 2048, rand.NewPCG(42, 42))
		require.NoError(t, err)
		b, err := backend.Run(1e-3, 0.013, 0.54, 2048, rand.NewPCG(42, 42))
		require.NoError(t, err)

		assert.Equal(t, a.Counts, b.Counts, "%s: fixed seed must reproduce the histogram", name)
		assert.Equal(t, a.FidelityProxy, b.FidelityProxy, "%s", name)
	}
}

func TestProbeNoiseDegradesFidelity(t *testing.T) {
	const shots = 8192

	for _, name := range []string{BackendChannel, BackendDepolarizing} {
		backend, err := NewProbeBackend(name)
		require.NoError(t, err)

		clean, err := backend.Run(1e-3, 0.0, 1.0, shots, rand.NewPCG(5, 5))
		require.NoError(t, err)
		noisy, err := backend.Run(1e-3, 3.0, 0.0, shots, rand.NewPCG(5, 5))
		require.NoError(t, err)

		// Clean trap: only the floor error, the Bell pair dominates.
		assert.Greater(t, clean.FidelityProxy, 0.9, "%s clean fidelity", name)
		// Past the wall with no coupling: channels saturate at the cap.
		assert.Equal(t, 0.9, noisy.DepErr, "%s saturated dep error", name)
		assert.Less(t, noisy.FidelityProxy, clean.FidelityProxy-0.2,
			"%s: saturated noise must crush the correlated fraction", name)
	}
}

func TestProbeNoiseParameterDerivation(t *testing.T) {
	// Channel backend coefficients: 0.02 + 0.30z + 0.20(1-nc).
	assert.InDelta(t, 0.02+0.30*0.013+0.20*(1-0.54),
		depolarizingMagnitude(0.013, 0.54, 0.30, 0.20), 1e-12)
	// Depolarizing backend coefficients: 0.02 + 0.35z + 0.25(1-nc).
	assert.InDelta(t, 0.02+0.35*0.013+0.25*(1-0.54),
		depolarizingMagnitude(0.013, 0.54, 0.35, 0.25), 1e-12)

	// Phase damping at the reference coherence time: 0.02 + 0.50 + 0.
	assert.InDelta(t, 0.52, phaseDampingMagnitude(1e-3, 1.0), 1e-12)
	// Collapsed coherence saturates at the cap instead of diverging.
	assert.Equal(t, 0.9, phaseDampingMagnitude(0.0, 1.0))
	assert.Equal(t, 0.9, phaseDampingMagnitude(1e-300, 1.0))
}
