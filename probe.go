package trrbench

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Backend names accepted by NewProbeBackend.
const (
	// BackendChannel is the detailed backend: depolarizing plus a
	// coherence-driven phase-damping channel.
	BackendChannel = "channel"

	// BackendDepolarizing is the simplified backend: depolarizing only,
	// applied symmetrically to both qubits.
	BackendDepolarizing = "depolarizing"

	// BackendNone disables sampling entirely; selection reports
	// ErrBackendUnavailable so callers run formula-only.
	BackendNone = "none"
)

const (
	channelErrorFloor = 0.02 // Baseline error magnitude shared by all channels
	channelErrorCeil  = 0.9  // Hard cap on any channel magnitude

	phaseTcRef       = 1e-3  // Reference coherence time for phase damping (s)
	minCoherenceTime = 1e-12 // Floor on the Tc denominator (NumericDegenerate guard)
)

// ErrBackendUnavailable reports that the requested sampling backend is
// not present. It is a recoverable condition distinct from any empty or
// zero result: callers fall back to formula-only operation.
var ErrBackendUnavailable = errors.New("trrbench: probe backend unavailable")

// ProbeResult is the reduced outcome of one noise-probe run.
type ProbeResult struct {
	// Counts maps each two-bit outcome ("00".."11") to its sampled
	// count. All four keys are always present and the counts sum
	// exactly to the requested shot count.
	Counts map[string]int

	// FidelityProxy is (Counts["00"] + Counts["11"]) / shots: the
	// sampled fraction of correlated outcomes. In [0,1].
	FidelityProxy float64

	// DepErr is the derived depolarizing channel magnitude, in [0, 0.9].
	DepErr float64

	// SecondaryErr is the backend's second channel magnitude: the
	// phase-damping gamma for the channel backend, DepErr again for the
	// depolarizing backend. In [0, 0.9].
	SecondaryErr float64
}

// ProbeBackend samples the two-qubit entangling circuit under a noise
// model derived from (Tc, z, nc). Implementations must be deterministic
// for a fixed src: a fixed seed reproduces the histogram exactly.
type ProbeBackend interface {
	Name() string
	Run(tc, z, nc float64, shots int, src rand.Source) (ProbeResult, error)
}

// NewProbeBackend resolves a backend by configured name. The empty name
// selects the channel backend. Unknown names and BackendNone report
// ErrBackendUnavailable.
func NewProbeBackend(name string) (ProbeBackend, error) {
	switch name {
	case "", BackendChannel:
		return channelBackend{}, nil
	case BackendDepolarizing:
		return depolarizingBackend{}, nil
	case BackendNone:
		return nil, fmt.Errorf("%w: sampling disabled by configuration", ErrBackendUnavailable)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrBackendUnavailable, name)
	}
}

// depolarizingMagnitude derives the depolarizing error from redshift
// and coupling loss: clip(0.02 + k1*z + k2*(1-nc), 0, 0.9).
func depolarizingMagnitude(z, nc, k1, k2 float64) float64 {
	return clip(channelErrorFloor+k1*z+k2*(1.0-nc), 0.0, channelErrorCeil)
}

// phaseDampingMagnitude derives the phase-damping gamma. It grows as
// coherence time collapses relative to phaseTcRef; the denominator is
// floored so a degenerate Tc of zero cannot propagate infinity.
func phaseDampingMagnitude(tc, nc float64) float64 {
	denom := tc
	if denom < minCoherenceTime {
		denom = minCoherenceTime
	}
	return clip(channelErrorFloor+0.50*(phaseTcRef/denom)+0.10*(1.0-nc), 0.0, channelErrorCeil)
}

// probeArgsValid rejects degenerate sampling requests before any state
// is built.
func probeArgsValid(shots int, src rand.Source) error {
	if shots <= 0 {
		return fmt.Errorf("%w: shot count must be positive, got %d", ErrInvalidInput, shots)
	}
	if src == nil {
		return fmt.Errorf("%w: nil random source (pass an explicit seeded generator)", ErrInvalidInput)
	}
	return nil
}

var outcomeLabels = [4]string{"00", "01", "10", "11"}

// sampleOutcomes draws shots independent outcomes from the exact
// circuit distribution and reduces them to a histogram.
func sampleOutcomes(probs [4]float64, shots int, src rand.Source) map[string]int {
	rng := rand.New(src)
	counts := map[string]int{"00": 0, "01": 0, "10": 0, "11": 0}
	for s := 0; s < shots; s++ {
		u := rng.Float64()
		acc := 0.0
		idx := 3 // float round-off lands on the last bin
		for i, p := range probs {
			acc += p
			if u < acc {
				idx = i
				break
			}
		}
		counts[outcomeLabels[idx]]++
	}
	return counts
}

// reduceResult packages a sampled histogram into a ProbeResult.
func reduceResult(counts map[string]int, shots int, depErr, secondaryErr float64) ProbeResult {
	correlated := counts["00"] + counts["11"]
	return ProbeResult{
		Counts:        counts,
		FidelityProxy: clip(float64(correlated)/float64(shots), 0.0, 1.0),
		DepErr:        depErr,
		SecondaryErr:  secondaryErr,
	}
}
