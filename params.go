package trrbench

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks parameter or argument validation failures.
// Callers can match it with errors.Is.
var ErrInvalidInput = errors.New("trrbench: invalid input")

// Params is the immutable TRR trap parameter set. Construct it once per
// run and treat it as read-only; every derivation takes it by value.
type Params struct {
	NuEmit    float64 // Emission frequency (Hz), must be > 0
	FMod      float64 // Modulation frequency (Hz)
	NCycles   int     // Number of cascaded modulation cycles
	PIn       float64 // Input power (W)
	PTrap     float64 // Trap power (W)
	AlphaLoss float64 // Loss coefficient (m^-1)
	LEff      float64 // Effective trap length (m)

	SigmaLaser float64 // Laser frequency noise (Hz)
	SigmaMod   float64 // Modulation noise (Hz)
	SigmaTrap  float64 // Trap position noise (Hz)

	CoherenceBaseline float64 // Baseline coherence time (s)
}

// DefaultParams returns the reference TRR trap configuration:
// 780 nm near-IR emission, 5 GHz modulation over 1000 cascaded cycles,
// 10 mW in / 6 mW trapped, 1 ms baseline coherence.
func DefaultParams() Params {
	return Params{
		NuEmit:            3.84e14,
		FMod:              5e9,
		NCycles:           1000,
		PIn:               0.01,
		PTrap:             0.006,
		AlphaLoss:         2.0,
		LEff:              0.05,
		SigmaLaser:        1e6,
		SigmaMod:          2e9,
		SigmaTrap:         5e8,
		CoherenceBaseline: 1e-3,
	}
}

// Validate rejects parameter sets that would propagate NaN or negative
// results through the formula layer. Non-positive input power is NOT an
// error: CouplingEfficiency defines it as zero coupling.
func (p Params) Validate() error {
	if p.NuEmit <= 0 {
		return fmt.Errorf("%w: emission frequency must be > 0 Hz, got %g", ErrInvalidInput, p.NuEmit)
	}
	if p.NCycles < 0 {
		return fmt.Errorf("%w: cycle count must be non-negative, got %d", ErrInvalidInput, p.NCycles)
	}
	if p.SigmaLaser < 0 || p.SigmaMod < 0 || p.SigmaTrap < 0 {
		return fmt.Errorf("%w: noise magnitudes must be non-negative, got (%g, %g, %g)",
			ErrInvalidInput, p.SigmaLaser, p.SigmaMod, p.SigmaTrap)
	}
	if p.CoherenceBaseline < 0 {
		return fmt.Errorf("%w: baseline coherence time must be non-negative, got %g",
			ErrInvalidInput, p.CoherenceBaseline)
	}
	return nil
}
