package trrbench

import "math"

// DefaultCoherenceThreshold is the coherence time below which the escape
// score gains its step contribution.
const DefaultCoherenceThreshold = 1e-6

// Detuning holds the derived frequency-shift quantities.
type Detuning struct {
	DeltaNu float64 // Cumulative frequency shift (Hz)
	NuObs   float64 // Observed frequency after the cascade (Hz)
	Z       float64 // Dimensionless redshift, (nu_emit - nu_obs) / nu_emit
}

// ComputeDetuning derives the frequency shift, observed frequency and
// redshift z from the cascaded modulation:
//
//	delta_nu = n_cycles * f_mod
//	nu_obs   = nu_emit - delta_nu
//	z        = (nu_emit - nu_obs) / nu_emit
//
// z is deliberately unclamped: negative z is a blueshift, and z > 1
// means the cascade overshot the emission frequency.
func ComputeDetuning(p Params) Detuning {
	deltaNu := float64(p.NCycles) * p.FMod
	nuObs := p.NuEmit - deltaNu
	return Detuning{
		DeltaNu: deltaNu,
		NuObs:   nuObs,
		Z:       (p.NuEmit - nuObs) / p.NuEmit,
	}
}

// CouplingEfficiency computes the trap coupling efficiency eta_c from
// the power ratio under exponential propagation loss:
//
//	nc = clip((P_trap / P_in) * exp(-alpha_loss * L_eff), 0, 1)
//
// Non-positive input power is defined as zero coupling, never a
// division by zero.
func CouplingEfficiency(p Params) float64 {
	if p.PIn <= 0 {
		return 0.0
	}
	nc := (p.PTrap / p.PIn) * math.Exp(-p.AlphaLoss*p.LEff)
	return clip(nc, 0.0, 1.0)
}

// CoherenceTime derives the effective coherence time T_c from the three
// combined noise sources, normalized by the emission frequency:
//
//	sigma_total = sqrt(sigma_laser^2 + sigma_mod^2 + sigma_trap^2)
//	T_c         = baseline / (1 + sigma_total / max(nu_emit, 1))
//
// The result is floored at zero.
func CoherenceTime(p Params) float64 {
	sigmaTotal := math.Sqrt(p.SigmaLaser*p.SigmaLaser +
		p.SigmaMod*p.SigmaMod +
		p.SigmaTrap*p.SigmaTrap)
	norm := math.Max(p.NuEmit, 1.0)
	tc := p.CoherenceBaseline / (1.0 + sigmaTotal/norm)
	return math.Max(tc, 0.0)
}

// EscapeProbability models the photon escape probability from the trap.
// The raw score combines redshift, coupling loss and a step contribution
// when coherence collapses below threshold, squashed through a logistic:
//
//	score  = 2z + (1 - nc) + step(Tc < threshold)
//	escape = 1 / (1 + exp(-5 * (score - 1)))
//
// Monotonically non-decreasing in z and in (1 - nc). Pass
// DefaultCoherenceThreshold unless the trap defines its own.
func EscapeProbability(z, nc, tc, threshold float64) float64 {
	score := 2.0*z + (1.0 - nc)
	if tc < threshold {
		score += 1.0
	}
	return 1.0 / (1.0 + math.Exp(-5.0*(score-1.0)))
}

// clip bounds v to [lo, hi]. Probability-like outputs are clipped at the
// point of computation, never left to the caller.
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
