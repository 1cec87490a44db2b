// Package trrbench models cascaded frequency detuning in optical traps.
//
// # Overview
//
// trrbench implements the TRR (Trap-Redshift-Replication) toy model: a
// deterministic formula layer deriving physical quantities from a trap
// parameter set, plus a stochastic noise probe that samples a two-qubit
// measurement distribution as a coherence proxy. The interesting regime
// is a single critical threshold of the derived detuning z.
//
// # Architecture
//
// The package components:
//
//   - params.go   - Input parameter set and validation
//   - physics.go  - Detuning, coupling, coherence, escape formulas
//   - fabric.go   - Fabric lock predicate and identity persistence
//   - probe.go    - Noise probe contract and backend selection
//   - backends.go - Channel-based and depolarizing probe backends
//   - qstate.go   - Two-qubit density matrix engine
//   - pairs.go    - Poisson pair-coincidence model
//   - sweep.go    - Redshift sweep runner with wall detection
//   - runlog.go   - Append-only CSV run log
//
// # Quick Start
//
// Derive the formula quantities from the default trap configuration:
//
//	p := trrbench.DefaultParams()
//	det := trrbench.ComputeDetuning(p)
//	nc := trrbench.CouplingEfficiency(p)
//	Tc := trrbench.CoherenceTime(p)
//
//	esc := trrbench.EscapeProbability(det.Z, nc, Tc, trrbench.DefaultCoherenceThreshold)
//	fmt.Printf("z = %.6f, escape = %.3f\n", det.Z, esc)
//
// Probe coherence with the sampling layer:
//
//	backend, err := trrbench.NewProbeBackend(trrbench.BackendChannel)
//	if err != nil {
//	    // ErrBackendUnavailable: fall back to formula-only results
//	}
//
//	src := rand.NewPCG(42, 42)
//	res, err := backend.Run(Tc, det.Z, nc, 4096, src)
//	fmt.Printf("fidelity proxy: %.3f\n", res.FidelityProxy)
//
// # The z=0.014 Wall
//
// At z = 0.014 the redshifted wavelength (780 nm → ~791 nm effective)
// exceeds the trap confinement size (790 nm), so the geometric ratio
// Lambda_fabric crosses 1.0 and the fabric lock engages:
//
//   - Lambda_fabric = emit_wavelength * (1+z) / trap_size
//   - Lock active iff Lambda_fabric > 1.0 (strict, no hysteresis)
//   - Identity persistence pins to the geometric constant 0.95 once
//     locked; below the lock it decays as 1 - 0.05*Lambda_fabric
//
// The pair-event model spikes at the same boundary: instability grows as
// exp(15*(z - 0.014)), so coincidence counts rise faster than linearly
// on approach and peak past the wall.
//
// # Noise Probe Backends
//
// Two interchangeable backends implement the same contract. Both prepare
// a Bell pair (H on qubit 0, then CNOT), interleave noise channels, and
// sample the joint two-bit outcome:
//
//   - "channel":      depolarizing (k1=0.30, k2=0.20) plus a
//     phase-damping channel driven by the Tc_ref/Tc ratio
//   - "depolarizing": depolarizing only (k1=0.35, k2=0.25), applied
//     symmetrically to both qubits
//
// The fidelity proxy is the sampled fraction of correlated outcomes,
// (count("00")+count("11"))/shots. It is a coherence proxy, not a
// rigorously defined fidelity.
//
// # Reproducibility
//
// The formula layer is pure and safe for concurrent use. The sampling
// layer never touches global randomness: every probe and pair call takes
// an explicit rand.Source (math/rand/v2), so a fixed PCG seed reproduces
// histograms and counts bit for bit. A sweep reuses one source across
// all points.
//
// # Testing
//
// Use the exported assertions to validate model properties:
//
//	func TestEscape(t *testing.T) {
//	    trrbench.AssertMonotoneNonDecreasing(t, "escape(z)", zs, escapes)
//	    trrbench.AssertProbability(t, "escape", escapes[0])
//	}
package trrbench
