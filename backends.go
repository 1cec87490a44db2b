package trrbench

import "math/rand/v2"

// channelBackend is the detailed noise model: a phase-damping channel
// on the control qubit driven by the Tc_ref/Tc ratio, plus depolarizing
// channels around the entangler.
//
// Circuit:
//
//	H(q0); phase_damp(q0); depol(q0); CNOT(q0,q1); depol(q0); depol(q1)
type channelBackend struct{}

func (channelBackend) Name() string { return BackendChannel }

func (channelBackend) Run(tc, z, nc float64, shots int, src rand.Source) (ProbeResult, error) {
	if err := probeArgsValid(shots, src); err != nil {
		return ProbeResult{}, err
	}

	depErr := depolarizingMagnitude(z, nc, 0.30, 0.20)
	phaseGamma := phaseDampingMagnitude(tc, nc)

	depol := depolarizeKraus(depErr)
	rho := newGroundState()
	rho.applyGate(hadamard, 0)
	rho.applyKraus(phaseDampKraus(phaseGamma), 0)
	rho.applyKraus(depol, 0)
	rho.applyCNOT()
	rho.applyKraus(depol, 0)
	rho.applyKraus(depol, 1)

	counts := sampleOutcomes(rho.outcomeProbs(), shots, src)
	return reduceResult(counts, shots, depErr, phaseGamma), nil
}

// depolarizingBackend is the simplified noise model: a single
// depolarizing magnitude (steeper coefficients), reused symmetrically
// for both qubits with no phase channel.
//
// Circuit:
//
//	H(q0); depol(q0); CNOT(q0,q1); depol(q0); depol(q1)
type depolarizingBackend struct{}

func (depolarizingBackend) Name() string { return BackendDepolarizing }

func (depolarizingBackend) Run(tc, z, nc float64, shots int, src rand.Source) (ProbeResult, error) {
	if err := probeArgsValid(shots, src); err != nil {
		return ProbeResult{}, err
	}

	depErr := depolarizingMagnitude(z, nc, 0.35, 0.25)

	depol := depolarizeKraus(depErr)
	rho := newGroundState()
	rho.applyGate(hadamard, 0)
	rho.applyKraus(depol, 0)
	rho.applyCNOT()
	rho.applyKraus(depol, 0)
	rho.applyKraus(depol, 1)

	counts := sampleOutcomes(rho.outcomeProbs(), shots, src)
	return reduceResult(counts, shots, depErr, depErr), nil
}
