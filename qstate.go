package trrbench

import "math"

// Two-qubit density matrix engine.
//
// The probe circuits are tiny (two qubits, a handful of channels), so
// instead of Monte Carlo trajectories we evolve the exact 4x4 density
// matrix and sample shots from its diagonal. Basis ordering is
// |q0 q1>, index = 2*q0 + q1, matching the probe's "q0q1" bitstrings.

type gate1q [2][2]complex128

type densityMatrix [4][4]complex128

var (
	hadamard = gate1q{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}
	pauliX = gate1q{
		{0, 1},
		{1, 0},
	}
	pauliY = gate1q{
		{0, complex(0, -1)},
		{complex(0, 1), 0},
	}
	pauliZ = gate1q{
		{1, 0},
		{0, -1},
	}
)

// newGroundState returns rho = |00><00|.
func newGroundState() densityMatrix {
	var rho densityMatrix
	rho[0][0] = 1
	return rho
}

// expand1q lifts a single-qubit operator to the two-qubit space by
// tensoring with identity on the other qubit.
func expand1q(g gate1q, qubit int) [4][4]complex128 {
	var u [4][4]complex128
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var bi, bj, oi, oj int
			if qubit == 0 {
				bi, bj = i>>1, j>>1 // acted bit
				oi, oj = i&1, j&1   // spectator bit
			} else {
				bi, bj = i&1, j&1
				oi, oj = i>>1, j>>1
			}
			if oi == oj {
				u[i][j] = g[bi][bj]
			}
		}
	}
	return u
}

func matMul(a, b [4][4]complex128) [4][4]complex128 {
	var c [4][4]complex128
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < 4; j++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return c
}

func dagger(a [4][4]complex128) [4][4]complex128 {
	var d [4][4]complex128
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			re := real(a[j][i])
			im := imag(a[j][i])
			d[i][j] = complex(re, -im)
		}
	}
	return d
}

// applyGate conjugates rho by a single-qubit unitary: rho = U rho U†.
func (rho *densityMatrix) applyGate(g gate1q, qubit int) {
	u := expand1q(g, qubit)
	res := matMul(matMul(u, [4][4]complex128(*rho)), dagger(u))
	*rho = densityMatrix(res)
}

// applyCNOT applies CNOT with q0 as control and q1 as target. As a
// basis permutation (|10> <-> |11>) this is a row/column swap of
// indices 2 and 3.
func (rho *densityMatrix) applyCNOT() {
	for j := 0; j < 4; j++ {
		rho[2][j], rho[3][j] = rho[3][j], rho[2][j]
	}
	for i := 0; i < 4; i++ {
		rho[i][2], rho[i][3] = rho[i][3], rho[i][2]
	}
}

// applyKraus applies a single-qubit channel {K_i} to the given qubit:
// rho = sum_i K_i rho K_i†.
func (rho *densityMatrix) applyKraus(ops []gate1q, qubit int) {
	var sum [4][4]complex128
	for _, k := range ops {
		u := expand1q(k, qubit)
		term := matMul(matMul(u, [4][4]complex128(*rho)), dagger(u))
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				sum[i][j] += term[i][j]
			}
		}
	}
	*rho = densityMatrix(sum)
}

// depolarizeKraus builds the symmetric depolarizing channel of
// strength p: identity with weight 1-p, each Pauli with weight p/3.
func depolarizeKraus(p float64) []gate1q {
	scale := func(g gate1q, s float64) gate1q {
		var out gate1q
		c := complex(s, 0)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				out[i][j] = c * g[i][j]
			}
		}
		return out
	}
	id := gate1q{{1, 0}, {0, 1}}
	return []gate1q{
		scale(id, math.Sqrt(1.0-p)),
		scale(pauliX, math.Sqrt(p/3.0)),
		scale(pauliY, math.Sqrt(p/3.0)),
		scale(pauliZ, math.Sqrt(p/3.0)),
	}
}

// phaseDampKraus builds the phase-damping channel of strength gamma:
// K0 = diag(1, sqrt(1-gamma)), K1 = diag(0, sqrt(gamma)).
func phaseDampKraus(gamma float64) []gate1q {
	return []gate1q{
		{{1, 0}, {0, complex(math.Sqrt(1.0-gamma), 0)}},
		{{0, 0}, {0, complex(math.Sqrt(gamma), 0)}},
	}
}

// outcomeProbs extracts the measurement distribution over the four
// computational-basis outcomes. Rounding can leave the diagonal a hair
// off a proper distribution, so negatives are floored and the vector
// renormalized.
func (rho *densityMatrix) outcomeProbs() [4]float64 {
	var probs [4]float64
	sum := 0.0
	for i := 0; i < 4; i++ {
		p := real(rho[i][i])
		if p < 0 {
			p = 0
		}
		probs[i] = p
		sum += p
	}
	if sum > 0 {
		for i := range probs {
			probs[i] /= sum
		}
	}
	return probs
}
