package trrbench

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultWallZ is the critical redshift boundary where the photon
// wavepacket exceeds the trap confinement dimensions.
const DefaultWallZ = 0.014

// pairCountScale converts the pair probability into the Poisson mean
// for simulated detector coincidences.
const pairCountScale = 100.0

// PairResult is one sampled pair-creation event.
type PairResult struct {
	PairProb float64 // Pair-creation probability, in [0,1]
	Count    int     // Sampled coincidence count, >= 0
}

// SimulatePairEvents models vacuum fluctuations promoted to real photon
// pairs at the trap boundary. Instability grows exponentially past the
// wall threshold:
//
//	instability = exp(15 * (z - wall))
//	pair_prob   = clip(0.01 + instability * (1 - nc), 0, 1)
//
// and the coincidence count is one Poisson draw with mean
// pair_prob * 100 from the injected source. Growth is designed to spike
// sharply once z exceeds the wall.
func SimulatePairEvents(z, nc, wall float64, src rand.Source) (PairResult, error) {
	if src == nil {
		return PairResult{}, fmt.Errorf("%w: nil random source (pass an explicit seeded generator)", ErrInvalidInput)
	}

	instability := math.Exp(15.0 * (z - wall))
	pairProb := clip(0.01+instability*(1.0-nc), 0.0, 1.0)

	lambda := pairProb * pairCountScale
	count := 0
	if lambda > 0 {
		pois := distuv.Poisson{Lambda: lambda, Src: src}
		count = int(pois.Rand())
	}

	return PairResult{PairProb: pairProb, Count: count}, nil
}
