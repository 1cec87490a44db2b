package trrbench

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// TestPairEventsDeterminism verifies a fixed seed reproduces the
// Poisson draw exactly.
func TestPairEventsDeterminism(t *testing.T) {
	a, err := SimulatePairEvents(0.015, 0.54, DefaultWallZ, rand.NewPCG(9, 9))
	if err != nil {
		t.Fatalf("pair events: %v", err)
	}
	b, err := SimulatePairEvents(0.015, 0.54, DefaultWallZ, rand.NewPCG(9, 9))
	if err != nil {
		t.Fatalf("pair events: %v", err)
	}

	if a.Count != b.Count || a.PairProb != b.PairProb {
		t.Errorf("seeded runs diverged: %+v vs %+v", a, b)
	}
	t.Logf("✓ seed 9 reproduces count %d (prob %.4f)", a.Count, a.PairProb)
}

// TestPairEventsInvariants checks probability range and count sign
// across the interesting z band.
func TestPairEventsInvariants(t *testing.T) {
	src := rand.NewPCG(3, 3)
	for z := -0.01; z <= 0.05; z += 0.005 {
		res, err := SimulatePairEvents(z, 0.54, DefaultWallZ, src)
		if err != nil {
			t.Fatalf("z=%g: %v", z, err)
		}
		if res.PairProb < 0 || res.PairProb > 1 {
			t.Errorf("z=%g: pair prob %g out of [0,1]", z, res.PairProb)
		}
		if res.Count < 0 {
			t.Errorf("z=%g: negative count %d", z, res.Count)
		}
	}
	t.Logf("✓ pair probability clipped, counts non-negative")
}

// TestPairEventsWallSpike sweeps z across the wall (0.005 → 0.020) and
// asserts the pair probability grows faster than linearly — the
// exponential instability signature of the confinement limit.
func TestPairEventsWallSpike(t *testing.T) {
	const nc = 0.54
	src := rand.NewPCG(17, 17)

	zs := make([]float64, 0, 31)
	probs := make([]float64, 0, 31)
	for i := 0; i <= 30; i++ {
		z := 0.005 + float64(i)*0.0005
		res, err := SimulatePairEvents(z, nc, DefaultWallZ, src)
		if err != nil {
			t.Fatalf("z=%g: %v", z, err)
		}
		zs = append(zs, z)
		probs = append(probs, res.PairProb)
	}

	AssertMonotoneNonDecreasing(t, "pair probability", zs, probs)
	AssertSuperlinearGrowth(t, "pair probability", zs, probs)

	// Past the wall the slope itself must have grown: the last increment
	// exceeds the first.
	first := probs[1] - probs[0]
	last := probs[len(probs)-1] - probs[len(probs)-2]
	if last <= first {
		t.Errorf("slope did not grow across the wall: Δ %.6g → %.6g", first, last)
	}
}

// TestPairEventsFullCoupling verifies perfect coupling suppresses the
// instability term entirely.
func TestPairEventsFullCoupling(t *testing.T) {
	res, err := SimulatePairEvents(0.020, 1.0, DefaultWallZ, rand.NewPCG(1, 1))
	if err != nil {
		t.Fatalf("pair events: %v", err)
	}
	if res.PairProb != 0.01 {
		t.Errorf("pair prob = %g, expected the 0.01 baseline with nc=1", res.PairProb)
	}
	t.Logf("✓ full coupling leaves only the 0.01 baseline")
}

// TestPairEventsNilSource verifies the sampling path fails fast rather
// than reaching for hidden global randomness.
func TestPairEventsNilSource(t *testing.T) {
	_, err := SimulatePairEvents(0.015, 0.54, DefaultWallZ, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
