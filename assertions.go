package trrbench

import (
	"math"
	"testing"
)

// AssertProbability verifies a probability-like quantity stays in [0,1].
func AssertProbability(t *testing.T, name string, v float64) {
	t.Helper()

	if math.IsNaN(v) {
		t.Errorf("%s is NaN (expected probability in [0,1])", name)
		return
	}
	if v < 0.0 || v > 1.0 {
		t.Errorf("%s = %.6f out of range [0,1]", name, v)
		return
	}

	t.Logf("✓ %s = %.6f ∈ [0,1]", name, v)
}

// AssertMonotoneNonDecreasing verifies ys never decreases along xs.
func AssertMonotoneNonDecreasing(t *testing.T, name string, xs, ys []float64) {
	t.Helper()

	if len(xs) != len(ys) {
		t.Fatalf("%s: mismatched series lengths (%d vs %d)", name, len(xs), len(ys))
	}

	for i := 1; i < len(ys); i++ {
		if ys[i] < ys[i-1] {
			t.Errorf("%s not monotone: f(%.6f)=%.6f > f(%.6f)=%.6f",
				name, xs[i-1], ys[i-1], xs[i], ys[i])
			return
		}
	}

	t.Logf("✓ %s monotone non-decreasing over %d points", name, len(ys))
}

// AssertMonotoneNonIncreasing verifies ys never increases along xs.
func AssertMonotoneNonIncreasing(t *testing.T, name string, xs, ys []float64) {
	t.Helper()

	if len(xs) != len(ys) {
		t.Fatalf("%s: mismatched series lengths (%d vs %d)", name, len(xs), len(ys))
	}

	for i := 1; i < len(ys); i++ {
		if ys[i] > ys[i-1] {
			t.Errorf("%s not monotone: f(%.6f)=%.6f < f(%.6f)=%.6f",
				name, xs[i-1], ys[i-1], xs[i], ys[i])
			return
		}
	}

	t.Logf("✓ %s monotone non-increasing over %d points", name, len(ys))
}

// AssertHistogramTotal verifies the outcome histogram covers exactly
// the four two-bit outcomes and sums to the requested shot count.
func AssertHistogramTotal(t *testing.T, counts map[string]int, shots int) {
	t.Helper()

	if len(counts) != 4 {
		t.Errorf("histogram has %d keys, expected the 4 two-bit outcomes", len(counts))
	}

	total := 0
	for _, key := range []string{"00", "01", "10", "11"} {
		c, ok := counts[key]
		if !ok {
			t.Errorf("histogram missing outcome %q", key)
			continue
		}
		if c < 0 {
			t.Errorf("histogram count for %q is negative: %d", key, c)
		}
		total += c
	}

	if total != shots {
		t.Errorf("histogram total %d != shot count %d", total, shots)
		return
	}

	t.Logf("✓ histogram sums to %d shots", shots)
}

// AssertSuperlinearGrowth verifies ys grows faster than linearly along
// a uniform xs grid: every second difference must be positive.
func AssertSuperlinearGrowth(t *testing.T, name string, xs, ys []float64) {
	t.Helper()

	if len(xs) != len(ys) {
		t.Fatalf("%s: mismatched series lengths (%d vs %d)", name, len(xs), len(ys))
	}
	if len(ys) < 3 {
		t.Fatalf("%s: need at least 3 points to test growth rate, got %d", name, len(ys))
	}

	for i := 2; i < len(ys); i++ {
		prev := ys[i-1] - ys[i-2]
		cur := ys[i] - ys[i-1]
		if cur <= prev {
			t.Errorf("%s growth not superlinear at x=%.6f: Δ=%.6g after Δ=%.6g",
				name, xs[i], cur, prev)
			return
		}
	}

	t.Logf("✓ %s grows superlinearly over %d points (Δ at end %.4g vs start %.4g)",
		name, len(ys), ys[len(ys)-1]-ys[len(ys)-2], ys[1]-ys[0])
}
