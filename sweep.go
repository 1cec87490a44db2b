package trrbench

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SweepPoint is the full derived record at one redshift value.
type SweepPoint struct {
	Z          float64
	EscapeProb float64

	// Fabric lock state under the default geometry.
	LambdaFabric float64
	FabricLocked bool
	Identity     float64

	// Probe fields are only meaningful when ProbeOK is true; with an
	// unavailable backend the sweep degrades to formula-only rows.
	ProbeOK       bool
	FidelityProxy float64
	DepErr        float64
	SecondaryErr  float64

	PairProb  float64
	PairCount int
}

// SweepSummary condenses a sweep into the headline numbers: coherence
// collapse at the wall and the coincidence peak past it.
type SweepSummary struct {
	CouplingEfficiency float64
	CoherenceTime      float64

	ProbeAvailable bool
	FidelityAtZero float64 // Fidelity proxy at the first grid point
	FidelityAtWall float64 // Fidelity proxy at the point nearest the wall
	FidelityDrop   float64 // FidelityAtZero - FidelityAtWall
	MeanFidelity   float64

	PeakCoincidences int     // Largest sampled pair count
	PeakCoincidenceZ float64 // Redshift where the peak occurred
}

// Sweep runs the derived quantities, noise probe and pair model across
// a redshift grid. Coupling and coherence are derived once from Params;
// only z varies across the grid.
type Sweep struct {
	Params Params
	Config SweepConfig
	Log    *slog.Logger
}

// NewSweep pairs a parameter set with a sweep configuration.
func NewSweep(params Params, cfg SweepConfig) *Sweep {
	return &Sweep{Params: params, Config: cfg}
}

// Run executes the sweep sequentially: each grid point is an
// independent call, and one seeded source is reused across the whole
// sweep so runs with equal seeds reproduce exactly.
//
// An unavailable probe backend is not fatal: the sweep logs it once and
// produces formula-only rows. Any sampling failure aborts the sweep
// point with its cause; it is never replaced by a zero.
func (s *Sweep) Run() ([]SweepPoint, SweepSummary, error) {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}

	if err := s.Params.Validate(); err != nil {
		return nil, SweepSummary{}, err
	}
	if err := s.Config.Validate(); err != nil {
		return nil, SweepSummary{}, err
	}

	nc := CouplingEfficiency(s.Params)
	tc := CoherenceTime(s.Params)

	backend, err := NewProbeBackend(s.Config.Backend)
	if err != nil {
		if !errors.Is(err, ErrBackendUnavailable) {
			return nil, SweepSummary{}, err
		}
		log.Warn("probe backend unavailable, sweeping formula-only",
			"backend", s.Config.Backend, "err", err)
		backend = nil
	}

	src := rand.NewPCG(s.Config.Seed, s.Config.Seed)
	zs := floats.Span(make([]float64, s.Config.Points), s.Config.ZMin, s.Config.ZMax)

	points := make([]SweepPoint, 0, len(zs))
	fidelities := make([]float64, 0, len(zs))
	summary := SweepSummary{
		CouplingEfficiency: nc,
		CoherenceTime:      tc,
		ProbeAvailable:     backend != nil,
	}

	for _, z := range zs {
		pt := SweepPoint{
			Z:            z,
			EscapeProb:   EscapeProbability(z, nc, tc, DefaultCoherenceThreshold),
			LambdaFabric: LambdaFabric(z),
			FabricLocked: FabricLockActive(z),
			Identity:     IdentityPersistence(z),
		}

		if backend != nil {
			res, err := backend.Run(tc, z, nc, s.Config.Shots, src)
			if err != nil {
				return nil, SweepSummary{}, fmt.Errorf("probe at z=%g: %w", z, err)
			}
			pt.ProbeOK = true
			pt.FidelityProxy = res.FidelityProxy
			pt.DepErr = res.DepErr
			pt.SecondaryErr = res.SecondaryErr
			fidelities = append(fidelities, res.FidelityProxy)
		}

		pair, err := SimulatePairEvents(z, nc, s.Config.WallZ, src)
		if err != nil {
			return nil, SweepSummary{}, fmt.Errorf("pair events at z=%g: %w", z, err)
		}
		pt.PairProb = pair.PairProb
		pt.PairCount = pair.Count

		if pair.Count > summary.PeakCoincidences {
			summary.PeakCoincidences = pair.Count
			summary.PeakCoincidenceZ = z
		}

		points = append(points, pt)
	}

	if backend != nil {
		wallIdx := nearestIndex(zs, s.Config.WallZ)
		summary.FidelityAtZero = points[0].FidelityProxy
		summary.FidelityAtWall = points[wallIdx].FidelityProxy
		summary.FidelityDrop = summary.FidelityAtZero - summary.FidelityAtWall
		summary.MeanFidelity = stat.Mean(fidelities, nil)

		log.Info("sweep complete",
			"points", len(points),
			"nc", nc,
			"tc", tc,
			"fidelity_at_zero", summary.FidelityAtZero,
			"fidelity_at_wall", summary.FidelityAtWall,
			"peak_coincidences", summary.PeakCoincidences,
			"peak_z", summary.PeakCoincidenceZ)
	} else {
		log.Info("formula-only sweep complete",
			"points", len(points),
			"nc", nc,
			"tc", tc,
			"peak_coincidences", summary.PeakCoincidences)
	}

	return points, summary, nil
}

// nearestIndex finds the grid point closest to the target value.
func nearestIndex(xs []float64, target float64) int {
	best := 0
	bestDist := math.Abs(xs[0] - target)
	for i, x := range xs {
		if d := math.Abs(x - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
