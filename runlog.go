package trrbench

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// runLogHeader is the fixed column order of the flat run record.
var runLogHeader = []string{
	"timestamp", "z", "tc", "nc", "escape_prob",
	"lambda_fabric", "fabric_locked", "identity",
	"fidelity_proxy", "dep_err", "secondary_err",
	"pair_prob", "pair_count",
}

// RunLog is an append-only CSV log of sweep points. The header is
// written on first write to a new or empty file; subsequent appends add
// one row per point.
//
// The mutex serializes writers within one process only. Appends from
// multiple processes are not atomic: serialize them externally or use
// per-run files.
type RunLog struct {
	mu   sync.Mutex
	path string
}

// NewRunLog creates a logger appending to path. The file is created
// lazily on first Append.
func NewRunLog(path string) *RunLog {
	return &RunLog{path: path}
}

// Append writes one sweep point as a flat key/value row. tc and nc are
// the run-wide derived quantities (they do not vary across the grid).
func (l *RunLog) Append(ts time.Time, tc, nc float64, pt SweepPoint) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat run log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(runLogHeader); err != nil {
			return fmt.Errorf("write run log header: %w", err)
		}
	}

	row := []string{
		ts.Format(time.RFC3339),
		formatFloat(pt.Z),
		formatFloat(tc),
		formatFloat(nc),
		formatFloat(pt.EscapeProb),
		formatFloat(pt.LambdaFabric),
		strconv.FormatBool(pt.FabricLocked),
		formatFloat(pt.Identity),
		formatFloat(pt.FidelityProxy),
		formatFloat(pt.DepErr),
		formatFloat(pt.SecondaryErr),
		formatFloat(pt.PairProb),
		strconv.Itoa(pt.PairCount),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write run log row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush run log: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
