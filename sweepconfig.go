package trrbench

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// SweepConfig controls a redshift sweep.
type SweepConfig struct {
	ZMin    float64 `toml:"z_min"`    // Sweep start
	ZMax    float64 `toml:"z_max"`    // Sweep end, must exceed z_min
	Points  int     `toml:"points"`   // Grid points, >= 2
	Shots   int     `toml:"shots"`    // Probe repetitions per point
	Backend string  `toml:"backend"`  // "channel", "depolarizing" or "none"
	Seed    uint64  `toml:"seed"`     // PCG seed shared by probe and pair sampling
	WallZ   float64 `toml:"wall_z"`   // Critical redshift boundary
	LogPath string  `toml:"log_path"` // Optional CSV run log, empty disables
}

// DefaultSweepConfig sweeps z from 0 to 0.020 (through the 0.014 wall)
// over 40 points at 2048 shots, matching the reference sweep.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		ZMin:    0.0,
		ZMax:    0.020,
		Points:  40,
		Shots:   2048,
		Backend: BackendChannel,
		Seed:    1,
		WallZ:   DefaultWallZ,
	}
}

// LoadSweepConfig reads a TOML sweep config, fills defaults for omitted
// fields, and validates the result.
func LoadSweepConfig(path string) (SweepConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SweepConfig{}, fmt.Errorf("read sweep config: %w", err)
	}

	cfg := SweepConfig{}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return SweepConfig{}, fmt.Errorf("parse sweep config %s: %w", path, err)
	}

	def := DefaultSweepConfig()
	if cfg.ZMax == 0 && cfg.ZMin == 0 {
		cfg.ZMin, cfg.ZMax = def.ZMin, def.ZMax
	}
	if cfg.Points == 0 {
		cfg.Points = def.Points
	}
	if cfg.Shots == 0 {
		cfg.Shots = def.Shots
	}
	if cfg.Backend == "" {
		cfg.Backend = def.Backend
	}
	if cfg.WallZ == 0 {
		cfg.WallZ = def.WallZ
	}

	if err := cfg.Validate(); err != nil {
		return SweepConfig{}, err
	}
	return cfg, nil
}

// Validate rejects sweep configurations that cannot run.
func (c SweepConfig) Validate() error {
	if c.Points < 2 {
		return fmt.Errorf("%w: sweep needs at least 2 points, got %d", ErrInvalidInput, c.Points)
	}
	if c.ZMax <= c.ZMin {
		return fmt.Errorf("%w: z_max (%g) must exceed z_min (%g)", ErrInvalidInput, c.ZMax, c.ZMin)
	}
	if c.Shots <= 0 {
		return fmt.Errorf("%w: shot count must be positive, got %d", ErrInvalidInput, c.Shots)
	}
	if c.WallZ <= 0 {
		return fmt.Errorf("%w: wall threshold must be positive, got %g", ErrInvalidInput, c.WallZ)
	}
	return nil
}
