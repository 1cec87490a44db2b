package trrbench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSweepConfig(t *testing.T) {
	path := writeConfig(t, `
z_min = 0.005
z_max = 0.025
points = 20
shots = 1024
backend = "depolarizing"
seed = 99
wall_z = 0.014
log_path = "results/trr_log.csv"
`)

	cfg, err := LoadSweepConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.005, cfg.ZMin)
	assert.Equal(t, 0.025, cfg.ZMax)
	assert.Equal(t, 20, cfg.Points)
	assert.Equal(t, 1024, cfg.Shots)
	assert.Equal(t, BackendDepolarizing, cfg.Backend)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, "results/trr_log.csv", cfg.LogPath)
}

func TestLoadSweepConfigDefaults(t *testing.T) {
	path := writeConfig(t, `seed = 3`)

	cfg, err := LoadSweepConfig(path)
	require.NoError(t, err)

	def := DefaultSweepConfig()
	assert.Equal(t, def.ZMin, cfg.ZMin)
	assert.Equal(t, def.ZMax, cfg.ZMax)
	assert.Equal(t, def.Points, cfg.Points)
	assert.Equal(t, def.Shots, cfg.Shots)
	assert.Equal(t, def.Backend, cfg.Backend)
	assert.Equal(t, def.WallZ, cfg.WallZ)
	assert.Equal(t, uint64(3), cfg.Seed)
}

func TestLoadSweepConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"one point":      `points = 1`,
		"inverted range": "z_min = 0.02\nz_max = 0.01",
		"negative shots": `shots = -1`,
		"negative wall":  `wall_z = -0.014`,
	}
	for name, body := range cases {
		path := writeConfig(t, body)
		_, err := LoadSweepConfig(path)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}

	_, err := LoadSweepConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeConfig(t, `points = "not a number"`)
	_, err = LoadSweepConfig(path)
	assert.Error(t, err)
}

func TestDefaultSweepConfigValid(t *testing.T) {
	assert.NoError(t, DefaultSweepConfig().Validate())
}
