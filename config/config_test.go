package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LALITH0110/vArI-oceans-four/config"
)

// writeTemp drops a YAML document into the test's temp dir.
func writeTemp(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoad_OverridesOverDefaults(t *testing.T) {
	path := writeTemp(t, `
simulation:
  particles: 1000
  seed: 7
field:
  diffusivity_m2s: 250
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	// Overridden keys.
	assert.Equal(t, 1000, cfg.Simulation.Particles)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, 250.0, cfg.Field.DiffusivityM2S)

	// Untouched keys keep their defaults.
	def := config.Default()
	assert.Equal(t, def.Simulation.Steps, cfg.Simulation.Steps)
	assert.Equal(t, def.Field.GyrePeakMS, cfg.Field.GyrePeakMS)
	assert.Equal(t, def.Planner, cfg.Planner)
}

func TestLoad_EmptyDocumentIsDefault(t *testing.T) {
	cfg, err := config.Load(writeTemp(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "grid: ["},
		{"unknown key", "simulation:\n  particels: 10\n"},
		{"zero cell size", "grid:\n  cell_size_deg: 0\n"},
		{"inverted extent", "grid:\n  lon_min: 10\n  lon_max: -10\n"},
		{"bad connectivity", "grid:\n  connectivity: 6\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeTemp(t, tc.doc))
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestConfig_Assembly(t *testing.T) {
	cfg := config.Default()

	opts := cfg.MaskOptions()
	assert.Equal(t, cfg.Grid.CellSizeDeg, opts.CellSizeDeg)
	assert.Equal(t, cfg.Grid.LonMin, opts.Extent.LonMin)

	dc := cfg.DriftConfig(nil)
	assert.Equal(t, cfg.Simulation.Particles, dc.Particles)
	assert.Equal(t, cfg.Simulation.ReleaseLat, dc.Release.Lat)
	assert.Equal(t, cfg.Simulation.BeachProbability, dc.Beaching.Probability)

	pc := cfg.PlannerConfig(nil)
	assert.Equal(t, cfg.Planner.Gamma, pc.Gamma)
	assert.Equal(t, cfg.Planner.TargetRadiusKm, pc.Target.RadiusKm)
	assert.Equal(t, cfg.Planner.LandPenalty, pc.Rewards.LandPenalty)
}
