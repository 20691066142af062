// Package config loads simulation and planning settings from YAML.
//
// A document overrides the defaults field by field: absent keys keep
// their default values, so a minimal file tweaks one knob without
// restating the rest. Load never guesses — malformed YAML, unknown
// connectivity, or an inverted extent fail with a wrapped ErrConfig.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LALITH0110/vArI-oceans-four/drift"
	"github.com/LALITH0110/vArI-oceans-four/field"
	"github.com/LALITH0110/vArI-oceans-four/mask"
	"github.com/LALITH0110/vArI-oceans-four/mdp"
)

// ErrConfig indicates an unreadable or invalid configuration document.
var ErrConfig = errors.New("config: invalid configuration")

// Grid selects the rasterization of the land mask.
type Grid struct {
	LonMin       float64 `yaml:"lon_min"`
	LonMax       float64 `yaml:"lon_max"`
	LatMin       float64 `yaml:"lat_min"`
	LatMax       float64 `yaml:"lat_max"`
	CellSizeDeg  float64 `yaml:"cell_size_deg"`
	Connectivity int     `yaml:"connectivity"` // 4 or 8
}

// Simulation mirrors drift.Config minus the grid and field, which have
// their own sections.
type Simulation struct {
	Particles     int     `yaml:"particles"`
	Steps         int     `yaml:"steps"`
	DtSeconds     float64 `yaml:"dt_seconds"`
	Seed          int64   `yaml:"seed"`
	Workers       int     `yaml:"workers"`
	RecordHistory bool    `yaml:"record_history"`

	ReleaseLat      float64 `yaml:"release_lat"`
	ReleaseLon      float64 `yaml:"release_lon"`
	ReleaseRadiusKm float64 `yaml:"release_radius_km"`

	BeachProbability float64 `yaml:"beach_probability"`
	BeachMinAgeSteps int     `yaml:"beach_min_age_steps"`
	CoastBandCells   int     `yaml:"coast_band_cells"`
}

// Planner mirrors mdp.Config minus the grid and field.
type Planner struct {
	DtSeconds      float64 `yaml:"dt_seconds"`
	SteerSpeedMS   float64 `yaml:"steer_speed_ms"`
	Gamma          float64 `yaml:"gamma"`
	Tolerance      float64 `yaml:"tolerance"`
	MaxIterations  int     `yaml:"max_iterations"`
	CoastBandCells int     `yaml:"coast_band_cells"`
	DayOfYear      float64 `yaml:"day_of_year"`

	TargetLat      float64 `yaml:"target_lat"`
	TargetLon      float64 `yaml:"target_lon"`
	TargetRadiusKm float64 `yaml:"target_radius_km"`

	TargetBonus  float64 `yaml:"target_bonus"`
	LandPenalty  float64 `yaml:"land_penalty"`
	CoastPenalty float64 `yaml:"coast_penalty"`
	SteerCost    float64 `yaml:"steer_cost"`
}

// Config is a full document: grid, circulation, simulation, planner.
type Config struct {
	Grid       Grid         `yaml:"grid"`
	Field      field.Params `yaml:"field"`
	Simulation Simulation   `yaml:"simulation"`
	Planner    Planner      `yaml:"planner"`
}

// Default returns the ready-to-run North Atlantic setup.
func Default() Config {
	opts := mask.DefaultOptions()
	rewards := mdp.DefaultRewards()
	return Config{
		Grid: Grid{
			LonMin:       opts.Extent.LonMin,
			LonMax:       opts.Extent.LonMax,
			LatMin:       opts.Extent.LatMin,
			LatMax:       opts.Extent.LatMax,
			CellSizeDeg:  opts.CellSizeDeg,
			Connectivity: 8,
		},
		Field: field.DefaultParams(),
		Simulation: Simulation{
			Particles:        500,
			Steps:            240,
			DtSeconds:        6 * 3600,
			Seed:             42,
			Workers:          1,
			ReleaseLat:       40.5,
			ReleaseLon:       -69.5,
			ReleaseRadiusKm:  50,
			BeachProbability: 0.15,
			BeachMinAgeSteps: 4,
			CoastBandCells:   1,
		},
		Planner: Planner{
			DtSeconds:      6 * 3600,
			SteerSpeedMS:   1.0,
			Gamma:          0.95,
			Tolerance:      1e-4,
			MaxIterations:  500,
			CoastBandCells: 2,
			TargetLat:      47,
			TargetLon:      -30,
			TargetRadiusKm: 300,
			TargetBonus:    rewards.TargetBonus,
			LandPenalty:    rewards.LandPenalty,
			CoastPenalty:   rewards.CoastPenalty,
			SteerCost:      rewards.SteerCost,
		},
	}
}

// Load reads and parses path, overriding the defaults with whatever the
// document sets. Returns ErrConfig wrapping the cause on any failure.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document over the defaults and validates it.
// Decoding is strict: unknown keys are rejected, so a typoed knob fails
// instead of silently keeping its default.
func Parse(raw []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse: %w", ErrConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks only what the constructors downstream cannot: the grid
// section. Simulation and planner values are validated by drift.Run and
// mdp.Solve respectively.
func (c *Config) validate() error {
	switch {
	case c.Grid.CellSizeDeg <= 0:
		return fmt.Errorf("%w: grid cell size must be positive, got %v", ErrConfig, c.Grid.CellSizeDeg)
	case c.Grid.LonMax <= c.Grid.LonMin || c.Grid.LatMax <= c.Grid.LatMin:
		return fmt.Errorf("%w: grid extent is empty", ErrConfig)
	case c.Grid.Connectivity != 4 && c.Grid.Connectivity != 8:
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrConfig, c.Grid.Connectivity)
	}
	return nil
}

// MaskOptions maps the grid section onto mask.Options.
func (c *Config) MaskOptions() mask.Options {
	conn := mask.Conn8
	if c.Grid.Connectivity == 4 {
		conn = mask.Conn4
	}
	return mask.Options{
		Extent: mask.Extent{
			LonMin: c.Grid.LonMin,
			LonMax: c.Grid.LonMax,
			LatMin: c.Grid.LatMin,
			LatMax: c.Grid.LatMax,
		},
		CellSizeDeg: c.Grid.CellSizeDeg,
		Conn:        conn,
	}
}

// DriftConfig assembles the simulation configuration over grid.
func (c *Config) DriftConfig(grid *mask.Grid) drift.Config {
	s := c.Simulation
	return drift.Config{
		Grid:      grid,
		Field:     c.Field,
		Particles: s.Particles,
		Steps:     s.Steps,
		DtSeconds: s.DtSeconds,
		Seed:      s.Seed,
		Release: drift.Release{
			Lat:      s.ReleaseLat,
			Lon:      s.ReleaseLon,
			RadiusKm: s.ReleaseRadiusKm,
		},
		Beaching: drift.Beaching{
			Probability:    s.BeachProbability,
			MinAgeSteps:    s.BeachMinAgeSteps,
			BandWidthCells: s.CoastBandCells,
		},
		Workers:       s.Workers,
		RecordHistory: s.RecordHistory,
	}
}

// PlannerConfig assembles the planning configuration over grid.
func (c *Config) PlannerConfig(grid *mask.Grid) mdp.Config {
	p := c.Planner
	return mdp.Config{
		Grid:           grid,
		Field:          c.Field,
		DayOfYear:      p.DayOfYear,
		DtSeconds:      p.DtSeconds,
		SteerSpeedMS:   p.SteerSpeedMS,
		Gamma:          p.Gamma,
		Tolerance:      p.Tolerance,
		MaxIterations:  p.MaxIterations,
		CoastBandCells: p.CoastBandCells,
		Target: mdp.Target{
			Lat:      p.TargetLat,
			Lon:      p.TargetLon,
			RadiusKm: p.TargetRadiusKm,
		},
		Rewards: mdp.Rewards{
			TargetBonus:  p.TargetBonus,
			LandPenalty:  p.LandPenalty,
			CoastPenalty: p.CoastPenalty,
			SteerCost:    p.SteerCost,
		},
	}
}
