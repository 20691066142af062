package field

import (
	"errors"

	"github.com/LALITH0110/vArI-oceans-four/mask"
)

// Sentinel errors for field construction.
var (
	// ErrBadParams indicates a Params value failed validation.
	ErrBadParams = errors.New("field: invalid parameters")
)

// Anchor ties a boundary-current center longitude to a latitude. The
// current's core is interpolated linearly between consecutive anchors.
type Anchor struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Params is the immutable configuration of a velocity field. Zero values
// disable the corresponding component; DefaultParams returns a ready-made
// idealized North Atlantic setup.
type Params struct {
	// Gyre: Gaussian-decay rotational field, clockwise.
	GyreCenterLat float64 `yaml:"gyre_center_lat"`
	GyreCenterLon float64 `yaml:"gyre_center_lon"`
	GyreRadiusDeg float64 `yaml:"gyre_radius_deg"`
	GyrePeakMS    float64 `yaml:"gyre_peak_ms"`

	// Boundary current: poleward jet hugging the western edge of the
	// domain between BoundaryLatMin and BoundaryLatMax, with a Gaussian
	// cross-stream profile of width BoundaryWidthDeg around a center
	// longitude interpolated through BoundaryAnchors.
	BoundaryLatMin   float64  `yaml:"boundary_lat_min"`
	BoundaryLatMax   float64  `yaml:"boundary_lat_max"`
	BoundaryWidthDeg float64  `yaml:"boundary_width_deg"`
	BoundaryPeakMS   float64  `yaml:"boundary_peak_ms"`
	BoundaryAnchors  []Anchor `yaml:"boundary_anchors"`

	// Continuation: broad eastward flow at higher latitudes, a fraction of
	// the boundary peak, with a Gaussian latitude profile.
	ContinuationLatMin    float64 `yaml:"continuation_lat_min"`
	ContinuationLatMax    float64 `yaml:"continuation_lat_max"`
	ContinuationCenterLat float64 `yaml:"continuation_center_lat"`
	ContinuationWidthDeg  float64 `yaml:"continuation_width_deg"`
	ContinuationFraction  float64 `yaml:"continuation_fraction"`

	// Windage: WindageCoeff × prevailing wind, weighted by a triangular
	// profile peaking midway through the trade band and zero outside it.
	WindageCoeff float64 `yaml:"windage_coeff"`
	WindUMS      float64 `yaml:"wind_u_ms"`
	WindVMS      float64 `yaml:"wind_v_ms"`
	TradeLatMin  float64 `yaml:"trade_lat_min"`
	TradeLatMax  float64 `yaml:"trade_lat_max"`

	// Background: a spatially uniform current added everywhere over water.
	// Useful for calibration runs and net-transport scenarios.
	BackgroundUMS float64 `yaml:"background_u_ms"`
	BackgroundVMS float64 `yaml:"background_v_ms"`

	// DiffusivityM2S is the isotropic diffusivity consumed by the
	// integrator's stochastic displacement (m²/s).
	DiffusivityM2S float64 `yaml:"diffusivity_m2s"`

	// SeasonalAmp, when non-zero, multiplies the wind-driven component by
	// 1 + SeasonalAmp·sin(2π·dayOfYear/365.25).
	SeasonalAmp float64 `yaml:"seasonal_amp"`
}

// DefaultParams returns the idealized North Atlantic configuration:
// subtropical gyre at (30N, 40W), a Gulf-Stream-like boundary current,
// eastward continuation toward higher latitudes, trade-wind windage, and
// 100 m²/s diffusivity.
func DefaultParams() Params {
	return Params{
		GyreCenterLat: 30.0,
		GyreCenterLon: -40.0,
		GyreRadiusDeg: 20.0,
		GyrePeakMS:    0.5,

		BoundaryLatMin:   25.0,
		BoundaryLatMax:   42.0,
		BoundaryWidthDeg: 2.0,
		BoundaryPeakMS:   2.0,
		BoundaryAnchors: []Anchor{
			{Lat: 25, Lon: -75},
			{Lat: 35, Lon: -75},
			{Lat: 42, Lon: -65},
		},

		ContinuationLatMin:    40.0,
		ContinuationLatMax:    55.0,
		ContinuationCenterLat: 47.0,
		ContinuationWidthDeg:  5.0,
		ContinuationFraction:  0.8,

		WindageCoeff: 0.03,
		WindUMS:      -5.0,
		WindVMS:      2.0,
		TradeLatMin:  10.0,
		TradeLatMax:  30.0,

		DiffusivityM2S: 100.0,
		SeasonalAmp:    0.0,
	}
}

// Option configures optional Field behavior.
type Option func(*Field)

// WithMask attaches a land mask; velocities over land cells become (0, 0).
func WithMask(g *mask.Grid) Option {
	return func(f *Field) {
		if g != nil {
			f.grid = g
		}
	}
}
