package mdp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LALITH0110/vArI-oceans-four/geo"
	"github.com/LALITH0110/vArI-oceans-four/mask"
	"github.com/LALITH0110/vArI-oceans-four/mdp"
)

// dtOneCell is the step length at which a 1 m/s thrust crosses exactly one
// degree of latitude.
var dtOneCell = geo.EarthRadiusM * geo.DegToRad

// openWater builds a 3×3 all-water grid: the only land polygon lies
// outside the extent.
func openWater(t *testing.T) *mask.Grid {
	t.Helper()
	far := mask.StaticSource{{
		{Lat: 10, Lon: 0}, {Lat: 11, Lon: 0}, {Lat: 10.5, Lon: 1},
	}}
	g, err := mask.Build(far, mask.Options{
		Extent:      mask.Extent{LonMin: 0, LonMax: 3, LatMin: 0, LatMax: 3},
		CellSizeDeg: 1.0,
		Conn:        mask.Conn8,
	})
	require.NoError(t, err)
	return g
}

// islandGrid builds a 5×5 grid with a single land cell at (2,2).
func islandGrid(t *testing.T) *mask.Grid {
	t.Helper()
	island := mask.StaticSource{{
		{Lat: 2.1, Lon: 2.1}, {Lat: 2.9, Lon: 2.1},
		{Lat: 2.9, Lon: 2.9}, {Lat: 2.1, Lon: 2.9},
	}}
	g, err := mask.Build(island, mask.Options{
		Extent:      mask.Extent{LonMin: 0, LonMax: 5, LatMin: 0, LatMax: 5},
		CellSizeDeg: 1.0,
		Conn:        mask.Conn8,
	})
	require.NoError(t, err)
	return g
}

// stillWaterConfig is the analytic fixture: no current, unit steering that
// moves exactly one cell per step, target at the center cell.
func stillWaterConfig(grid *mask.Grid) mdp.Config {
	return mdp.Config{
		Grid:           grid,
		DtSeconds:      dtOneCell,
		SteerSpeedMS:   1.0,
		Gamma:          0.9,
		Tolerance:      1e-9,
		MaxIterations:  100,
		CoastBandCells: 1,
		Target:         mdp.Target{Lat: 1.5, Lon: 1.5, RadiusKm: 50},
	}
}

//----------------------------------------------------------------------------//
// Analytic fixed point
//----------------------------------------------------------------------------//

// TestSolve_StillWaterFixedPoint checks the solver against hand-computed
// values: on a 3×3 open-water grid every non-target cell is one steering
// step from the center target, so its value is exactly
// TargetBonus − SteerCost, and the second sweep already changes nothing.
func TestSolve_StillWaterFixedPoint(t *testing.T) {
	grid := openWater(t)
	res, err := mdp.Solve(context.Background(), stillWaterConfig(grid))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, 0.0, res.Delta)

	rewards := mdp.DefaultRewards()
	want := rewards.TargetBonus - rewards.SteerCost
	require.Len(t, res.Values, 9)
	for s, v := range res.Values {
		if s == 4 { // center cell, row-major
			assert.Equal(t, 0.0, v, "target value")
			continue
		}
		assert.InDelta(t, want, v, 1e-9, "state %d", s)
	}

	// The corner policy steers diagonally straight at the target.
	act, err := res.Policy.ActionAt(0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, mdp.NE, act)

	act, err = res.Policy.ActionAt(0.5, 1.5)
	require.NoError(t, err)
	assert.Equal(t, mdp.N, act)
}

// TestSolve_NeverPrefersGrounding: with the default rewards the land
// penalty dominates every in-water alternative, so no chosen action may
// lead off the water.
func TestSolve_NeverPrefersGrounding(t *testing.T) {
	grid := islandGrid(t)
	cfg := stillWaterConfig(grid)
	cfg.Target = mdp.Target{Lat: 0.5, Lon: 0.5, RadiusKm: 50}

	res, err := mdp.Solve(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, res.Converged)

	// From every water cell the greedy route must end on the target cell,
	// never on a grounding transition.
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if !grid.Ocean(r, c) {
				continue
			}
			lat, lon := grid.Center(r, c)
			path, err := mdp.ExtractPath(res.Policy, lat, lon, 100)
			require.NoError(t, err)
			require.NotEmpty(t, path, "cell (%d,%d)", r, c)
			last := path[len(path)-1]
			assert.Equal(t, cfg.Target.Lat, last.Lat, "cell (%d,%d)", r, c)
			assert.Equal(t, cfg.Target.Lon, last.Lon, "cell (%d,%d)", r, c)
		}
	}
}

//----------------------------------------------------------------------------//
// Convergence reporting and cancellation
//----------------------------------------------------------------------------//

func TestSolve_NonConvergenceIsNotAnError(t *testing.T) {
	grid := openWater(t)
	cfg := stillWaterConfig(grid)
	cfg.MaxIterations = 1

	res, err := mdp.Solve(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Greater(t, res.Delta, cfg.Tolerance)
	assert.NotNil(t, res.Policy)
}

func TestSolve_Cancellation(t *testing.T) {
	grid := openWater(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := mdp.Solve(ctx, stillWaterConfig(grid))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Iterations)
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestSolve_Validation(t *testing.T) {
	grid := openWater(t)
	tests := []struct {
		name   string
		mutate func(*mdp.Config)
		want   error
	}{
		{"nil grid", func(c *mdp.Config) { c.Grid = nil }, mdp.ErrNilGrid},
		{"zero dt", func(c *mdp.Config) { c.DtSeconds = 0 }, mdp.ErrBadConfig},
		{"negative steer speed", func(c *mdp.Config) { c.SteerSpeedMS = -1 }, mdp.ErrBadConfig},
		{"discount at one", func(c *mdp.Config) { c.Gamma = 1 }, mdp.ErrBadConfig},
		{"zero tolerance", func(c *mdp.Config) { c.Tolerance = 0 }, mdp.ErrBadConfig},
		{"zero iterations", func(c *mdp.Config) { c.MaxIterations = 0 }, mdp.ErrBadConfig},
		{"zero band", func(c *mdp.Config) { c.CoastBandCells = 0 }, mdp.ErrBadConfig},
		{"zero target radius", func(c *mdp.Config) { c.Target.RadiusKm = 0 }, mdp.ErrBadConfig},
		{"dry target", func(c *mdp.Config) { c.Target = mdp.Target{Lat: 40, Lon: 40, RadiusKm: 10} }, mdp.ErrBadConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := stillWaterConfig(grid)
			tc.mutate(&cfg)
			res, err := mdp.Solve(context.Background(), cfg)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

//----------------------------------------------------------------------------//
// Path extraction
//----------------------------------------------------------------------------//

func TestExtractPath_CornerRoute(t *testing.T) {
	grid := openWater(t)
	res, err := mdp.Solve(context.Background(), stillWaterConfig(grid))
	require.NoError(t, err)

	path, err := mdp.ExtractPath(res.Policy, 0.5, 0.5, 20)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, mdp.Waypoint{Lat: 0.5, Lon: 0.5, Action: mdp.NE}, path[0])
	assert.Equal(t, mdp.Waypoint{Lat: 1.5, Lon: 1.5, Action: mdp.Stay}, path[1])
}

func TestExtractPath_Deterministic(t *testing.T) {
	grid := islandGrid(t)
	cfg := stillWaterConfig(grid)
	cfg.Target = mdp.Target{Lat: 4.5, Lon: 4.5, RadiusKm: 50}

	res, err := mdp.Solve(context.Background(), cfg)
	require.NoError(t, err)

	a, err := mdp.ExtractPath(res.Policy, 0.5, 0.5, 30)
	require.NoError(t, err)
	b, err := mdp.ExtractPath(res.Policy, 0.5, 0.5, 30)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// The route must end at the target cell.
	require.NotEmpty(t, a)
	last := a[len(a)-1]
	assert.Equal(t, 4.5, last.Lat)
	assert.Equal(t, 4.5, last.Lon)
	assert.Equal(t, mdp.Stay, last.Action)
}

func TestExtractPath_Errors(t *testing.T) {
	grid := islandGrid(t)
	cfg := stillWaterConfig(grid)
	cfg.Target = mdp.Target{Lat: 4.5, Lon: 4.5, RadiusKm: 50}
	res, err := mdp.Solve(context.Background(), cfg)
	require.NoError(t, err)

	_, err = mdp.ExtractPath(res.Policy, 2.5, 2.5, 10) // land cell
	assert.ErrorIs(t, err, mdp.ErrBadStart)

	_, err = mdp.ExtractPath(res.Policy, 90, 90, 10) // off the grid
	assert.ErrorIs(t, err, mdp.ErrBadStart)

	_, err = mdp.ExtractPath(res.Policy, 0.5, 0.5, 0)
	assert.ErrorIs(t, err, mdp.ErrBadConfig)
}
