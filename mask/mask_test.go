package mask_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LALITH0110/vArI-oceans-four/mask"
)

// failingSource simulates an unreachable geometry source.
type failingSource struct{}

func (failingSource) Polygons() ([]mask.Polygon, error) {
	return nil, errors.New("connection refused")
}

// squareIsland returns a unit source with one square land polygon centered
// on (lat, lon), half-width h degrees.
func squareIsland(lat, lon, h float64) mask.GeometrySource {
	return mask.StaticSource{{
		{Lat: lat - h, Lon: lon - h},
		{Lat: lat + h, Lon: lon - h},
		{Lat: lat + h, Lon: lon + h},
		{Lat: lat - h, Lon: lon + h},
	}}
}

// fiveByFive builds a 5×5 1°-cell grid with exactly one land cell in the
// center (row 2, col 2).
func fiveByFive(t *testing.T, conn mask.Connectivity) *mask.Grid {
	t.Helper()
	opts := mask.Options{
		Extent:      mask.Extent{LonMin: 0, LonMax: 5, LatMin: 0, LatMax: 5},
		CellSizeDeg: 1.0,
		Conn:        conn,
	}
	g, err := mask.Build(squareIsland(2.5, 2.5, 0.4), opts)
	require.NoError(t, err)
	require.False(t, g.Ocean(2, 2), "center cell must be land")
	return g
}

//----------------------------------------------------------------------------//
// Build error taxonomy
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies each failure cause is wrapped in ErrMaskBuild
// and remains individually matchable.
func TestBuild_Errors(t *testing.T) {
	good := mask.DefaultOptions()
	empty := good
	empty.CellSizeDeg = 0

	cases := []struct {
		name  string
		src   mask.GeometrySource
		opts  mask.Options
		cause error
	}{
		{"NilSource", nil, good, mask.ErrNilSource},
		{"BadResolution", mask.SyntheticBasin(), empty, mask.ErrBadResolution},
		{"NoPolygons", mask.StaticSource{}, good, mask.ErrNoPolygons},
		{"Malformed", mask.StaticSource{{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}}, good, mask.ErrMalformedPolygon},
		{"SourceFailure", failingSource{}, good, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mask.Build(tc.src, tc.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, mask.ErrMaskBuild)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

// TestBuild_Deterministic verifies two builds from the same inputs agree
// cell for cell.
func TestBuild_Deterministic(t *testing.T) {
	opts := mask.DefaultOptions()
	a, err := mask.Build(mask.SyntheticBasin(), opts)
	require.NoError(t, err)
	b, err := mask.Build(mask.SyntheticBasin(), opts)
	require.NoError(t, err)

	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			if a.Ocean(r, c) != b.Ocean(r, c) {
				t.Fatalf("cell (%d,%d) differs between identical builds", r, c)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Synthetic basin geography
//----------------------------------------------------------------------------//

// TestSyntheticBasin_KnownPoints spot-checks land/water classification at
// coordinates whose status the basin geometry pins down.
func TestSyntheticBasin_KnownPoints(t *testing.T) {
	g, err := mask.Build(mask.SyntheticBasin(), mask.DefaultOptions())
	require.NoError(t, err)

	cases := []struct {
		name     string
		lat, lon float64
		ocean    bool
	}{
		{"MidAtlantic", 35.5, -40.5, true},
		{"NewYorkOffshore", 40.5, -73.5, true},
		{"NorthAmericaInterior", 40.5, -90.5, false},
		{"IberiaInterior", 40.5, -3.5, false},
		{"CaribbeanBlock", 15.5, -75.5, false},
		{"GyreCore", 30.5, -40.5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ocean, g.IsOcean(tc.lat, tc.lon))
		})
	}
}

//----------------------------------------------------------------------------//
// Coordinate ↔ cell mapping
//----------------------------------------------------------------------------//

// TestCellAt_CenterRoundTrip verifies Center and CellAt invert each other.
func TestCellAt_CenterRoundTrip(t *testing.T) {
	g := fiveByFive(t, mask.Conn4)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			lat, lon := g.Center(r, c)
			rr, cc, ok := g.CellAt(lat, lon)
			require.True(t, ok)
			assert.Equal(t, r, rr)
			assert.Equal(t, c, cc)
		}
	}
}

// TestCellAt_OutsideExtent verifies coordinates beyond the extent are
// rejected and treated as open ocean.
func TestCellAt_OutsideExtent(t *testing.T) {
	g := fiveByFive(t, mask.Conn4)
	_, _, ok := g.CellAt(10, 2)
	assert.False(t, ok)
	assert.True(t, g.IsOcean(10, 2))
}

// TestCellAt_NonFinite verifies non-finite coordinates are rejected
// cleanly instead of reaching the cell-index conversion.
func TestCellAt_NonFinite(t *testing.T) {
	g := fiveByFive(t, mask.Conn4)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, _, ok := g.CellAt(bad, 2)
		assert.False(t, ok)
		_, _, ok = g.CellAt(2, bad)
		assert.False(t, ok)
	}
	assert.True(t, g.IsOcean(math.NaN(), math.NaN()))

	_, _, err := g.NearestOcean(2, math.NaN(), 3)
	assert.ErrorIs(t, err, mask.ErrOutOfGrid)
}

// TestNearestOcean pulls a land coordinate onto the closest water cell.
func TestNearestOcean(t *testing.T) {
	g := fiveByFive(t, mask.Conn4)

	// Center of the land cell: the nearest water is one cell away.
	lat, lon, err := g.NearestOcean(2.5, 2.5, 3)
	require.NoError(t, err)
	assert.True(t, g.IsOcean(lat, lon))

	// Already on water: unchanged.
	lat, lon, err = g.NearestOcean(0.5, 0.5, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, lat)
	assert.Equal(t, 0.5, lon)

	// Outside the extent.
	_, _, err = g.NearestOcean(40, 2, 3)
	assert.ErrorIs(t, err, mask.ErrOutOfGrid)
}

// TestNearestOcean_EuclideanNearest builds a mostly-land grid whose first
// water-bearing ring holds only a diagonal cell (distance 3·√2) while the
// next ring has an orthogonal one (distance 4): the orthogonal cell is
// closer and must win.
func TestNearestOcean_EuclideanNearest(t *testing.T) {
	// 9×9 land grid with exactly two water cells: (7,7) and (8,4).
	land := mask.StaticSource{
		{{Lat: 0, Lon: 0}, {Lat: 7, Lon: 0}, {Lat: 7, Lon: 9}, {Lat: 0, Lon: 9}},
		{{Lat: 7, Lon: 0}, {Lat: 8, Lon: 0}, {Lat: 8, Lon: 7}, {Lat: 7, Lon: 7}},
		{{Lat: 7, Lon: 8}, {Lat: 8, Lon: 8}, {Lat: 8, Lon: 9}, {Lat: 7, Lon: 9}},
		{{Lat: 8, Lon: 0}, {Lat: 9, Lon: 0}, {Lat: 9, Lon: 4}, {Lat: 8, Lon: 4}},
		{{Lat: 8, Lon: 5}, {Lat: 9, Lon: 5}, {Lat: 9, Lon: 9}, {Lat: 8, Lon: 9}},
	}
	g, err := mask.Build(land, mask.Options{
		Extent:      mask.Extent{LonMin: 0, LonMax: 9, LatMin: 0, LatMax: 9},
		CellSizeDeg: 1.0,
		Conn:        mask.Conn8,
	})
	require.NoError(t, err)
	require.True(t, g.Ocean(7, 7))
	require.True(t, g.Ocean(8, 4))
	require.False(t, g.Ocean(4, 4))

	// From (4,4): the diagonal water at (7,7) appears on ring 3, but the
	// orthogonal water at (8,4) on ring 4 is nearer.
	lat, lon, err := g.NearestOcean(4.5, 4.5, 6)
	require.NoError(t, err)
	assert.Equal(t, 8.5, lat)
	assert.Equal(t, 4.5, lon)
}
