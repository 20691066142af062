package mask

import "errors"

// Sentinel errors for mask construction and band derivation.
var (
	// ErrMaskBuild indicates Build could not produce a grid; the cause is wrapped.
	ErrMaskBuild = errors.New("mask: build failed")
	// ErrNilSource indicates a nil GeometrySource was passed to Build.
	ErrNilSource = errors.New("mask: geometry source is nil")
	// ErrNoPolygons indicates the geometry source returned no polygons.
	ErrNoPolygons = errors.New("mask: geometry source returned no polygons")
	// ErrMalformedPolygon indicates a polygon with fewer than three vertices.
	ErrMalformedPolygon = errors.New("mask: polygon has fewer than three vertices")
	// ErrBadResolution indicates a non-positive cell size or an empty extent.
	ErrBadResolution = errors.New("mask: resolution must be positive and extent non-empty")
	// ErrBandWidth indicates a non-positive coastal band width.
	ErrBandWidth = errors.New("mask: band width must be positive")
	// ErrOutOfGrid indicates a coordinate outside the grid extent.
	ErrOutOfGrid = errors.New("mask: coordinate outside grid extent")
)

// Connectivity selects neighbor connectivity for the coastal band BFS:
// orthogonal only (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Extent bounds a grid in degrees. LonMin/LatMin are inclusive lower edges;
// LonMax/LatMax are exclusive upper edges.
type Extent struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Extent bounds the rasterized domain.
	Extent Extent
	// CellSizeDeg is the edge length of one grid cell in degrees.
	CellSizeDeg float64
	// Conn chooses 4- or 8-directional connectivity for band derivation.
	Conn Connectivity
}

// DefaultOptions returns Options covering the idealized North Atlantic
// domain at 1° resolution with Conn8 connectivity.
func DefaultOptions() Options {
	return Options{
		Extent:      Extent{LonMin: -100, LonMax: 20, LatMin: 0, LatMax: 60},
		CellSizeDeg: 1.0,
		Conn:        Conn8,
	}
}

// Grid is an immutable rasterized land/ocean mask. ocean[r][c] is true for
// water; row 0 is the southernmost row, column 0 the westernmost column.
type Grid struct {
	rows, cols int
	ocean      [][]bool
	extent     Extent
	cellSize   float64
	conn       Connectivity
	offsets    [][2]int
}

// Rows returns the number of latitude rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of longitude columns.
func (g *Grid) Cols() int { return g.cols }

// Extent returns the grid's domain bounds.
func (g *Grid) Extent() Extent { return g.extent }

// CellSizeDeg returns the cell edge length in degrees.
func (g *Grid) CellSizeDeg() float64 { return g.cellSize }

// Ocean reports whether cell (r, c) is water. Out-of-range cells are water:
// the domain boundary is open ocean, not an implicit coastline.
func (g *Grid) Ocean(r, c int) bool {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return true
	}
	return g.ocean[r][c]
}

// InBounds reports whether (r, c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Band holds per-cell distance to the nearest land cell, in cells, together
// with the width used to flag coastal cells. Immutable once derived.
type Band struct {
	width int
	dist  [][]int
	grid  *Grid
}

// Width returns the band width in cells.
func (b *Band) Width() int { return b.width }
