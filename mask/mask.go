package mask

import (
	"fmt"
	"math"

	"github.com/LALITH0110/vArI-oceans-four/geo"
)

// Build rasterizes the land polygons supplied by src onto a regular grid
// described by opts. A cell is land iff its center lies inside any polygon
// (even-odd rule).
//
// Returns ErrMaskBuild wrapping the cause when src is nil, unreachable, or
// returns malformed geometry, and when opts describe an empty grid. The
// caller may substitute a simpler source on failure; Build itself never
// falls back silently.
//
// Complexity: O(R×C×ΣV) time, O(R×C) memory.
func Build(src GeometrySource, opts Options) (*Grid, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %w", ErrMaskBuild, ErrNilSource)
	}
	if opts.CellSizeDeg <= 0 ||
		opts.Extent.LonMax <= opts.Extent.LonMin ||
		opts.Extent.LatMax <= opts.Extent.LatMin {
		return nil, fmt.Errorf("%w: %w", ErrMaskBuild, ErrBadResolution)
	}

	polys, err := src.Polygons()
	if err != nil {
		return nil, fmt.Errorf("%w: geometry source: %w", ErrMaskBuild, err)
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMaskBuild, ErrNoPolygons)
	}
	for i, p := range polys {
		if len(p) < 3 {
			return nil, fmt.Errorf("%w: %w (polygon %d has %d vertices)",
				ErrMaskBuild, ErrMalformedPolygon, i, len(p))
		}
	}

	rows := int(math.Ceil((opts.Extent.LatMax - opts.Extent.LatMin) / opts.CellSizeDeg))
	cols := int(math.Ceil((opts.Extent.LonMax - opts.Extent.LonMin) / opts.CellSizeDeg))

	g := &Grid{
		rows:     rows,
		cols:     cols,
		ocean:    make([][]bool, rows),
		extent:   opts.Extent,
		cellSize: opts.CellSizeDeg,
		conn:     opts.Conn,
		offsets:  neighborOffsets(opts.Conn),
	}
	for r := 0; r < rows; r++ {
		g.ocean[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			lat, lon := g.Center(r, c)
			center := Point{Lat: lat, Lon: lon}
			land := false
			for _, p := range polys {
				if p.contains(center) {
					land = true
					break
				}
			}
			g.ocean[r][c] = !land
		}
	}

	return g, nil
}

// neighborOffsets precomputes (dr, dc) adjacency offsets for conn.
func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -1}, {0, 1},
			{1, -1}, {1, 0}, {1, 1},
		}
	}
	return [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
}

// Center returns the (lat, lon) coordinates of cell (r, c)'s center.
// Complexity: O(1).
func (g *Grid) Center(r, c int) (lat, lon float64) {
	lat = g.extent.LatMin + (float64(r)+0.5)*g.cellSize
	lon = g.extent.LonMin + (float64(c)+0.5)*g.cellSize
	return lat, lon
}

// CellAt returns the cell containing (lat, lon), or ok=false when the
// coordinate falls outside the grid extent.
// Complexity: O(1).
func (g *Grid) CellAt(lat, lon float64) (r, c int, ok bool) {
	// NaN compares false against every bound and would reach the int
	// conversion below.
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return 0, 0, false
	}
	lon = geo.WrapLon(lon)
	if lat < g.extent.LatMin || lat >= g.extent.LatMax ||
		lon < g.extent.LonMin || lon >= g.extent.LonMax {
		return 0, 0, false
	}
	r = int((lat - g.extent.LatMin) / g.cellSize)
	c = int((lon - g.extent.LonMin) / g.cellSize)
	// Guard the exclusive upper edge against float rounding.
	if r >= g.rows {
		r = g.rows - 1
	}
	if c >= g.cols {
		c = g.cols - 1
	}
	return r, c, true
}

// IsOcean reports whether (lat, lon) lies on a water cell. Coordinates
// outside the grid extent are open ocean.
// Complexity: O(1).
func (g *Grid) IsOcean(lat, lon float64) bool {
	r, c, ok := g.CellAt(lat, lon)
	if !ok {
		return true
	}
	return g.ocean[r][c]
}

// NearestOcean searches outward from (lat, lon) in growing square rings of
// up to radius cells and returns the center of the water cell with the
// smallest euclidean cell distance. A coordinate already on water is
// returned unchanged. Returns ErrOutOfGrid when the coordinate lies
// outside the extent or no water cell exists within radius.
// Complexity: O(radius²).
func (g *Grid) NearestOcean(lat, lon float64, radius int) (oLat, oLon float64, err error) {
	r0, c0, ok := g.CellAt(lat, lon)
	if !ok {
		return lat, lon, ErrOutOfGrid
	}
	if g.ocean[r0][c0] {
		return lat, lon, nil
	}
	// The first ring with water does not settle it: a diagonal hit at ring
	// k lies k·√2 away, farther than an orthogonal cell on a later ring.
	// Scanning continues until no unvisited ring can beat the best hit.
	best, bestDist := [2]int{-1, -1}, math.MaxFloat64
	for ring := 1; ring <= radius; ring++ {
		if best[0] >= 0 && bestDist <= float64(ring) {
			break // every cell on this ring is at least ring away
		}
		for dr := -ring; dr <= ring; dr++ {
			for dc := -ring; dc <= ring; dc++ {
				if max(abs(dr), abs(dc)) != ring {
					continue // interior of the ring was covered earlier
				}
				r, c := r0+dr, c0+dc
				if !g.InBounds(r, c) || !g.ocean[r][c] {
					continue
				}
				d := math.Hypot(float64(dr), float64(dc))
				if d < bestDist {
					bestDist = d
					best = [2]int{r, c}
				}
			}
		}
	}
	if best[0] >= 0 {
		oLat, oLon = g.Center(best[0], best[1])
		return oLat, oLon, nil
	}
	return lat, lon, fmt.Errorf("%w: no water cell within %d cells", ErrOutOfGrid, radius)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
