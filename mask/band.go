package mask

// CoastalBand computes, for every cell, the minimum cell-distance to the
// nearest land cell via breadth-first expansion seeded from all land cells
// at once. Ocean cells within bandWidth are coastal; land cells carry
// distance 0. Connectivity follows the grid's Options.Conn.
//
// Returns ErrBandWidth for non-positive widths.
//
// Complexity: O(R×C×d) time, O(R×C) memory.
func (g *Grid) CoastalBand(bandWidth int) (*Band, error) {
	if bandWidth <= 0 {
		return nil, ErrBandWidth
	}

	const unreached = -1
	dist := make([][]int, g.rows)
	queue := make([][2]int, 0, g.rows*g.cols)

	// Seed: every land cell is its own nearest land at distance zero.
	for r := 0; r < g.rows; r++ {
		dist[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			if g.ocean[r][c] {
				dist[r][c] = unreached
			} else {
				dist[r][c] = 0
				queue = append(queue, [2]int{r, c})
			}
		}
	}

	// Multi-source BFS wave, one layer per cell-distance.
	for head := 0; head < len(queue); head++ {
		r, c := queue[head][0], queue[head][1]
		for _, off := range g.offsets {
			nr, nc := r+off[0], c+off[1]
			if !g.InBounds(nr, nc) || dist[nr][nc] != unreached {
				continue
			}
			dist[nr][nc] = dist[r][c] + 1
			queue = append(queue, [2]int{nr, nc})
		}
	}

	return &Band{width: bandWidth, dist: dist, grid: g}, nil
}

// DistanceCells returns the cell-distance from (r, c) to the nearest land
// cell. Cells the BFS never reached (an all-ocean grid) and out-of-range
// cells report a distance beyond any band width.
// Complexity: O(1).
func (b *Band) DistanceCells(r, c int) int {
	if r < 0 || r >= b.grid.rows || c < 0 || c >= b.grid.cols {
		return b.width + 1
	}
	if d := b.dist[r][c]; d >= 0 {
		return d
	}
	return b.width + 1
}

// Coastal reports whether (r, c) is an ocean cell within the band width of
// land. Land cells are never coastal: the band is a strip of water.
// Complexity: O(1).
func (b *Band) Coastal(r, c int) bool {
	if !b.grid.InBounds(r, c) || !b.grid.ocean[r][c] {
		return false
	}
	return b.DistanceCells(r, c) <= b.width
}

// Eligible reports whether a particle in cell (r, c) may attempt to beach:
// either the cell is coastal water or it is land itself. Particles spawned
// directly on land pass through the same gate as everyone else.
// Complexity: O(1).
func (b *Band) Eligible(r, c int) bool {
	if !b.grid.InBounds(r, c) {
		return false
	}
	return !b.grid.ocean[r][c] || b.DistanceCells(r, c) <= b.width
}
