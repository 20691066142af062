// Package mask rasterizes land/water polygon geometry into an immutable
// boolean ocean grid and derives the coastal band every beaching decision
// depends on.
//
// What:
//
//   - Build rasterizes a GeometrySource onto a regular lat/lon grid: a cell
//     is land iff its center falls inside any land polygon (even-odd rule).
//   - Grid.CoastalBand runs a multi-source BFS outward from all land cells
//     and records each ocean cell's distance to the nearest land cell;
//     cells within the band width are coastal.
//   - Grid.CellAt / Grid.Center / Grid.IsOcean / Grid.NearestOcean translate
//     between coordinates and cells for the integrator and the planner.
//   - SyntheticBasin supplies the idealized North Atlantic coastline used by
//     examples and tests.
//
// Why:
//
//   - Interpolated per-latitude coastline approximations with ad hoc buffer
//     offsets accumulate boundary bugs; rasterizing polygon geometry once
//     removes that entire class of defects.
//   - The grid is built once per configuration and immutable afterwards, so
//     every consumer may share it without locking.
//
// Complexity:
//
//   - Build:       O(R×C×P·V) time (P polygons of V vertices), O(R×C) memory.
//   - CoastalBand: O(R×C×d) time (d = 4 or 8 neighbors), O(R×C) memory.
//
// Errors:
//
//   - ErrMaskBuild: fatal build failure; wraps ErrNilSource, ErrNoPolygons,
//     ErrMalformedPolygon, ErrBadResolution, or the source's own error.
//   - ErrBandWidth: non-positive coastal band width.
//
// Determinism: output depends only on the geometry source and resolution,
// never on run order.
package mask
