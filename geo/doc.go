// Package geo provides the coordinate arithmetic shared by every driftcast
// component: degree/metre conversions, longitude wrapping, latitude clamping,
// and a local planar distance approximation.
//
// What:
//
//   - MetersToDegrees converts an eastward/northward displacement in metres
//     into (dLon, dLat) degrees at a given latitude.
//   - WrapLon folds any longitude into [-180, 180).
//   - ClampLat restricts a latitude to a closed interval.
//   - DistanceKm is a flat-earth km distance, accurate over the short
//     per-step displacements the simulator produces.
//
// Why:
//
//   - Every consumer (mask, field, drift, mdp) must agree on exactly one
//     definition of these conversions, or particles and planner cells drift
//     apart by accumulated rounding.
//
// All functions are pure; the package holds no state.
package geo
