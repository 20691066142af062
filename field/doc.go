// Package field evaluates a synthetic, time-dependent ocean current at any
// coordinate. The field is an additive composition of four idealized
// circulation components plus an optional seasonal ramp:
//
//   - a clockwise gyre with Gaussian radial decay around a center point
//   - a western boundary current, poleward and several times stronger than
//     the gyre, following a per-latitude center longitude
//   - a broad eastward continuation current at higher latitudes
//   - windage: a fraction of a prevailing wind inside the trade-wind band
//
// Why:
//
//   - Physics parameters live in one immutable Params value handed to New,
//     never in module-level state: evaluation is a pure function of
//     (lat, lon, t) and the parameters, reproducible and safe to share
//     across any number of concurrent simulations.
//
// Land: with WithMask attached, the velocity over land cells is (0, 0).
// Longitude wraps; latitude is clamped to [-90, 90].
//
// Errors:
//
//   - ErrBadParams: a parameter fails validation (wrapped detail).
//
// Complexity: At is O(1) per evaluation.
package field
