package geo

import "math"

// Physical constants shared across the module.
const (
	// EarthRadiusM is the mean Earth radius in metres.
	EarthRadiusM = 6371000.0
	// KmPerDegree is the length of one degree of latitude in kilometres.
	KmPerDegree = 111.32
	// DegToRad converts degrees to radians.
	DegToRad = math.Pi / 180.0
)

// cosFloor keeps the metre→degree longitude conversion finite at the poles.
const cosFloor = 1e-10

// WrapLon folds lon into the half-open interval [-180, 180). Non-finite
// inputs pass through unchanged so callers can detect them.
// Complexity: O(1).
func WrapLon(lon float64) float64 {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return lon
	}
	for lon < -180 {
		lon += 360
	}
	for lon >= 180 {
		lon -= 360
	}
	return lon
}

// ClampLat restricts lat to [minLat, maxLat].
// Complexity: O(1).
func ClampLat(lat, minLat, maxLat float64) float64 {
	return math.Max(minLat, math.Min(maxLat, lat))
}

// MetersToDegrees converts an eastward displacement dxM and a northward
// displacement dyM (both metres) into (dLon, dLat) degrees at latitude lat.
// The longitude conversion shrinks with cos(lat); a small floor keeps it
// finite at the poles.
// Complexity: O(1).
func MetersToDegrees(lat, dxM, dyM float64) (dLon, dLat float64) {
	dLat = dyM / (EarthRadiusM * DegToRad)
	c := math.Cos(lat * DegToRad)
	if math.Abs(c) < cosFloor {
		c = cosFloor
	}
	dLon = dxM / (EarthRadiusM * c * DegToRad)
	return dLon, dLat
}

// DistanceKm returns the local flat-earth distance in kilometres between
// (lat1, lon1) and (lat2, lon2), scaling the longitude difference by
// cos(lat1). Adequate for the short per-step hops the integrator takes;
// not a great-circle distance.
// Complexity: O(1).
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dx := WrapLon(lon2-lon1) * math.Cos(lat1*DegToRad) * KmPerDegree
	dy := (lat2 - lat1) * KmPerDegree
	return math.Hypot(dx, dy)
}
