package field

import (
	"fmt"
	"math"

	"github.com/LALITH0110/vArI-oceans-four/geo"
	"github.com/LALITH0110/vArI-oceans-four/mask"
)

// daysPerYear matches the seasonal period used by the wind generator.
const daysPerYear = 365.25

// Field evaluates the synthetic current. Immutable after New; safe for
// concurrent use.
type Field struct {
	p    Params
	grid *mask.Grid // optional; nil means no land zeroing
}

// New validates p and constructs a Field, applying any functional options.
//
// Validation (in order):
//  1. GyreRadiusDeg must be positive when GyrePeakMS is non-zero.
//  2. BoundaryWidthDeg must be positive when BoundaryPeakMS is non-zero,
//     and BoundaryAnchors must then hold at least two anchors with strictly
//     increasing latitudes.
//  3. ContinuationWidthDeg must be positive when ContinuationFraction is
//     non-zero.
//  4. DiffusivityM2S must be non-negative.
//
// Each failure returns ErrBadParams with a wrapped detail.
func New(p Params, opts ...Option) (*Field, error) {
	if p.GyrePeakMS != 0 && p.GyreRadiusDeg <= 0 {
		return nil, fmt.Errorf("%w: gyre radius must be positive, got %v", ErrBadParams, p.GyreRadiusDeg)
	}
	if p.BoundaryPeakMS != 0 {
		if p.BoundaryWidthDeg <= 0 {
			return nil, fmt.Errorf("%w: boundary width must be positive, got %v", ErrBadParams, p.BoundaryWidthDeg)
		}
		if len(p.BoundaryAnchors) < 2 {
			return nil, fmt.Errorf("%w: boundary current needs at least two anchors, got %d", ErrBadParams, len(p.BoundaryAnchors))
		}
		for i := 1; i < len(p.BoundaryAnchors); i++ {
			if p.BoundaryAnchors[i].Lat <= p.BoundaryAnchors[i-1].Lat {
				return nil, fmt.Errorf("%w: boundary anchor latitudes must increase strictly", ErrBadParams)
			}
		}
	}
	if p.ContinuationFraction != 0 && p.ContinuationWidthDeg <= 0 {
		return nil, fmt.Errorf("%w: continuation width must be positive, got %v", ErrBadParams, p.ContinuationWidthDeg)
	}
	if p.DiffusivityM2S < 0 {
		return nil, fmt.Errorf("%w: diffusivity must be non-negative, got %v", ErrBadParams, p.DiffusivityM2S)
	}

	f := &Field{p: p}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Params returns the field's immutable configuration.
func (f *Field) Params() Params { return f.p }

// At returns the current (u eastward, v northward) in m/s at the given
// coordinate and simulation time in days. Longitude wraps, latitude clamps,
// and land cells (when a mask is attached) yield (0, 0).
// Pure: no hidden state, identical inputs give identical outputs.
// Complexity: O(1).
func (f *Field) At(lat, lon, tDays float64) (u, v float64) {
	lat = geo.ClampLat(lat, -90, 90)
	lon = geo.WrapLon(lon)

	if f.grid != nil && !f.grid.IsOcean(lat, lon) {
		return 0, 0
	}

	gu, gv := f.gyre(lat, lon)
	bu, bv := f.boundary(lat, lon)
	cu, cv := f.continuation(lat)
	wu, wv := f.windage(lat, tDays)

	return gu + bu + cu + wu + f.p.BackgroundUMS, gv + bv + cv + wv + f.p.BackgroundVMS
}

// gyre is the clockwise Gaussian-decay rotational component.
func (f *Field) gyre(lat, lon float64) (u, v float64) {
	if f.p.GyrePeakMS == 0 {
		return 0, 0
	}
	dLat := lat - f.p.GyreCenterLat
	dLon := geo.WrapLon(lon - f.p.GyreCenterLon)
	r := math.Hypot(dLat, dLon) / f.p.GyreRadiusDeg
	mag := f.p.GyrePeakMS * math.Exp(-r*r)
	angle := math.Atan2(dLat, dLon)
	// Tangential, clockwise in the northern-hemisphere sense.
	return -mag * math.Sin(angle), mag * math.Cos(angle)
}

// boundary is the poleward western-boundary jet. Its core longitude is
// interpolated through the anchors; the flow tilts eastward toward the
// poleward end of the band, feeding the continuation current.
func (f *Field) boundary(lat, lon float64) (u, v float64) {
	p := f.p
	if p.BoundaryPeakMS == 0 || lat < p.BoundaryLatMin || lat > p.BoundaryLatMax {
		return 0, 0
	}
	center := interpLon(p.BoundaryAnchors, lat)
	d := geo.WrapLon(lon-center) / p.BoundaryWidthDeg
	profile := math.Exp(-d * d)

	// frac runs 0 → 1 across the band; the jet turns from purely poleward
	// to mostly zonal as it leaves the coast.
	frac := (lat - p.BoundaryLatMin) / (p.BoundaryLatMax - p.BoundaryLatMin)
	v = p.BoundaryPeakMS * profile * (1 - 0.3*frac)
	u = p.BoundaryPeakMS * profile * (0.3 + 1.2*frac)
	return u, v
}

// continuation is the broad eastward drift at higher latitudes.
func (f *Field) continuation(lat float64) (u, v float64) {
	p := f.p
	if p.ContinuationFraction == 0 || lat < p.ContinuationLatMin || lat > p.ContinuationLatMax {
		return 0, 0
	}
	d := (lat - p.ContinuationCenterLat) / p.ContinuationWidthDeg
	profile := math.Exp(-d * d)
	u = p.ContinuationFraction * p.BoundaryPeakMS * profile
	v = 0.1 * p.ContinuationFraction * p.BoundaryPeakMS * profile
	return u, v
}

// windage imparts a fraction of the prevailing wind inside the trade band,
// with a triangular weight peaking at the band center and an optional
// seasonal modulation.
func (f *Field) windage(lat, tDays float64) (u, v float64) {
	p := f.p
	if p.WindageCoeff == 0 || lat < p.TradeLatMin || lat > p.TradeLatMax {
		return 0, 0
	}
	center := (p.TradeLatMin + p.TradeLatMax) / 2
	half := (p.TradeLatMax - p.TradeLatMin) / 2
	weight := 1 - math.Abs(lat-center)/half
	if weight < 0 {
		weight = 0
	}
	season := 1.0
	if p.SeasonalAmp != 0 {
		doy := math.Mod(tDays, daysPerYear)
		season = 1 + p.SeasonalAmp*math.Sin(2*math.Pi*doy/daysPerYear)
	}
	u = p.WindageCoeff * p.WindUMS * weight * season
	v = p.WindageCoeff * p.WindVMS * weight * season
	return u, v
}

// interpLon linearly interpolates the anchor longitudes at lat. Latitudes
// outside the anchor range clamp to the nearest anchor.
func interpLon(anchors []Anchor, lat float64) float64 {
	if lat <= anchors[0].Lat {
		return anchors[0].Lon
	}
	last := anchors[len(anchors)-1]
	if lat >= last.Lat {
		return last.Lon
	}
	for i := 1; i < len(anchors); i++ {
		a, b := anchors[i-1], anchors[i]
		if lat <= b.Lat {
			t := (lat - a.Lat) / (b.Lat - a.Lat)
			return a.Lon + t*(b.Lon-a.Lon)
		}
	}
	return last.Lon
}
