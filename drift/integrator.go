package drift

import (
	"math"
	"math/rand"

	"github.com/LALITH0110/vArI-oceans-four/field"
	"github.com/LALITH0110/vArI-oceans-four/geo"
	"github.com/LALITH0110/vArI-oceans-four/mask"
)

const secondsPerDay = 86400.0

// Integrator advances individual particles: RK4 advection through the
// velocity field, stochastic diffusion, then the beaching transition.
// Immutable after construction; safe for concurrent use with distinct
// particles.
type Integrator struct {
	field         *field.Field
	grid          *mask.Grid
	machine       *BeachingMachine
	dtSeconds     float64
	dtDays        float64
	sigmaM        float64 // diffusion displacement σ in metres per axis
	recordHistory bool
}

// NewIntegrator builds an integrator stepping dtSeconds at a time. The
// diffusion σ = sqrt(2·K·dt) follows from the field's diffusivity.
func NewIntegrator(f *field.Field, grid *mask.Grid, machine *BeachingMachine, dtSeconds float64, recordHistory bool) *Integrator {
	return &Integrator{
		field:         f,
		grid:          grid,
		machine:       machine,
		dtSeconds:     dtSeconds,
		dtDays:        dtSeconds / secondsPerDay,
		sigmaM:        math.Sqrt(2 * f.Params().DiffusivityM2S * dtSeconds),
		recordHistory: recordHistory,
	}
}

// Step advances p by one time step starting at simulation time tDays.
// Beached and Invalid particles pass through untouched (idempotent).
//
// Sequence for an Afloat particle:
//  1. RK4 displacement from four field evaluations (position and time
//     perturbed by half steps).
//  2. Isotropic Gaussian diffusion displacement per axis.
//  3. Non-finite raw position ⇒ Invalid (terminal), before any wrap or
//     clamp can mask it.
//  4. Wrap longitude, clamp latitude.
//  5. Distance accounting, beaching transition, age increment, history.
//
// Returns landHit=true when the particle remains Afloat on a land cell —
// an invariant violation the caller must surface.
// Complexity: O(1), four field evaluations.
func (it *Integrator) Step(p *Particle, rng *rand.Rand, tDays float64) (landHit bool) {
	if p.State != Afloat {
		return false
	}

	prevLat, prevLon := p.Lat, p.Lon
	dLat, dLon := it.rk4(prevLat, prevLon, tDays)

	// Diffusion: zero-mean Gaussian displacement per axis, σ = sqrt(2·K·dt)
	// metres, converted at the particle's latitude.
	if it.sigmaM > 0 {
		dxM := rng.NormFloat64() * it.sigmaM
		dyM := rng.NormFloat64() * it.sigmaM
		ddLon, ddLat := geo.MetersToDegrees(prevLat, dxM, dyM)
		dLon += ddLon
		dLat += ddLat
	}

	// Non-finite positions must be caught on the raw sums: clamping would
	// hide an infinite latitude and wrapping must never see an infinite
	// longitude.
	rawLat, rawLon := prevLat+dLat, prevLon+dLon
	if math.IsNaN(rawLat) || math.IsNaN(rawLon) || math.IsInf(rawLat, 0) || math.IsInf(rawLon, 0) {
		p.State = Invalid
		return false
	}

	p.Lat, p.Lon = geo.ClampLat(rawLat, -90, 90), geo.WrapLon(rawLon)
	p.DistanceKm += geo.DistanceKm(prevLat, prevLon, p.Lat, p.Lon)

	it.machine.Transition(p, rng)
	p.Steps++

	if it.recordHistory {
		p.Trajectory = append(p.Trajectory, Fix{Lat: p.Lat, Lon: p.Lon})
	}

	if p.State == Afloat {
		if r, c, ok := it.grid.CellAt(p.Lat, p.Lon); ok && !it.grid.Ocean(r, c) {
			return true
		}
	}
	return false
}

// rk4 returns the deterministic advection displacement in degrees for one
// step from (lat, lon) at time tDays.
func (it *Integrator) rk4(lat, lon, tDays float64) (dLat, dLon float64) {
	dt := it.dtSeconds
	halfDay := it.dtDays / 2

	// K1 at the particle.
	u1, v1 := it.field.At(lat, lon, tDays)
	dLon1, dLat1 := geo.MetersToDegrees(lat, u1*dt, v1*dt)

	// K2 at a half-step along K1.
	lat2, lon2 := lat+0.5*dLat1, lon+0.5*dLon1
	u2, v2 := it.field.At(lat2, lon2, tDays+halfDay)
	dLon2, dLat2 := geo.MetersToDegrees(lat2, u2*dt, v2*dt)

	// K3 at a half-step along K2.
	lat3, lon3 := lat+0.5*dLat2, lon+0.5*dLon2
	u3, v3 := it.field.At(lat3, lon3, tDays+halfDay)
	dLon3, dLat3 := geo.MetersToDegrees(lat3, u3*dt, v3*dt)

	// K4 at a full step along K3.
	lat4, lon4 := lat+dLat3, lon+dLon3
	u4, v4 := it.field.At(lat4, lon4, tDays+it.dtDays)
	dLon4, dLat4 := geo.MetersToDegrees(lat4, u4*dt, v4*dt)

	dLat = (dLat1 + 2*dLat2 + 2*dLat3 + dLat4) / 6
	dLon = (dLon1 + 2*dLon2 + 2*dLon3 + dLon4) / 6
	return dLat, dLon
}
