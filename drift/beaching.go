package drift

import (
	"math/rand"

	"github.com/LALITH0110/vArI-oceans-four/mask"
)

// BeachingMachine decides the Afloat → Beached transition. It holds only
// read-only references and the tuning constants, so one machine serves all
// particles of a run concurrently.
type BeachingMachine struct {
	grid   *mask.Grid
	band   *mask.Band
	prob   float64
	minAge int
}

// NewBeachingMachine wires the machine to a grid, its coastal band, and the
// beaching tuning.
func NewBeachingMachine(grid *mask.Grid, band *mask.Band, b Beaching) *BeachingMachine {
	return &BeachingMachine{
		grid:   grid,
		band:   band,
		prob:   b.Probability,
		minAge: b.MinAgeSteps,
	}
}

// Transition applies the beaching rule to p using its RNG stream. The rule
// fires only when all three gates pass:
//
//	(a) the particle's cell is beaching-eligible (coastal band or land),
//	(b) the particle's age has reached the minimum,
//	(c) a Bernoulli(prob) draw succeeds.
//
// Particles spawned on land or in the band go through the same gates as
// everyone else: with MinAgeSteps zero they may beach at step 0. Beached
// and Invalid particles are left untouched.
//
// The Bernoulli draw is consumed only when gates (a) and (b) both pass.
// Complexity: O(1).
func (m *BeachingMachine) Transition(p *Particle, rng *rand.Rand) {
	if p.State != Afloat {
		return
	}
	if p.Steps < m.minAge {
		return
	}
	r, c, ok := m.grid.CellAt(p.Lat, p.Lon)
	if !ok || !m.band.Eligible(r, c) {
		return
	}
	if rng.Float64() < m.prob {
		p.State = Beached
	}
}
