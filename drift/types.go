package drift

import (
	"errors"

	"github.com/LALITH0110/vArI-oceans-four/field"
	"github.com/LALITH0110/vArI-oceans-four/mask"
)

// Sentinel errors for simulation configuration and setup.
var (
	// ErrNilGrid indicates Config.Grid was nil.
	ErrNilGrid = errors.New("drift: ocean grid is nil")
	// ErrBadConfig indicates an invalid Config value; details are wrapped.
	ErrBadConfig = errors.New("drift: invalid configuration")
	// ErrNoOceanSpawn indicates no water could be found near the release point.
	ErrNoOceanSpawn = errors.New("drift: no ocean cell near release point")
)

// State is a particle's lifecycle state. Beached and Invalid are terminal:
// once entered, the particle's position never changes again.
type State uint8

const (
	// Afloat particles advect, diffuse, and may beach.
	Afloat State = iota
	// Beached particles hit the coast and stay put.
	Beached
	// Invalid particles produced a non-finite position during integration.
	Invalid
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Afloat:
		return "afloat"
	case Beached:
		return "beached"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Fix is one recorded trajectory position.
type Fix struct {
	Lat, Lon float64
}

// Particle is a single drifting tracer. Owned by the run that created it
// and mutated only by the Integrator and BeachingMachine.
type Particle struct {
	Lat, Lon   float64
	State      State
	Steps      int     // completed steps since spawn
	DistanceKm float64 // cumulative surface distance traveled
	Trajectory []Fix   // recorded when history is enabled; nil otherwise
}

// Release describes where particles enter the water.
type Release struct {
	Lat, Lon float64
	// RadiusKm spreads spawn positions uniformly over a disc; positions on
	// land are rejection-sampled back into the water.
	RadiusKm float64
}

// Beaching holds the state-machine tuning. The constants are empirically
// tuned, not load-bearing; only the mechanism (age gate, coastal-band gate,
// Bernoulli draw) is fixed.
type Beaching struct {
	// Probability is the per-step Bernoulli success chance once eligible.
	Probability float64
	// MinAgeSteps gates beaching until a particle has survived this many steps.
	MinAgeSteps int
	// BandWidthCells is the coastal band radius passed to mask.CoastalBand.
	BandWidthCells int
}

// Config fully determines a simulation run. Identical (Config, Seed) values
// produce identical results.
type Config struct {
	// Grid is the shared, immutable ocean mask. Required.
	Grid *mask.Grid
	// Field parameterizes the velocity field (and its diffusivity).
	Field field.Params
	// Particles is the number of tracers to release.
	Particles int
	// Steps is the horizon in time steps.
	Steps int
	// DtSeconds is the step length in seconds.
	DtSeconds float64
	// Seed drives every random draw of the run.
	Seed int64
	// Release places the tracers.
	Release Release
	// Beaching tunes the state machine.
	Beaching Beaching
	// Workers sets the per-step partition width; values < 2 run inline.
	Workers int
	// RecordHistory keeps a full trajectory per particle.
	RecordHistory bool
}

// LandHit records an Afloat particle observed on a land cell after a step —
// an invariant violation pointing at a masking or integration defect.
type LandHit struct {
	Step     int
	Particle int
}

// Diagnostics aggregates per-particle issues that never abort a run.
type Diagnostics struct {
	// Invalid counts particles that turned non-finite and were retired.
	Invalid int
	// LandHits lists every Afloat-on-land observation, in (step, particle) order.
	LandHits []LandHit
}

// Metrics summarizes a finished run.
type Metrics struct {
	BeachedFraction float64
	AfloatFraction  float64
	MedianKm        float64
	MeanKm          float64
	MaxKm           float64
}

// RunResult carries everything a run produced. Valid even after early
// cancellation, up to the last finished step.
type RunResult struct {
	Particles   []Particle
	Metrics     Metrics
	Diagnostics Diagnostics
	// StepsRun is the number of fully completed steps.
	StepsRun int
}
