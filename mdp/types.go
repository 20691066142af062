package mdp

import (
	"errors"
	"math"

	"github.com/LALITH0110/vArI-oceans-four/field"
	"github.com/LALITH0110/vArI-oceans-four/mask"
)

// Sentinel errors for planner configuration and path extraction.
var (
	// ErrNilGrid indicates Config.Grid was nil.
	ErrNilGrid = errors.New("mdp: ocean grid is nil")
	// ErrBadConfig indicates an invalid Config value; details are wrapped.
	ErrBadConfig = errors.New("mdp: invalid configuration")
	// ErrBadStart indicates a path start outside the grid or on land.
	ErrBadStart = errors.New("mdp: start position is not a water cell")
)

// Action is one of the nine steering choices available in every state.
type Action uint8

const (
	// Stay drifts with the flow, no thrust.
	Stay Action = iota
	// N through NW add a fixed-speed thrust in the named compass direction.
	N
	NE
	E
	SE
	S
	SW
	W
	NW
	numActions
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case Stay:
		return "stay"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		return "unknown"
	}
}

// diag is the per-axis component of a unit diagonal thrust.
var diag = math.Sqrt2 / 2

// thrust returns the unit steering direction (east, north components).
// Diagonals are normalized so every non-Stay action has magnitude one.
func (a Action) thrust() (u, v float64) {
	switch a {
	case N:
		return 0, 1
	case NE:
		return diag, diag
	case E:
		return 1, 0
	case SE:
		return diag, -diag
	case S:
		return 0, -1
	case SW:
		return -diag, -diag
	case W:
		return -1, 0
	case NW:
		return -diag, diag
	default:
		return 0, 0
	}
}

// Target is the circular goal region. Any water cell whose center lies
// within RadiusKm of (Lat, Lon) is terminal and pays the target bonus on
// entry.
type Target struct {
	Lat, Lon float64
	RadiusKm float64
}

// Rewards tunes the planner's objective. Penalties are negative values.
type Rewards struct {
	// TargetBonus is collected once, on the transition into the target.
	TargetBonus float64
	// LandPenalty is collected on any transition that runs aground or
	// leaves the grid. Such transitions are terminal.
	LandPenalty float64
	// CoastPenalty scales a graded per-entry penalty for coastal cells:
	// CoastPenalty × (1 − distance/bandWidth), strongest at the shoreline.
	CoastPenalty float64
	// SteerCost is charged per step for any non-Stay action.
	SteerCost float64
}

// DefaultRewards returns a tuning that favors direct routes, strongly
// avoids grounding, and mildly discourages coastal hugging.
func DefaultRewards() Rewards {
	return Rewards{
		TargetBonus:  10.0,
		LandPenalty:  -50.0,
		CoastPenalty: -2.0,
		SteerCost:    0.05,
	}
}

// Config fully determines a planning problem.
type Config struct {
	// Grid is the shared, immutable ocean mask. Required.
	Grid *mask.Grid
	// Field parameterizes the current the vessel rides; the planner
	// evaluates it at DayOfYear.
	Field field.Params
	// DayOfYear freezes the field in time for planning.
	DayOfYear float64
	// DtSeconds is the planning step length in seconds.
	DtSeconds float64
	// SteerSpeedMS is the thrust magnitude added by non-Stay actions (m/s).
	SteerSpeedMS float64
	// Gamma is the discount factor, in (0, 1).
	Gamma float64
	// Tolerance is the convergence threshold on the max value change per sweep.
	Tolerance float64
	// MaxIterations caps the number of value-iteration sweeps.
	MaxIterations int
	// CoastBandCells is the coastal band width used for the graded penalty.
	CoastBandCells int
	// Target is the goal region.
	Target Target
	// Rewards tunes the objective; zero value means DefaultRewards.
	Rewards Rewards
}

// Result carries the solved policy and the solver's convergence record.
type Result struct {
	// Policy maps every water cell to its greedy action.
	Policy *Policy
	// Values holds the converged state values, indexed like Policy's states.
	Values []float64
	// Iterations is the number of sweeps performed.
	Iterations int
	// Converged reports whether Delta fell to Tolerance or below.
	Converged bool
	// Delta is the max value change of the final sweep.
	Delta float64
}

// Waypoint is one step of an extracted route: the cell center the vessel
// occupies and the action the policy prescribes there.
type Waypoint struct {
	Lat, Lon float64
	Action   Action
}
