package mdp

import (
	"context"
	"fmt"
	"math"

	"github.com/LALITH0110/vArI-oceans-four/field"
	"github.com/LALITH0110/vArI-oceans-four/geo"
	"github.com/LALITH0110/vArI-oceans-four/mask"
)

// landState marks a transition that runs aground or leaves the grid.
// Such transitions are terminal with value zero beyond the penalty.
const landState = -1

type cell struct{ r, c int }

// arena is the precomputed MDP: the dense water-cell state space plus the
// successor and reward of every (state, action) pair. Immutable after
// construction; shared by the solver and every Walker.
type arena struct {
	grid     *mask.Grid
	states   []cell
	index    [][]int // (r, c) → state index, -1 for land
	isTarget []bool
	next     [][numActions]int
	rewards  [][numActions]float64
}

// Solve runs synchronous value iteration over the water cells of cfg.Grid
// and returns the greedy policy with its convergence record. Failing to
// converge within MaxIterations is not an error; Result.Converged and
// Result.Delta tell the story.
//
// Cancellation is cooperative between sweeps; a cancelled solve returns
// the partially converged Result together with ctx.Err().
//
// Complexity: O(MaxIterations × states × 9) after an
// O(states × 9) precomputation pass.
func Solve(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if (cfg.Rewards == Rewards{}) {
		cfg.Rewards = DefaultRewards()
	}

	ar, err := buildArena(cfg)
	if err != nil {
		return nil, err
	}

	n := len(ar.states)
	v := make([]float64, n)
	vn := make([]float64, n)
	actions := make([]Action, n)
	res := &Result{}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			res.Policy = &Policy{arena: ar, actions: actions}
			res.Values = v
			return res, err
		}

		// One Jacobi sweep: vn is computed entirely from v, so the state
		// visit order cannot influence the result.
		delta := 0.0
		for s := 0; s < n; s++ {
			if ar.isTarget[s] {
				vn[s] = 0
				actions[s] = Stay
				continue
			}
			best, bestAct := math.Inf(-1), Stay
			for a := Stay; a < numActions; a++ {
				q := ar.rewards[s][a]
				if ns := ar.next[s][a]; ns >= 0 {
					q += cfg.Gamma * v[ns]
				}
				// Strict improvement keeps the lowest-numbered action on
				// ties, so Stay wins when steering buys nothing.
				if q > best {
					best, bestAct = q, a
				}
			}
			if d := math.Abs(best - v[s]); d > delta {
				delta = d
			}
			vn[s] = best
			actions[s] = bestAct
		}
		v, vn = vn, v
		res.Iterations = iter + 1
		res.Delta = delta
		if delta <= cfg.Tolerance {
			res.Converged = true
			break
		}
	}

	res.Policy = &Policy{arena: ar, actions: actions}
	res.Values = v
	return res, nil
}

// validate rejects planning problems that cannot be solved.
func validate(cfg Config) error {
	if cfg.Grid == nil {
		return ErrNilGrid
	}
	switch {
	case cfg.DtSeconds <= 0:
		return fmt.Errorf("%w: dt must be positive, got %v", ErrBadConfig, cfg.DtSeconds)
	case cfg.SteerSpeedMS < 0:
		return fmt.Errorf("%w: steer speed must be non-negative, got %v", ErrBadConfig, cfg.SteerSpeedMS)
	case cfg.Gamma <= 0 || cfg.Gamma >= 1:
		return fmt.Errorf("%w: discount must lie in (0,1), got %v", ErrBadConfig, cfg.Gamma)
	case cfg.Tolerance <= 0:
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrBadConfig, cfg.Tolerance)
	case cfg.MaxIterations <= 0:
		return fmt.Errorf("%w: iteration cap must be positive, got %d", ErrBadConfig, cfg.MaxIterations)
	case cfg.CoastBandCells <= 0:
		return fmt.Errorf("%w: coastal band width must be positive, got %d", ErrBadConfig, cfg.CoastBandCells)
	case cfg.Target.RadiusKm <= 0:
		return fmt.Errorf("%w: target radius must be positive, got %v", ErrBadConfig, cfg.Target.RadiusKm)
	}
	return nil
}

// buildArena enumerates the water cells row-major and precomputes every
// transition and reward.
func buildArena(cfg Config) (*arena, error) {
	grid := cfg.Grid
	band, err := grid.CoastalBand(cfg.CoastBandCells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	f, err := field.New(cfg.Field, field.WithMask(grid))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	rows, cols := grid.Rows(), grid.Cols()
	ar := &arena{grid: grid, index: make([][]int, rows)}
	for r := 0; r < rows; r++ {
		ar.index[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			if !grid.Ocean(r, c) {
				ar.index[r][c] = landState
				continue
			}
			ar.index[r][c] = len(ar.states)
			ar.states = append(ar.states, cell{r, c})
		}
	}

	n := len(ar.states)
	ar.isTarget = make([]bool, n)
	anyTarget := false
	for s, st := range ar.states {
		lat, lon := grid.Center(st.r, st.c)
		if geo.DistanceKm(lat, lon, cfg.Target.Lat, cfg.Target.Lon) <= cfg.Target.RadiusKm {
			ar.isTarget[s] = true
			anyTarget = true
		}
	}
	if !anyTarget {
		return nil, fmt.Errorf("%w: target region contains no water cell", ErrBadConfig)
	}

	// entry[s] is the graded coastal penalty collected on entering s.
	entry := make([]float64, n)
	bw := float64(cfg.CoastBandCells)
	for s, st := range ar.states {
		if d := band.DistanceCells(st.r, st.c); float64(d) <= bw {
			entry[s] = cfg.Rewards.CoastPenalty * (1 - float64(d)/bw)
		}
	}

	ar.next = make([][numActions]int, n)
	ar.rewards = make([][numActions]float64, n)
	for s, st := range ar.states {
		lat, lon := grid.Center(st.r, st.c)
		cu, cv := f.At(lat, lon, cfg.DayOfYear)
		for a := Stay; a < numActions; a++ {
			su, sv := a.thrust()
			u := cu + su*cfg.SteerSpeedMS
			v := cv + sv*cfg.SteerSpeedMS
			dLon, dLat := geo.MetersToDegrees(lat, u*cfg.DtSeconds, v*cfg.DtSeconds)

			reward := 0.0
			if a != Stay {
				reward -= cfg.Rewards.SteerCost
			}

			destLat := geo.ClampLat(lat+dLat, -90, 90)
			destLon := geo.WrapLon(lon + dLon)
			r, c, ok := grid.CellAt(destLat, destLon)
			switch {
			case !ok || !grid.Ocean(r, c):
				ar.next[s][a] = landState
				reward += cfg.Rewards.LandPenalty
			default:
				ns := ar.index[r][c]
				ar.next[s][a] = ns
				if ar.isTarget[ns] {
					reward += cfg.Rewards.TargetBonus
				} else {
					reward += entry[ns]
				}
			}
			ar.rewards[s][a] = reward
		}
	}
	return ar, nil
}
