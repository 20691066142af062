package mdp

import "fmt"

// Policy maps every water cell to its greedy action. Immutable; safe for
// concurrent use.
type Policy struct {
	arena   *arena
	actions []Action
}

// ActionAt returns the prescribed action for the cell containing
// (lat, lon). Returns ErrBadStart for land or out-of-grid coordinates.
func (p *Policy) ActionAt(lat, lon float64) (Action, error) {
	s, err := p.stateAt(lat, lon)
	if err != nil {
		return Stay, err
	}
	return p.actions[s], nil
}

func (p *Policy) stateAt(lat, lon float64) (int, error) {
	r, c, ok := p.arena.grid.CellAt(lat, lon)
	if !ok || !p.arena.grid.Ocean(r, c) {
		return 0, fmt.Errorf("%w: (%.3f, %.3f)", ErrBadStart, lat, lon)
	}
	return p.arena.index[r][c], nil
}

// Walker steps a vessel through the policy one waypoint at a time.
// Deterministic: walking the same policy from the same start always
// yields the same sequence.
type Walker struct {
	p     *Policy
	state int
	done  bool
}

// Walker returns a stepper positioned at the cell containing (lat, lon).
func (p *Policy) Walker(lat, lon float64) (*Walker, error) {
	s, err := p.stateAt(lat, lon)
	if err != nil {
		return nil, err
	}
	return &Walker{p: p, state: s}, nil
}

// Next returns the current waypoint and advances along the policy's
// transition. ok turns false once the walk has ended: after emitting a
// target cell, or after a transition that runs aground. The terminal
// waypoint itself is emitted with ok=true.
func (w *Walker) Next() (Waypoint, bool) {
	if w.done {
		return Waypoint{}, false
	}
	ar := w.p.arena
	st := ar.states[w.state]
	lat, lon := ar.grid.Center(st.r, st.c)
	act := w.p.actions[w.state]
	wp := Waypoint{Lat: lat, Lon: lon, Action: act}

	if ar.isTarget[w.state] {
		w.done = true
		return wp, true
	}
	ns := ar.next[w.state][act]
	if ns == landState {
		w.done = true
		return wp, true
	}
	w.state = ns
	return wp, true
}

// ExtractPath walks the policy from (lat, lon) for at most maxSteps
// waypoints. The walk ends early at the target or at a grounding
// transition; hitting maxSteps first simply truncates the route, which
// can happen when the policy cycles away from an unreachable target.
//
// Returns ErrBadStart when the start is not a water cell, and ErrBadConfig
// for a non-positive maxSteps.
// Complexity: O(maxSteps).
func ExtractPath(p *Policy, lat, lon float64, maxSteps int) ([]Waypoint, error) {
	if maxSteps <= 0 {
		return nil, fmt.Errorf("%w: max steps must be positive, got %d", ErrBadConfig, maxSteps)
	}
	w, err := p.Walker(lat, lon)
	if err != nil {
		return nil, err
	}
	path := make([]Waypoint, 0, maxSteps)
	for len(path) < maxSteps {
		wp, ok := w.Next()
		if !ok {
			break
		}
		path = append(path, wp)
	}
	return path, nil
}
