// Package mdp plans steering policies over an ocean grid.
//
// 🧭 What:
//
// The planner treats every water cell of a mask.Grid as a state of a
// Markov decision process. In each state a vessel picks one of nine
// actions: drift with the flow, or add a fixed-speed steering thrust in
// one of the eight compass directions. The successor of a (state, action)
// pair is the cell reached by following the combined current-plus-steer
// velocity for one planning step. Value iteration then solves for the
// policy that reaches a target region at maximum discounted reward.
//
// ✨ Why:
//
//   - Search-and-rescue style questions ("how should a low-powered craft
//     ride these currents?") reduce to a policy over the same grid the
//     drift simulator runs on.
//   - Rewards encode the trade-offs: a bonus for entering the target, a
//     stiff penalty for running aground, a graded penalty for hugging the
//     coast, and a small per-step cost for steering at all.
//
// Entry points:
//
//	result, err := mdp.Solve(ctx, cfg)   // value iteration → *Result
//	path, err := mdp.ExtractPath(result.Policy, lat, lon, maxSteps)
//
// Non-convergence within MaxIterations is reported through Result
// (Converged=false, final Delta), never as an error: a partially
// converged policy is still usable.
//
// Complexity: Solve is O(iterations × states × actions); transitions and
// rewards are precomputed once in O(states × actions).
//
// Errors: ErrNilGrid, ErrBadConfig, ErrBadStart (see types.go).
package mdp
