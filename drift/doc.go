// Package drift advances buoyant particles through a velocity field and
// owns the beaching state machine that ends their journeys.
//
// What:
//
//   - Integrator.Step: one 4th-order Runge–Kutta advection step (four field
//     evaluations) plus an isotropic Gaussian diffusion displacement with
//     σ = sqrt(2·K·dt) metres per axis, converted to degrees at the
//     particle's latitude.
//   - BeachingMachine.Transition: Afloat → Beached when the particle sits in
//     the coastal band (or on land itself), has reached the minimum age, and
//     wins a per-step Bernoulli draw. Beached and Invalid are absorbing.
//   - Run: spawns particles offshore around a release point, steps the full
//     horizon with a worker pool partitioning particles per step, and
//     returns trajectories, metrics, and diagnostics.
//
// State machine:
//
//	Afloat ──(coastal ∧ age ∧ Bernoulli)──▶ Beached   (terminal)
//	Afloat ──(non-finite position)────────▶ Invalid   (terminal)
//
// Determinism:
//
//   - Every particle owns an RNG stream derived from (seed, index), so the
//     worker partition never influences the outcome: identical (config,
//     seed) reproduce identical trajectories and metrics at any worker
//     count.
//
// Diagnostics, not exceptions:
//
//   - A non-finite position turns the particle Invalid and increments a
//     counter; it is never silently dropped.
//   - An Afloat particle detected on a land cell after a step signals a
//     masking or integration defect and is recorded as a land hit.
//
// Cancellation is cooperative between time steps: a cancelled Run returns
// everything computed up to the last finished step alongside ctx.Err().
//
// Complexity: one step is O(N) field evaluations; a run is O(N×Steps).
package drift
