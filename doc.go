// Package driftcast simulates buoyant-particle drift across an idealized
// ocean basin and plans near-optimal steering policies over the same domain.
//
// 🌊 What is driftcast?
//
//	A pure-Go toolkit that brings together:
//		• mask    — rasterized land/ocean grids with BFS-derived coastal bands
//		• field   — a synthetic, time-dependent current field (gyre, boundary
//		            current, eastward continuation, windage, seasonal ramp)
//		• drift   — RK4 particle integration with stochastic diffusion and an
//		            absorbing beaching state machine, parallel across particles
//		• mdp     — a grid Markov Decision Process solved by value iteration,
//		            plus a deterministic policy path extractor
//		• config  — YAML run/solve configuration with defaulting & validation
//		• release — tagged coastal/inland release points with seed lookup
//
// ✨ Why choose driftcast?
//
//   - Deterministic — identical (config, seed) always reproduces identical
//     trajectories, metrics, values, and policies
//   - Side-effect free — immutable parameter values, no module-level state,
//     grids and policies are freely shareable across goroutines
//   - Honest failures — typed sentinel errors, per-particle diagnostics,
//     and explicit non-convergence reporting instead of silent fallbacks
//
// Dependency order, leaves first:
//
//	geo → mask → {field, mdp} → drift
//
// Quick tour:
//
//	grid, _ := mask.Build(mask.SyntheticBasin(), mask.DefaultOptions())
//	res, _ := drift.Run(ctx, drift.Config{Grid: grid, Field: field.DefaultParams(), ...})
//	sol, _ := mdp.Solve(ctx, mdp.Config{Grid: grid, Field: field.DefaultParams(), ...})
//	path, _ := mdp.ExtractPath(sol.Policy, startLat, startLon, 73)
package driftcast
