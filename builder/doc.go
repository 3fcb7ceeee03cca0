// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// Package builder constructs preset core.Graph values — the "template
// graphs" an interactive editor offers and the fixtures tests lean on:
// cycles, paths, stars, complete graphs, coordinate-bearing grids, and
// seeded random sparse graphs.
//
// Design contract (strict):
//   - Determinism: same parameters, options and seed ⇒ identical graphs,
//     node ids, edge ids and weights.
//   - Constructors validate early and return sentinel errors; no panics
//     at runtime (validation panics are confined to option constructors).
//   - Id schemes are pluggable: decimal ("0","1",…), letters ("A","B",…)
//     or UUIDs. Weight schemes likewise: constant, fixed value, or
//     uniform random from the configured RNG.
//   - Grid(rows, cols) assigns unit-spaced 2-D coordinates to every node,
//     producing the natural positioned fixture for A*'s Manhattan
//     heuristic.
//
// Errors:
//
//	ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource,
//	ErrOptionViolation — branch with errors.Is.
package builder
