// Package engine is the boundary the editor UI and persistence layer
// call: one request in — algorithm tag, graph, start node, optional
// target — one fully materialized Result out.
//
// The engine runs the selected algorithm to completion before returning,
// then wraps the pure step sequence with the concerns the runners
// deliberately do not have: wall-clock duration (measured around the
// runner call, never inside it, so step sequences stay deterministic),
// the static complexity labels, and a generated run id.
//
// A returned Result is immutable and self-contained: a caller may hold
// and replay an old Result's cursor while requesting a new run — no
// shared mutable state crosses run boundaries.
//
// Errors:
//
//   - ErrUnknownAlgorithm for an unrecognized algorithm tag;
//   - every runner sentinel passes through unchanged (astar.ErrMissingTarget,
//     core.ErrUnknownNodeReference, the per-runner nil-graph and
//     start-not-found sentinels).
//
// There is no partial-result contract: either a full Result is returned
// or the call fails before any step is recorded.
package engine
