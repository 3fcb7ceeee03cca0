// Package core defines the value types every runner consumes — Node, Edge,
// Graph — and the derived projections built from them: the adjacency list
// (the neighbor-lookup structure all four algorithms iterate) and the
// adjacency matrix (a rendering-support view for matrix-style displays).
//
// Design contract:
//
//   - Graphs are immutable by convention once handed to a runner. The
//     engine never mutates caller-owned Node/Edge slices; projections copy
//     what they need.
//   - Every edge is undirected: BuildAdjacency appends each edge to both
//     endpoints' neighbor lists.
//   - Projections are derived, never persisted: build one per run, discard
//     it when the run's trace has been consumed. Nothing in this package
//     caches state between calls.
//
// Weight resolution:
//
//	An edge's effective weight is its declared Weight when non-zero, else 1.
//	A declared weight of exactly 0 is therefore treated as 1 — a documented
//	quirk of the system this engine replays for, preserved deliberately.
//	Negative weights are out of contract and pass through unchecked.
//
// Errors:
//
//	ErrUnknownNodeReference — an edge names a node id absent from the
//	node list; projection build fails before any algorithm runs.
package core
