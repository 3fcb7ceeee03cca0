// Package astar implements A* search over a core.Graph, emitting one
// trace.Step per node expansion and one per g/f-score update.
//
// A* is the only runner that requires a target: without one there is
// nothing for the heuristic to aim at, and Run fails with
// ErrMissingTarget.
//
// Heuristic:
//
//	Manhattan distance |Δx| + |Δy| between node coordinates. When either
//	endpoint has no coordinates the heuristic degrades to a constant 1.
//	That fallback keeps the search running on unpositioned graphs but
//	forfeits A*'s speed advantage and is not a guarantee of optimality —
//	treat it as a fallback, not a contract.
//
// Selection uses the same deliberately unoptimized linear scan as
// package dijkstra, with the same tie-break: the open-set member with
// the lowest f-score that appears first in graph node order wins. A
// heap-backed variant must preserve that rule to keep traces
// reproducible.
//
// Complexity:
//
//   - Time:  O(E log V) labels the idealized heap-backed case; the naive
//     scan degrades this, the same caveat as package dijkstra.
//   - Space: O(V) — score, predecessor and membership maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartNodeNotFound    if the start id is absent.
//   - ErrMissingTarget        if no target id is supplied.
//   - ErrTargetNodeNotFound   if the target id is absent.
//   - core.ErrUnknownNodeReference if an edge names a missing node.
package astar
