// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph, emitting one trace.Step per node selection and one per
// successful relaxation.
//
// The implementation is the deliberately unoptimized classic: an O(V)
// linear scan selects the next node instead of a priority queue. For the
// small interactive graphs this engine targets that cost is negligible,
// and the scan pins down the tie-break rule that makes traces
// reproducible: when several unvisited nodes share the strictly smallest
// distance, the first one in graph node order wins. An implementation
// targeting large graphs should swap in a heap while preserving exactly
// that tie-break and the same step-emission points.
//
// Loop invariant: once a node is removed from the unvisited set, its
// distance is final.
//
// Termination:
//
//   - The scan finds no reachable node (minimum still +Inf): remaining
//     nodes are unreachable; if a target was requested, a terminal
//     "no path found" step is emitted.
//   - The target becomes the selected node: the path is reconstructed by
//     walking predecessors and a terminal step carries it.
//
// Complexity:
//
//   - Time:  O(V² + E) — V selection scans of O(V) plus edge relaxations.
//   - Space: O(V) — distance, predecessor and unvisited maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartNodeNotFound    if the start id is absent.
//   - core.ErrUnknownNodeReference if an edge names a missing node.
package dijkstra
