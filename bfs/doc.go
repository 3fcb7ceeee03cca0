// Package bfs provides breadth-first search over a core.Graph, emitting
// one trace.Step per frontier advance and one per neighbor discovery.
//
// BFS explores nodes in level order from a start node. It reports
// reachability and visit order only — no path reconstruction, and no
// shortest-path claim in edge-weighted terms.
//
// Semantics that matter for trace consumers:
//
//   - Visited-on-discovery: a neighbor is marked visited the moment it is
//     enqueued, so the visited set can include nodes not yet processed.
//     This prevents duplicate enqueues.
//   - The target check happens on dequeue, before neighbor expansion. A
//     target that is discovered as a neighbor is therefore reported only
//     when it is itself dequeued, not when first seen.
//   - Termination: frontier empty, or target dequeued (terminal
//     "target reached" step). An unreachable target is not an error;
//     the trace ends with a terminal "no path found" step instead.
//
// Complexity:
//
//   - Time:  O(V + E) — each node is enqueued at most once, each edge
//     inspected at most twice.
//   - Space: O(V) — visited set and queue.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartNodeNotFound    if the start id is absent.
//   - core.ErrUnknownNodeReference if an edge names a missing node.
package bfs
