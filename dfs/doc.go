// Package dfs provides iterative depth-first search over a core.Graph,
// emitting one trace.Step per first-visit and one per neighbor push.
//
// Semantics that matter for trace consumers:
//
//   - Visited-on-pop: a node joins the visited set when it is popped, not
//     when pushed, so the same node may sit on the stack several times
//     before its first visit. Duplicate pops are skipped silently (no
//     step). This is the standard idiom that avoids an O(1)
//     already-queued check.
//   - Neighbors are pushed in reverse adjacency order, so pop order
//     matches the adjacency list's natural left-to-right order.
//   - Termination: first target match on visit (post dedup, terminal
//     "target reached" step), or stack exhaustion. An unreachable
//     target is not an error; the trace ends with a terminal
//     "no path found" step instead.
//
// Complexity:
//
//   - Time:  O(V + E) — each edge can contribute at most one push per
//     direction.
//   - Space: O(V) visited plus up to O(E) transient stack entries.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartNodeNotFound    if the start id is absent.
//   - core.ErrUnknownNodeReference if an edge names a missing node.
package dfs
