// Package trace defines the replayable record of an algorithm run: the
// Step snapshot, the Recorder that enforces the copy-on-record rule, and
// the Cursor that navigates a finished trace forward and backward.
//
// The trace is an immutable, append-only log. Each Step owns independent
// copies of its visited set, frontier and distance map — never views into
// a runner's live working state — so stepping back to any past index
// re-renders exactly the state the algorithm was in, without re-running
// anything.
//
// Concurrency: a finished trace is fully immutable, so a caller may hold
// and navigate an old Cursor while requesting a new run; no shared
// mutable state crosses run boundaries. The Cursor itself is a plain
// single-consumer value (one cursor per viewer; cursors are cheap).
package trace
