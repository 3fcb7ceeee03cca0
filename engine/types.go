// Package engine: boundary types — Algorithm tags, Request and Result.
package engine

import (
	"errors"
	"time"

	"github.com/algostep/algostep/core"
	"github.com/algostep/algostep/trace"
)

// ErrUnknownAlgorithm is returned for an unrecognized algorithm tag.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

// Algorithm selects which runner a Request executes.
type Algorithm string

// Supported algorithm tags.
const (
	// BFS is breadth-first search.
	BFS Algorithm = "bfs"

	// DFS is depth-first search.
	DFS Algorithm = "dfs"

	// Dijkstra is Dijkstra's shortest-path algorithm.
	Dijkstra Algorithm = "dijkstra"

	// AStar is A* search. It is the only tag requiring TargetNodeID.
	AStar Algorithm = "astar"
)

// Request describes one algorithm run over a caller-owned graph.
// The engine never mutates the graph's node/edge slices.
type Request struct {
	// Algorithm selects the runner.
	Algorithm Algorithm

	// Graph is the immutable graph description to run over.
	Graph *core.Graph

	// StartNodeID is the node the search starts from.
	StartNodeID string

	// TargetNodeID is optional for bfs/dfs/dijkstra (empty = run to
	// exhaustion) and mandatory for astar.
	TargetNodeID string
}

// Result is the fully materialized outcome of one run: the complete
// ordered step sequence plus the run's metadata. Immutable once
// returned.
type Result struct {
	// ID is a generated unique id for this run.
	ID string

	// Algorithm is the tag that produced this result.
	Algorithm Algorithm

	// StartNodeID echoes the request's start node.
	StartNodeID string

	// TargetNodeID echoes the request's target node ("" when absent).
	TargetNodeID string

	// Steps is the full ordered trace of the run.
	Steps []trace.Step

	// Duration is the measured wall-clock cost of the runner call.
	Duration time.Duration

	// TimeComplexity is the algorithm's static asymptotic time label.
	TimeComplexity string

	// SpaceComplexity is the algorithm's static asymptotic space label.
	SpaceComplexity string
}

// Cursor returns a fresh replay cursor over the result's steps. Each
// call yields an independent cursor; the underlying steps are shared
// and immutable.
func (r *Result) Cursor() *trace.Cursor {
	return trace.NewCursor(r.Steps)
}
