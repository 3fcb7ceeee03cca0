// Package engine: request dispatch and result assembly.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/algostep/algostep/astar"
	"github.com/algostep/algostep/bfs"
	"github.com/algostep/algostep/dfs"
	"github.com/algostep/algostep/dijkstra"
	"github.com/algostep/algostep/trace"
)

// Run executes req's algorithm to completion and returns the fully
// materialized Result.
//
// Routing:
//   - bfs/dfs/dijkstra tolerate an empty TargetNodeID (run to exhaustion);
//   - astar requires one and surfaces astar.ErrMissingTarget otherwise;
//   - any other tag fails with ErrUnknownAlgorithm.
//
// Timing is measured here, around the pure runner call, so the runners
// stay clock-free and their step sequences deterministic.
func Run(req Request) (*Result, error) {
	var (
		steps    []trace.Step
		err      error
		timeCpx  string
		spaceCpx string
	)

	// Dispatch by tag; each branch records the runner's static labels.
	start := time.Now()
	switch req.Algorithm {
	case BFS:
		steps, err = bfs.Run(req.Graph, req.StartNodeID, bfs.WithTarget(req.TargetNodeID))
		timeCpx, spaceCpx = bfs.TimeComplexity, bfs.SpaceComplexity
	case DFS:
		steps, err = dfs.Run(req.Graph, req.StartNodeID, dfs.WithTarget(req.TargetNodeID))
		timeCpx, spaceCpx = dfs.TimeComplexity, dfs.SpaceComplexity
	case Dijkstra:
		steps, err = dijkstra.Run(req.Graph, req.StartNodeID, dijkstra.WithTarget(req.TargetNodeID))
		timeCpx, spaceCpx = dijkstra.TimeComplexity, dijkstra.SpaceComplexity
	case AStar:
		steps, err = astar.Run(req.Graph, req.StartNodeID, req.TargetNodeID)
		timeCpx, spaceCpx = astar.TimeComplexity, astar.SpaceComplexity
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	elapsed := time.Since(start)

	if err != nil {
		return nil, err
	}

	return &Result{
		ID:              uuid.NewString(),
		Algorithm:       req.Algorithm,
		StartNodeID:     req.StartNodeID,
		TargetNodeID:    req.TargetNodeID,
		Steps:           steps,
		Duration:        elapsed,
		TimeComplexity:  timeCpx,
		SpaceComplexity: spaceCpx,
	}, nil
}
