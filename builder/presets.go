// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// presets.go — the deterministic preset constructors.
//
// Every constructor:
//   - validates its size parameters first (fail fast, sentinel errors);
//   - draws node ids once via cfg.nodeIDs (UUID schemes are not
//     idempotent);
//   - emits nodes in ascending index order and edges in a documented
//     stable order, so identical inputs yield identical graphs.

package builder

import (
	"fmt"

	"github.com/algostep/algostep/core"
)

// Minimum sizes per constructor (no magic numbers).
const (
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 3
	minCompleteNodes = 2
	minGridSide      = 2
)

// Cycle builds an n-node simple cycle C_n: edges i—(i+1) for i<n-1 plus
// the closing edge (n-1)—0.
// Returns ErrTooFewNodes when n < 3.
// Complexity: O(n) nodes + O(n) edges.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	g := cfg.newGraph(fmt.Sprintf("cycle-%d", n), n, n)

	ids := cfg.nodeIDs(n)
	for _, id := range ids {
		g.Nodes = append(g.Nodes, cfg.node(id))
	}
	for i := 0; i < n; i++ {
		g.Edges = append(g.Edges, cfg.edge(i, ids[i], ids[(i+1)%n]))
	}

	return g, nil
}

// Path builds an n-node simple path P_n: edges i—(i+1) for i<n-1.
// Returns ErrTooFewNodes when n < 2.
// Complexity: O(n).
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	g := cfg.newGraph(fmt.Sprintf("path-%d", n), n, n-1)

	ids := cfg.nodeIDs(n)
	for _, id := range ids {
		g.Nodes = append(g.Nodes, cfg.node(id))
	}
	for i := 0; i < n-1; i++ {
		g.Edges = append(g.Edges, cfg.edge(i, ids[i], ids[i+1]))
	}

	return g, nil
}

// Star builds an n-node star S_n: node 0 is the hub, edges 0—i for
// every i ≥ 1.
// Returns ErrTooFewNodes when n < 3.
// Complexity: O(n).
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	g := cfg.newGraph(fmt.Sprintf("star-%d", n), n, n-1)

	ids := cfg.nodeIDs(n)
	for _, id := range ids {
		g.Nodes = append(g.Nodes, cfg.node(id))
	}
	for i := 1; i < n; i++ {
		g.Edges = append(g.Edges, cfg.edge(i-1, ids[0], ids[i]))
	}

	return g, nil
}

// Complete builds the complete graph K_n: one edge per unordered pair,
// emitted in ascending (i,j) order.
// Returns ErrTooFewNodes when n < 2.
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	g := cfg.newGraph(fmt.Sprintf("complete-%d", n), n, n*(n-1)/2)

	ids := cfg.nodeIDs(n)
	for _, id := range ids {
		g.Nodes = append(g.Nodes, cfg.node(id))
	}
	e := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.Edges = append(g.Edges, cfg.edge(e, ids[i], ids[j]))
			e++
		}
	}

	return g, nil
}

// Grid builds a rows×cols lattice with 4-neighborhood edges. Every node
// carries unit-spaced coordinates (col, row), making grids the natural
// positioned fixture for A*'s Manhattan heuristic. Nodes are emitted in
// row-major order; each node links right and down, so edge order is
// row-major too.
// Returns ErrTooFewNodes when rows < 2 or cols < 2.
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("Grid: %dx%d < min side %d: %w", rows, cols, minGridSide, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	n := rows * cols
	g := cfg.newGraph(fmt.Sprintf("grid-%dx%d", rows, cols), n, 2*n)

	ids := cfg.nodeIDs(n)
	for i, id := range ids {
		node := cfg.node(id)
		node.Pos = &core.Point{X: float64(i % cols), Y: float64(i / cols)}
		g.Nodes = append(g.Nodes, node)
	}
	e := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if c+1 < cols { // right neighbor
				g.Edges = append(g.Edges, cfg.edge(e, ids[i], ids[i+1]))
				e++
			}
			if r+1 < rows { // down neighbor
				g.Edges = append(g.Edges, cfg.edge(e, ids[i], ids[i+cols]))
				e++
			}
		}
	}

	return g, nil
}

// RandomSparse builds an n-node graph where each unordered pair carries
// an edge with probability p, drawn from the configured RNG. A seeded
// RNG is mandatory: determinism is part of the builder contract.
// Returns ErrTooFewNodes when n < 2, ErrInvalidProbability when p is
// outside [0,1], ErrNeedRandSource without WithSeed/WithRand.
// Complexity: O(n²).
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}
	g := cfg.newGraph(fmt.Sprintf("sparse-%d", n), n, 0)

	ids := cfg.nodeIDs(n)
	for _, id := range ids {
		g.Nodes = append(g.Nodes, cfg.node(id))
	}
	e := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			g.Edges = append(g.Edges, cfg.edge(e, ids[i], ids[j]))
			e++
		}
	}

	return g, nil
}
