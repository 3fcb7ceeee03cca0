// Package core: adjacency projection — the neighbor-lookup structure
// every runner consumes. Built fresh per run, never cached.
package core

import "fmt"

// Neighbor is one entry of a node's adjacency list: the node on the far
// side of an edge plus that edge's effective weight.
type Neighbor struct {
	// ID is the neighboring node's id.
	ID string

	// Weight is the effective traversal cost of the connecting edge.
	Weight float64
}

// Adjacency is the derived neighbor-lookup projection of a Graph:
// node id → ordered neighbor list, plus the node-order slice that the
// deterministic min-selection scans in Dijkstra/A* iterate.
//
// Invariants:
//   - every node of the source graph has an entry (possibly empty);
//   - neighbor lists follow edge insertion order;
//   - for every pair, lists[a] contains b iff lists[b] contains a.
type Adjacency struct {
	// order holds node ids in graph insertion order.
	order []string

	// lists maps node id → neighbor list.
	lists map[string][]Neighbor
}

// effectiveWeight resolves an edge's declared weight to the weight the
// algorithms use: the declared value when non-zero, else 1.
//
// A declared weight of exactly 0 therefore becomes 1. This mirrors the
// system this engine produces traces for, where unspecified and zero
// weights are indistinguishable; it is preserved as a documented quirk,
// not silently corrected. Negative weights pass through unchecked.
func effectiveWeight(e Edge) float64 {
	if e.Weight == 0 {
		return 1
	}

	return e.Weight
}

// unknownRef wraps ErrUnknownNodeReference with the offending edge and
// endpoint so callers can log which reference failed while still
// branching on the sentinel via errors.Is.
func unknownRef(e Edge, nodeID string) error {
	return fmt.Errorf("%w: edge %q endpoint %q", ErrUnknownNodeReference, e.ID, nodeID)
}

// BuildAdjacency converts a graph's node/edge lists into an Adjacency
// projection. Every edge is treated as bidirectional: it is appended to
// both endpoints' neighbor lists.
//
// Returns ErrNilGraph for a nil graph, or ErrUnknownNodeReference
// (wrapped with the offending edge and node id) when an edge names a
// node absent from g.Nodes.
//
// Complexity: O(V + E) time, O(V + E) space. The input graph is never
// mutated; the projection owns all of its storage.
func BuildAdjacency(g *Graph) (*Adjacency, error) {
	// 1) Validate input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Initialize an empty neighbor list for every node, in node order.
	adj := &Adjacency{
		order: make([]string, 0, len(g.Nodes)),
		lists: make(map[string][]Neighbor, len(g.Nodes)),
	}
	for _, n := range g.Nodes {
		adj.order = append(adj.order, n.ID)
		adj.lists[n.ID] = []Neighbor{}
	}

	// 3) Append each edge to both endpoints' lists, realizing the
	//    bidirectional contract. Unknown endpoints fail the build.
	for _, e := range g.Edges {
		if _, ok := adj.lists[e.Source]; !ok {
			return nil, unknownRef(e, e.Source)
		}
		if _, ok := adj.lists[e.Target]; !ok {
			return nil, unknownRef(e, e.Target)
		}
		w := effectiveWeight(e)
		adj.lists[e.Source] = append(adj.lists[e.Source], Neighbor{ID: e.Target, Weight: w})
		adj.lists[e.Target] = append(adj.lists[e.Target], Neighbor{ID: e.Source, Weight: w})
	}

	return adj, nil
}

// Order returns node ids in graph insertion order. The returned slice is
// the projection's own; callers must treat it as read-only.
func (a *Adjacency) Order() []string {
	return a.order
}

// Neighbors returns the ordered neighbor list of id (nil for unknown ids).
// The returned slice is the projection's own; callers must not append to
// or reorder it.
func (a *Adjacency) Neighbors(id string) []Neighbor {
	return a.lists[id]
}

// Len returns the number of nodes in the projection.
func (a *Adjacency) Len() int {
	return len(a.order)
}
