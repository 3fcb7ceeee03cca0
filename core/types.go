// Package core declares Node, Edge, Graph, the Representation hint,
// and the sentinel errors shared by the projection builders.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNodeReference indicates an edge referenced a node id
	// that does not appear in the graph's node list.
	ErrUnknownNodeReference = errors.New("core: edge references unknown node")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Representation is a purely visual hint telling a renderer how to draw
// the graph's structure. It has no effect on algorithm semantics.
type Representation string

// Supported representation hints.
const (
	// AdjacencyListView renders the graph as per-node neighbor lists.
	AdjacencyListView Representation = "adjacency-list"

	// AdjacencyMatrixView renders the graph as a dense V×V weight matrix.
	AdjacencyMatrixView Representation = "adjacency-matrix"
)

// Point is a 2-D coordinate used only as heuristic input for A*.
type Point struct {
	X float64
	Y float64
}

// Node represents a vertex in the graph.
//
// ID uniquely identifies this Node within its Graph. A Node is immutable
// once passed to the engine.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Label is the display text shown by renderers; defaults to ID if empty.
	Label string

	// Pos holds optional 2-D coordinates. nil means unpositioned:
	// A*'s heuristic then degrades to a constant (see package astar).
	Pos *Point

	// Color is an optional display color; ignored by every algorithm.
	Color string
}

// Edge represents an undirected connection between two nodes.
//
// Source and Target are labels only, not a direction: (Source, Target)
// and (Target, Source) denote the same connection.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// Source is one endpoint's node ID.
	Source string

	// Target is the other endpoint's node ID.
	Target string

	// Weight is the traversal cost. The zero value means "unspecified"
	// and resolves to 1 at projection build time.
	Weight float64

	// Label is an optional display label; ignored by every algorithm.
	Label string
}

// Graph is an immutable description of a small weighted undirected graph.
//
// Node and Edge order is irrelevant to correctness but relevant to
// determinism: tie-breaks in Dijkstra/A* follow Nodes order, and the
// default start/target picks of interactive editors follow it too.
type Graph struct {
	// ID uniquely identifies the graph.
	ID string

	// Name is the human-facing graph title.
	Name string

	// Description is optional free-form text.
	Description string

	// Nodes is the ordered node list. Insertion order is preserved.
	Nodes []Node

	// Edges is the ordered edge list.
	Edges []Edge

	// Representation is a rendering hint (list vs. matrix); it never
	// changes what any algorithm computes.
	Representation Representation
}

// Node returns the node with the given id and whether it exists.
// Time complexity: O(V) — graphs here are small interactive ones.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes { // linear scan in insertion order
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Node(id)
	return ok
}

// NodeIDs returns a fresh slice of node ids in insertion order.
// The caller may mutate the returned slice freely.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes)) // fresh copy, never a view
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}

	return ids
}
