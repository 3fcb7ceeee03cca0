// Package core: adjacency-matrix projection — a rendering-support view
// for graphs tagged with AdjacencyMatrixView. It changes nothing about
// algorithm semantics; runners always consume the adjacency list.
package core

// Matrix holds a graph in dense V×V form.
//
// Data[i][j] is the effective weight of the edge between node i and node
// j, or 0 when no edge exists. Because every edge is undirected, the
// matrix is symmetric. Index maps node id → row/column.
//
// Memory: O(V²) — intended for the small interactive graphs this engine
// targets, where matrix-style displays are practical.
type Matrix struct {
	// Index maps node id → row/col index, following node insertion order.
	Index map[string]int

	// IDs holds the node id for each row/col index.
	IDs []string

	// Data is the V×V weight matrix; 0 means no edge.
	Data [][]float64
}

// BuildMatrix converts a graph into its dense matrix view.
//
// Construction:
//  1. Build Index: node id → row/col, in node insertion order.
//  2. Allocate Data as a V×V zero-filled grid.
//  3. For each edge, set Data[i][j] and Data[j][i] to the effective
//     weight (same weight resolution as BuildAdjacency, quirk included).
//
// Returns ErrNilGraph or ErrUnknownNodeReference on invalid input.
// Complexity: O(V² + E) time, O(V²) space.
func BuildMatrix(g *Graph) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := len(g.Nodes)
	m := &Matrix{
		Index: make(map[string]int, n),
		IDs:   make([]string, n),
		Data:  make([][]float64, n),
	}
	for i, node := range g.Nodes {
		m.Index[node.ID] = i
		m.IDs[i] = node.ID
		m.Data[i] = make([]float64, n)
	}

	for _, e := range g.Edges {
		i, ok := m.Index[e.Source]
		if !ok {
			return nil, unknownRef(e, e.Source)
		}
		j, ok := m.Index[e.Target]
		if !ok {
			return nil, unknownRef(e, e.Target)
		}
		w := effectiveWeight(e)
		m.Data[i][j] = w
		m.Data[j][i] = w // symmetric: edges are undirected
	}

	return m, nil
}

// Weight returns the effective weight between two node ids, or 0 when
// either id is unknown or no edge connects them. O(1) lookup.
func (m *Matrix) Weight(a, b string) float64 {
	i, ok := m.Index[a]
	if !ok {
		return 0
	}
	j, ok := m.Index[b]
	if !ok {
		return 0
	}

	return m.Data[i][j]
}
