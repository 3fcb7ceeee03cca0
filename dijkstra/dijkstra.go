// Package dijkstra: the shortest-path runner.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/algostep/algostep/core"
	"github.com/algostep/algostep/trace"
)

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj          *core.Adjacency    // neighbor lookup, read-only
	opts         Options            // run parameters
	dist         map[string]float64 // node id → best known distance from start
	prev         map[string]string  // node id → predecessor ("" = none)
	unvisited    map[string]bool    // nodes whose distance is not final
	visitedOrder []string           // finalized nodes, selection order
	rec          trace.Recorder
}

// Run computes shortest distances from startID over g, recording every
// selection and relaxation as a trace.Step. Distances of unreachable
// nodes remain +Inf in the step snapshots.
//
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input, or a
// core.ErrUnknownNodeReference-wrapping error when the adjacency
// projection cannot be built.
func Run(g *core.Graph, startID string, opts ...Option) ([]trace.Step, error) {
	// 1) Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Apply options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3) Validate the start node.
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	// 4) Build the adjacency projection, fresh for this run.
	adj, err := core.BuildAdjacency(g)
	if err != nil {
		return nil, err
	}

	// 5) Initialize state: dist=+Inf (0 for start), prev="" for all,
	//    every node unvisited.
	n := adj.Len()
	r := &runner{
		adj:          adj,
		opts:         o,
		dist:         make(map[string]float64, n),
		prev:         make(map[string]string, n),
		unvisited:    make(map[string]bool, n),
		visitedOrder: make([]string, 0, n),
	}
	for _, id := range adj.Order() {
		r.dist[id] = math.Inf(1)
		r.prev[id] = ""
		r.unvisited[id] = true
	}
	r.dist[startID] = 0

	// 6) Main loop.
	r.process()

	return r.rec.Steps(), nil
}

// process repeatedly selects the closest unvisited node and relaxes its
// neighbors, until nothing reachable remains or the target is selected.
func (r *runner) process() {
	for len(r.unvisited) > 0 {
		// 1) Selection scan. The scan walks graph node order — not Go's
		//    randomized map order — so ties go to the first node
		//    enumerated, keeping traces deterministic.
		u, ok := r.selectMin()
		if !ok {
			// Every remaining node is unreachable (+Inf). If a target
			// was requested it was never selected: terminal no-path step.
			if r.opts.Target != "" {
				r.record("", nil, "no path found")
			}
			return
		}

		// 2) Finalize u: from here on dist[u] never changes.
		delete(r.unvisited, u)
		r.visitedOrder = append(r.visitedOrder, u)

		// 3) Target selected → reconstruct and stop.
		if r.opts.Target != "" && u == r.opts.Target {
			path := r.pathTo(u)
			r.record(u, path, fmt.Sprintf("target %s reached, distance %g", u, r.dist[u]))
			return
		}

		// 4) Selection step.
		r.record(u, nil, fmt.Sprintf("select %s, distance %g", u, r.dist[u]))

		// 5) Relax every unvisited neighbor of u.
		for _, nb := range r.adj.Neighbors(u) {
			if !r.unvisited[nb.ID] {
				continue
			}
			alt := r.dist[u] + nb.Weight
			if alt < r.dist[nb.ID] {
				r.dist[nb.ID] = alt
				r.prev[nb.ID] = u
				r.record(u, nil, fmt.Sprintf("relax %s to %g via %s", nb.ID, alt, u))
			}
		}
	}
}

// selectMin scans the unvisited set in graph node order and returns the
// first node holding the strictly smallest finite distance.
// ok is false when no unvisited node is reachable.
func (r *runner) selectMin() (string, bool) {
	best := math.Inf(1)
	id := ""
	found := false
	for _, v := range r.adj.Order() {
		if !r.unvisited[v] {
			continue
		}
		if r.dist[v] < best { // strict: first minimum wins ties
			best = r.dist[v]
			id = v
			found = true
		}
	}

	return id, found
}

// pathTo walks the predecessor chain backward from dest and reverses it
// into start→dest order. dest must have been selected (finite distance).
func (r *runner) pathTo(dest string) []string {
	// Collect dest, prev[dest], ... until the chain ends at "".
	rev := []string{}
	for cur := dest; cur != ""; cur = r.prev[cur] {
		rev = append(rev, cur)
	}
	// Reverse in place into forward order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// record appends one step; the distance map is snapshotted so recorded
// steps never alias the live state.
func (r *runner) record(cur string, path []string, desc string) {
	r.rec.Record(trace.Step{
		Current:     cur,
		Visited:     trace.Snap(r.visitedOrder),
		Distances:   trace.SnapMap(r.dist),
		Path:        trace.Snap(path),
		Description: desc,
	})
}
