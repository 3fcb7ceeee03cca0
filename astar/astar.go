// Package astar: the A* search runner.
package astar

import (
	"fmt"
	"math"

	"github.com/algostep/algostep/core"
	"github.com/algostep/algostep/trace"
)

// runner holds the mutable state for a single A* execution.
type runner struct {
	adj         *core.Adjacency
	pos         map[string]*core.Point // node id → coordinates (nil = unpositioned)
	target      string
	open        map[string]bool    // frontier membership
	closed      map[string]bool    // finalized membership
	closedOrder []string           // finalized nodes, expansion order
	gScore      map[string]float64 // cost from start
	fScore      map[string]float64 // gScore + heuristic
	prev        map[string]string  // predecessor chain ("" = none)
	rec         trace.Recorder
}

// Run performs A* search on g from startID toward targetID and returns
// the ordered, immutable step sequence. A target is mandatory.
//
// Returns ErrGraphNil, ErrMissingTarget, ErrStartNodeNotFound or
// ErrTargetNodeNotFound for invalid input, or a
// core.ErrUnknownNodeReference-wrapping error when the adjacency
// projection cannot be built. An unreachable target is NOT an error: the
// trace then ends in a terminal "no path found" step.
func Run(g *core.Graph, startID, targetID string) ([]trace.Step, error) {
	// 1) Validate inputs, target first: A* is meaningless without one.
	if targetID == "" {
		return nil, ErrMissingTarget
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}
	if !g.HasNode(targetID) {
		return nil, ErrTargetNodeNotFound
	}

	// 2) Build the adjacency projection, fresh for this run.
	adj, err := core.BuildAdjacency(g)
	if err != nil {
		return nil, err
	}

	// 3) Initialize state: open={start}, closed={}, g/f=+Inf everywhere
	//    except the start (g=0, f=h(start)).
	n := adj.Len()
	r := &runner{
		adj:         adj,
		pos:         make(map[string]*core.Point, n),
		target:      targetID,
		open:        make(map[string]bool, n),
		closed:      make(map[string]bool, n),
		closedOrder: make([]string, 0, n),
		gScore:      make(map[string]float64, n),
		fScore:      make(map[string]float64, n),
		prev:        make(map[string]string, n),
	}
	for _, node := range g.Nodes {
		r.pos[node.ID] = node.Pos
		r.gScore[node.ID] = math.Inf(1)
		r.fScore[node.ID] = math.Inf(1)
		r.prev[node.ID] = ""
	}
	r.open[startID] = true
	r.gScore[startID] = 0
	r.fScore[startID] = r.heuristic(startID, targetID)

	// 4) Main loop.
	r.process()

	return r.rec.Steps(), nil
}

// process expands the lowest-f open node until the target is selected or
// the open set empties.
func (r *runner) process() {
	for len(r.open) > 0 {
		// 1) Select the open member with the lowest f-score; ties go to
		//    the first node in graph node order, same rule as Dijkstra.
		cur := r.selectMin()

		// 2) Target selected → reconstruct the path and stop.
		if cur == r.target {
			path := r.pathTo(cur)
			r.record(cur, path, fmt.Sprintf("target %s reached, cost %g", cur, r.gScore[cur]))
			return
		}

		// 3) Move cur from open to closed; its g-score is now final.
		delete(r.open, cur)
		r.closed[cur] = true
		r.closedOrder = append(r.closedOrder, cur)
		r.record(cur, nil, fmt.Sprintf("expand %s, f=%g", cur, r.fScore[cur]))

		// 4) Score every non-closed neighbor.
		for _, nb := range r.adj.Neighbors(cur) {
			if r.closed[nb.ID] {
				continue
			}
			tentative := r.gScore[cur] + nb.Weight
			discovered := !r.open[nb.ID]
			if !discovered && tentative >= r.gScore[nb.ID] {
				continue // known node, no improvement
			}
			r.open[nb.ID] = true
			r.prev[nb.ID] = cur
			r.gScore[nb.ID] = tentative
			r.fScore[nb.ID] = tentative + r.heuristic(nb.ID, r.target)
			if discovered {
				r.record(cur, nil, fmt.Sprintf("discover %s, g=%g, f=%g", nb.ID, r.gScore[nb.ID], r.fScore[nb.ID]))
			} else {
				r.record(cur, nil, fmt.Sprintf("improve %s, g=%g, f=%g", nb.ID, r.gScore[nb.ID], r.fScore[nb.ID]))
			}
		}
	}

	// 5) Open set exhausted without reaching the target.
	r.record("", nil, "no path found")
}

// heuristic estimates the remaining cost from a to b: Manhattan distance
// over coordinates, or a constant 1 when either node is unpositioned.
func (r *runner) heuristic(a, b string) float64 {
	pa, pb := r.pos[a], r.pos[b]
	if pa == nil || pb == nil {
		return 1 // unpositioned fallback, admissibility not guaranteed
	}

	return math.Abs(pa.X-pb.X) + math.Abs(pa.Y-pb.Y)
}

// selectMin scans the open set in graph node order and returns the first
// member holding the strictly smallest f-score. Callers only invoke it
// with a non-empty open set.
func (r *runner) selectMin() string {
	best := math.Inf(1)
	id := ""
	for _, v := range r.adj.Order() {
		if !r.open[v] {
			continue
		}
		if id == "" || r.fScore[v] < best { // strict: first minimum wins ties
			best = r.fScore[v]
			id = v
		}
	}

	return id
}

// pathTo walks the predecessor chain backward from dest and reverses it
// into start→dest order.
func (r *runner) pathTo(dest string) []string {
	rev := []string{}
	for cur := dest; cur != ""; cur = r.prev[cur] {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// openSnapshot lists open-set members in graph node order.
func (r *runner) openSnapshot() []string {
	out := make([]string, 0, len(r.open))
	for _, v := range r.adj.Order() {
		if r.open[v] {
			out = append(out, v)
		}
	}

	return out
}

// record appends one step; the f-score map and open set are snapshotted
// so recorded steps never alias the live state.
func (r *runner) record(cur string, path []string, desc string) {
	r.rec.Record(trace.Step{
		Current:     cur,
		Visited:     trace.Snap(r.closedOrder),
		Frontier:    r.openSnapshot(),
		Distances:   trace.SnapMap(r.fScore),
		Path:        trace.Snap(path),
		Description: desc,
	})
}
