// Package dfs: the depth-first search runner.
package dfs

import (
	"fmt"

	"github.com/algostep/algostep/core"
	"github.com/algostep/algostep/trace"
)

// walker encapsulates mutable DFS state for one run.
type walker struct {
	adj          *core.Adjacency
	opts         Options
	stack        []string        // LIFO frontier, top at the end
	visitedSet   map[string]bool // membership, filled on pop
	visitedOrder []string        // snapshot source, visit order
	rec          trace.Recorder
}

// Run performs iterative depth-first search on g from startID and
// returns the ordered, immutable step sequence of the traversal.
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

	// 5) Prepare the walker and seed the stack. Unlike BFS, the start is
	//    NOT pre-marked: the visited set fills on pop.
	n := adj.Len()
	w := &walker{
		adj:          adj,
		opts:         o,
		stack:        append(make([]string, 0, n), startID),
		visitedSet:   make(map[string]bool, n),
		visitedOrder: make([]string, 0, n),
	}

	// 6) Main loop.
	w.loop()

	// 7) A requested target that was never visited is unreachable: not
	//    an error, but the trace ends in an explicit terminal step.
	if o.Target != "" && !w.visitedSet[o.Target] {
		w.record("", "no path found")
	}

	return w.rec.Steps(), nil
}

// loop pops until the stack empties or the target is first visited.
func (w *walker) loop() {
	for len(w.stack) > 0 {
		// Pop the top of the LIFO frontier.
		cur := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Duplicate pops are possible (a node may be pushed several
		// times before its first visit); skip them without a step.
		if w.visitedSet[cur] {
			continue
		}
		w.visitedSet[cur] = true
		w.visitedOrder = append(w.visitedOrder, cur)

		// Target check on visit, after dedup.
		if w.opts.Target != "" && cur == w.opts.Target {
			w.record(cur, fmt.Sprintf("target %s reached", cur))
			return
		}

		// First-visit step.
		w.record(cur, fmt.Sprintf("visit %s", cur))

		// Push unvisited neighbors in reverse adjacency order so that
		// pop order matches the adjacency list left-to-right.
		nbs := w.adj.Neighbors(cur)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if w.visitedSet[nb.ID] {
				continue
			}
			w.stack = append(w.stack, nb.ID)
			w.record(cur, fmt.Sprintf("push %s via %s", nb.ID, cur))
		}
	}
}

// record appends one step with snapshots of the live containers.
func (w *walker) record(cur, desc string) {
	w.rec.Record(trace.Step{
		Current:     cur,
		Visited:     trace.Snap(w.visitedOrder),
		Frontier:    trace.Snap(w.stack),
		Description: desc,
	})
}
