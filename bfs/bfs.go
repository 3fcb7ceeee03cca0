// Package bfs: the breadth-first search runner.
package bfs

import (
	"fmt"

	"github.com/algostep/algostep/core"
	"github.com/algostep/algostep/trace"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	adj          *core.Adjacency
	opts         Options
	queue        []string        // FIFO frontier, front at index 0
	visitedSet   map[string]bool // membership, filled on discovery
	visitedOrder []string        // snapshot source, discovery order
	rec          trace.Recorder
}

// Run performs breadth-first search on g from startID and returns the
// ordered, immutable step sequence of the traversal.
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

	// 5) Prepare the walker and seed the frontier. The start node is
	//    marked visited immediately (visited-on-discovery).
	n := adj.Len()
	w := &walker{
		adj:          adj,
		opts:         o,
		queue:        make([]string, 0, n),
		visitedSet:   make(map[string]bool, n),
		visitedOrder: make([]string, 0, n),
	}
	w.queue = append(w.queue, startID)
	w.visitedSet[startID] = true
	w.visitedOrder = append(w.visitedOrder, startID)

	// 6) Main loop.
	w.loop()

	// 7) A requested target that was never discovered is unreachable:
	//    not an error, but the trace ends in an explicit terminal step.
	if o.Target != "" && !w.visitedSet[o.Target] {
		w.record("", "no path found")
	}

	return w.rec.Steps(), nil
}

// loop advances the frontier until it empties or the target is dequeued.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		// Dequeue the front of the FIFO frontier.
		cur := w.queue[0]
		w.queue = w.queue[1:]

		// Target check happens before neighbor expansion: a requested
		// target counts as reached only when it is itself dequeued.
		if w.opts.Target != "" && cur == w.opts.Target {
			w.record(cur, fmt.Sprintf("target %s reached", cur))
			return
		}

		// Frontier-advance step.
		w.record(cur, fmt.Sprintf("visit %s", cur))

		// Expand neighbors in adjacency order; each new discovery is
		// marked visited and enqueued immediately, with its own step.
		for _, nb := range w.adj.Neighbors(cur) {
			if w.visitedSet[nb.ID] {
				continue
			}
			w.visitedSet[nb.ID] = true
			w.visitedOrder = append(w.visitedOrder, nb.ID)
			w.queue = append(w.queue, nb.ID)
			w.record(cur, fmt.Sprintf("discover %s via %s", nb.ID, cur))
		}
	}
}

// record appends one step, snapshotting the live visited and frontier
// containers so later mutation cannot corrupt the recorded state.
func (w *walker) record(cur, desc string) {
	w.rec.Record(trace.Step{
		Current:     cur,
		Visited:     trace.Snap(w.visitedOrder),
		Frontier:    trace.Snap(w.queue),
		Description: desc,
	})
}
