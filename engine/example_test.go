// Package engine_test provides a runnable example for the boundary API.
package engine_test

import (
	"fmt"
	"strings"

	"github.com/algostep/algostep/core"
	"github.com/algostep/algostep/engine"
)

// ExampleRun runs Dijkstra over a 5-node cycle through the engine
// boundary and replays the finished trace backwards.
func ExampleRun() {
	g := &core.Graph{
		Name: "ring",
		Nodes: []core.Node{
			{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"},
		},
		Edges: []core.Edge{
			{ID: "e0", Source: "A", Target: "B", Weight: 1},
			{ID: "e1", Source: "B", Target: "C", Weight: 1},
			{ID: "e2", Source: "C", Target: "D", Weight: 1},
			{ID: "e3", Source: "D", Target: "E", Weight: 1},
			{ID: "e4", Source: "E", Target: "A", Weight: 1},
		},
	}

	res, err := engine.Run(engine.Request{
		Algorithm:    engine.Dijkstra,
		Graph:        g,
		StartNodeID:  "A",
		TargetNodeID: "D",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("algorithm:", res.Algorithm)
	fmt.Println("time:", res.TimeComplexity, "space:", res.SpaceComplexity)
	fmt.Println("steps:", len(res.Steps))

	last := res.Steps[len(res.Steps)-1]
	fmt.Println("path:", strings.Join(last.Path, "→"))

	// Step backwards through the finished trace — no recomputation.
	c := res.Cursor()
	_ = c.Seek(len(res.Steps) - 1)
	s, _ := c.Prev()
	fmt.Println("one step back:", s.Description)
	// Output:
	// algorithm: dijkstra
	// time: O(V²+E) space: O(V)
	// steps: 9
	// path: A→E→D
	// one step back: select C, distance 2
}
