// Package bfs_test provides runnable examples for the BFS runner.
package bfs_test

import (
	"fmt"

	"github.com/algostep/algostep/bfs"
	"github.com/algostep/algostep/core"
)

// ExampleRun demonstrates a full traversal of the path A—B—C and shows
// the step-by-step trace the runner records.
func ExampleRun() {
	// 1) Describe the graph: three nodes in a line, unit weights.
	g := &core.Graph{
		Name:  "path-3",
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []core.Edge{
			{ID: "e0", Source: "A", Target: "B"},
			{ID: "e1", Source: "B", Target: "C"},
		},
	}

	// 2) Run BFS from A with no target (traverse to exhaustion).
	steps, err := bfs.Run(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Every observable transition is one step.
	for _, s := range steps {
		fmt.Println(s.Description)
	}
	// Output:
	// visit A
	// discover B via A
	// visit B
	// discover C via B
	// visit C
}
