// Package dijkstra_test provides runnable examples for the Dijkstra
// runner.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/algostep/algostep/core"
	"github.com/algostep/algostep/dijkstra"
)

// ExampleRun demonstrates shortest-path search on a triangle where the
// direct edge A—C is more expensive than the detour through B, and shows
// every selection and relaxation the runner records.
func ExampleRun() {
	// 1) Triangle: A—B(1), B—C(2), A—C(5).
	g := &core.Graph{
		Name:  "triangle",
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []core.Edge{
			{ID: "e0", Source: "A", Target: "B", Weight: 1},
			{ID: "e1", Source: "B", Target: "C", Weight: 2},
			{ID: "e2", Source: "A", Target: "C", Weight: 5},
		},
	}

	// 2) Run from A toward C.
	steps, err := dijkstra.Run(g, "A", dijkstra.WithTarget("C"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The trace shows C first reached at cost 5, then improved to 3.
	for _, s := range steps {
		fmt.Println(s.Description)
	}
	fmt.Println("path:", strings.Join(steps[len(steps)-1].Path, "→"))
	// Output:
	// select A, distance 0
	// relax B to 1 via A
	// relax C to 5 via A
	// select B, distance 1
	// relax C to 3 via B
	// target C reached, distance 3
	// path: A→B→C
}
