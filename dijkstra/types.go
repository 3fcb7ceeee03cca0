// Package dijkstra: options and error definitions.
package dijkstra

import "errors"

// Static complexity labels reported on results for this runner.
// The V² term reflects the unoptimized linear selection scan.
const (
	// TimeComplexity names the asymptotic running time.
	TimeComplexity = "O(V²+E)"

	// SpaceComplexity names the asymptotic working memory.
	SpaceComplexity = "O(V)"
)

// Sentinel errors for Dijkstra execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartNodeNotFound is returned when the start id is absent.
	ErrStartNodeNotFound = errors.New("dijkstra: start node not found")
)

// Option configures Dijkstra behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters of one Dijkstra run.
type Options struct {
	// Target, if non-empty, stops the run when that node is selected and
	// triggers path reconstruction. Empty means finalize every reachable
	// node.
	Target string
}

// DefaultOptions returns Options with no target (full relaxation).
func DefaultOptions() Options {
	return Options{}
}

// WithTarget stops the run once id is selected, reconstructing the
// shortest path to it. An empty id is a no-op (full relaxation).
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}
