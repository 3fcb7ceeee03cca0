// Package dfs: options and error definitions for depth-first search.
package dfs

import "errors"

// Static complexity labels reported on results for this runner.
const (
	// TimeComplexity names the asymptotic running time.
	TimeComplexity = "O(V+E)"

	// SpaceComplexity names the asymptotic working memory.
	SpaceComplexity = "O(V)"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start id is absent.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters of one DFS run.
type Options struct {
	// Target, if non-empty, stops the search at its first visit.
	// Empty means run to stack exhaustion.
	Target string
}

// DefaultOptions returns Options with no target (full traversal).
func DefaultOptions() Options {
	return Options{}
}

// WithTarget stops the search once id is first visited. An empty id is
// a no-op (full traversal).
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}
