// Package bfs: options and error definitions for breadth-first search.
package bfs

import "errors"

// Static complexity labels reported on results for this runner.
const (
	// TimeComplexity names the asymptotic running time.
	TimeComplexity = "O(V+E)"

	// SpaceComplexity names the asymptotic working memory.
	SpaceComplexity = "O(V)"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start id is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters of one BFS run.
type Options struct {
	// Target, if non-empty, stops the search when that node is dequeued.
	// Empty means run to frontier exhaustion.
	Target string
}

// DefaultOptions returns Options with no target (full traversal).
func DefaultOptions() Options {
	return Options{}
}

// WithTarget stops the search once id is dequeued. An empty id is a
// no-op (full traversal).
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}
