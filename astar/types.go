// Package astar: error definitions and complexity labels.
package astar

import "errors"

// Static complexity labels reported on results for this runner.
// The time label reflects the idealized heap-backed selection.
const (
	// TimeComplexity names the asymptotic running time.
	TimeComplexity = "O(E log V)"

	// SpaceComplexity names the asymptotic working memory.
	SpaceComplexity = "O(V)"
)

// Sentinel errors for A* execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrMissingTarget is returned when no target node id is supplied.
	ErrMissingTarget = errors.New("astar: target node required")

	// ErrStartNodeNotFound is returned when the start id is absent.
	ErrStartNodeNotFound = errors.New("astar: start node not found")

	// ErrTargetNodeNotFound is returned when the target id is absent.
	ErrTargetNodeNotFound = errors.New("astar: target node not found")
)
