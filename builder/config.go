// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// config.go — functional options and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   - idFn     = DecimalIDFn   ("0","1","2",…)
//   - weightFn = DefaultWeightFn (constant 1)
//   - rng      = nil            (pure/deterministic unless seeded)
//   - name     = constructor-chosen ("cycle-5", "grid-3x4", …)
//   - repr     = core.AdjacencyListView

package builder

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/algostep/algostep/core"
)

// config aggregates all knobs used by constructors. It is resolved once
// per constructor call and passed by value (immutable to callers).
type config struct {
	idFn     IDFn
	uuidIDs  bool // WithUUIDIDs: edge ids become UUIDs as well
	weightFn WeightFn
	rng      *rand.Rand
	name     string
	repr     core.Representation
}

// Option configures a constructor via functional arguments.
type Option func(*config)

// newConfig applies opts in order (later overrides earlier) over the
// deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     DecimalIDFn,
		weightFn: DefaultWeightFn,
		repr:     core.AdjacencyListView,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDFn selects the node-id scheme. Panics on nil (programmer error).
func WithIDFn(fn IDFn) Option {
	if fn == nil {
		panic("WithIDFn: fn must not be nil")
	}

	return func(c *config) { c.idFn = fn }
}

// WithLetterIDs is shorthand for WithIDFn(LetterIDFn): nodes "A".."Z".
func WithLetterIDs() Option {
	return func(c *config) { c.idFn = LetterIDFn }
}

// WithUUIDIDs assigns UUID node ids (see UUIDFn for the reproducibility
// caveat). Edge ids become UUIDs too.
func WithUUIDIDs() Option {
	return func(c *config) {
		c.idFn = UUIDFn
		c.uuidIDs = true
	}
}

// WithWeightFn selects the edge-weight scheme. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("WithWeightFn: fn must not be nil")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithSeed seeds a deterministic RNG for stochastic constructors and
// random weight schemes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies a caller-owned RNG. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("WithRand: rng must not be nil")
	}

	return func(c *config) { c.rng = rng }
}

// WithName overrides the constructor-chosen graph name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithRepresentation sets the graph's rendering hint.
func WithRepresentation(r core.Representation) Option {
	return func(c *config) { c.repr = r }
}

// newGraph allocates the graph shell all constructors fill in: the
// configured (or fallback) name, the representation hint, and pre-sized
// node/edge slices. The graph id mirrors the name for deterministic
// schemes and becomes a UUID under WithUUIDIDs, so determinism of the
// whole graph value follows the id scheme.
func (c config) newGraph(fallbackName string, nodes, edges int) *core.Graph {
	name := c.name
	if name == "" {
		name = fallbackName
	}
	id := name
	if c.uuidIDs {
		id = uuid.NewString()
	}

	return &core.Graph{
		ID:             id,
		Name:           name,
		Nodes:          make([]core.Node, 0, nodes),
		Edges:          make([]core.Edge, 0, edges),
		Representation: c.repr,
	}
}

// nodeIDs draws n ids from the configured scheme, once each. Always use
// this slice for both node creation and edge wiring: UUID schemes return
// a different id on every call, so calling idFn(i) twice would
// disconnect edges from their nodes.
func (c config) nodeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = c.idFn(i)
	}

	return ids
}

// node materializes a node for id; the label mirrors the id so editors
// always have display text.
func (c config) node(id string) core.Node {
	return core.Node{ID: id, Label: id}
}

// edge materializes the i-th edge between two node ids with a weight
// drawn from the configured scheme.
func (c config) edge(i int, from, to string) core.Edge {
	return core.Edge{
		ID:     edgeID(c, i),
		Source: from,
		Target: to,
		Weight: c.weightFn(c.rng),
	}
}

// edgeID derives the edge id: "e<i>" for deterministic schemes, a UUID
// when the node scheme is UUID-based.
func edgeID(c config, i int) string {
	if c.uuidIDs {
		return uuid.NewString()
	}

	return "e" + DecimalIDFn(i)
}
