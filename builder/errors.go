// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition
//     site; constructors attach context via %w.
//   - Constructors MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols) is smaller
// than the minimum the requested constructor supports.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1] (RandomSparse).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked
// without a seeded RNG (WithSeed / WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seed */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation is reserved for option values that must surface as
// errors rather than constructor panics (runtime option resolution).
var ErrOptionViolation = errors.New("builder: invalid option value")
