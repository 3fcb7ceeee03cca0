// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// weight_fn.go — pluggable edge-weight schemes for graph constructors.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is assigned when no custom WeightFn is configured.
// Note that core's weight resolution treats 0 as "unspecified", so the
// builder default is an explicit 1 rather than the zero value.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value <= 0 (zero would be rewritten to 1 by core's weight
// resolution, which is never what a caller configuring weights wants).
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if min <= 0 or max < min. If rng is nil, yields
// DefaultEdgeWeight as a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return min + rng.Float64()*(max-min)
	}
}
