// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// weight_fn.go - edge weight generators.
//
// Every generator yields non-negative int64 weights and is deterministic for
// a given RNG state.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight produced by DefaultWeightFn.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics unless 0 ≤ min ≤ max. With a nil RNG it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		span := max - min
		if span == math.MaxInt64 {
			return min + rng.Int63()
		}

		return min + rng.Int63n(span+1)
	}
}
