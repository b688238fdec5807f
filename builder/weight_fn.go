// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is assigned to every edge when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed: spanning trees accept them.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 { return value }
}

// UniformRange reports whether UniformWeightFn accepts [lo, hi]: lo ≤ hi
// and the span hi-lo+1 fits in int64.
func UniformRange(lo, hi int64) bool {
	if hi < lo {
		return false
	}
	if lo < 0 {
		return hi < math.MaxInt64+lo
	}

	return hi-lo < math.MaxInt64
}

// UniformWeightFn samples uniformly in [lo, hi] inclusive. Panics unless
// UniformRange(lo, hi). Without an RNG it yields lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if !UniformRange(lo, hi) {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi and hi-lo+1 within int64, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// SequenceWeightFn returns start, start+step, start+2·step, ... on successive
// calls. Distinct weights make the minimum spanning tree unique.
func SequenceWeightFn(start, step int64) WeightFn {
	next := start

	return func(_ *rand.Rand) int64 {
		w := next
		next += step

		return w
	}
}
