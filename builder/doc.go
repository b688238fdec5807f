// SPDX-License-Identifier: MIT

// Package builder generates deterministic core.Graph fixtures for tests,
// benchmarks and the "spantree generate" command.
//
// A Constructor emits one topology over its own zero-based vertices.
// BuildGraph lays several constructors out side by side as a disjoint
// union, shifting each fragment's vertices past the previous ones, so
// disconnected inputs (and therefore minimum spanning forests) are as easy
// to produce as connected ones:
//
//	g, err := builder.BuildGraph(
//	    []builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
//	    builder.Complete(5),
//	    builder.Grid(3, 4),
//	)
//
// Topologies:
//
//   - Complete(n)        K_n, n ≥ 1.
//   - Path(n)            0-1-...-(n-1), n ≥ 2.
//   - Cycle(n)           a path closed back to 0, n ≥ 3.
//   - Star(n)            centre 0 joined to 1..n-1, n ≥ 2.
//   - Wheel(n)           centre 0 plus a cycle over 1..n-1, n ≥ 4.
//   - Grid(rows, cols)   4-neighbourhood lattice, row-major indices.
//   - RandomSparse(n, p) each unordered pair kept with probability p.
//   - Isolated(n)        n vertices, no edges.
//
// Weights come from the configured WeightFn (default: DefaultEdgeWeight for
// every edge). Same options, same seed and same constructor order yield the
// same graph.
//
// Errors:
//
//   - ErrTooFewVertices      parameter below the topology's minimum.
//   - ErrInvalidProbability  p outside [0, 1].
//   - ErrNeedRandSource      0 < p < 1 without WithSeed or WithRand.
//   - ErrConstructFailed     nil constructor.
//
// Option constructors panic on nil arguments; building never panics.
package builder
