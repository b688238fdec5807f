// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000, 42) // pre-build graph once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the dense O(V²) variant on the same graph, matrix prebuilt.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000, 42)
	w := dense(b, g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(w, 500)
	}
}

// BenchmarkPrim_Complete is Prim's best case: K_300, every matrix cell used.
func BenchmarkPrim_Complete(b *testing.B) {
	g := builder.MustBuild([]builder.Option{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 1000))}, builder.Complete(300))
	w := dense(b, g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(w, 300)
	}
}

// BenchmarkKruskal_Complete sorts all 44850 edges of the same K_300.
func BenchmarkKruskal_Complete(b *testing.B) {
	g := builder.MustBuild([]builder.Option{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 1000))}, builder.Complete(300))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}
