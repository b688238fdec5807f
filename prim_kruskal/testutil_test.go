// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dsu"
	"github.com/katalvlaran/spantree/matrix"
	"github.com/stretchr/testify/require"
)

// buildSquare is the four-vertex scenario whose MST weighs 19:
//
//	0—1 (10), 0—2 (6), 0—3 (5), 1—3 (15), 2—3 (4).
func buildSquare() *core.Graph {
	return core.MustGraph(4, []core.Edge{
		{Src: 0, Dst: 1, Weight: 10},
		{Src: 0, Dst: 2, Weight: 6},
		{Src: 0, Dst: 3, Weight: 5},
		{Src: 1, Dst: 3, Weight: 15},
		{Src: 2, Dst: 3, Weight: 4},
	})
}

// buildTwoIslands has components {0,1,2} (triangle) and {3,4} (single edge).
func buildTwoIslands() *core.Graph {
	return core.MustGraph(5, []core.Edge{
		{Src: 0, Dst: 1, Weight: 1},
		{Src: 1, Dst: 2, Weight: 2},
		{Src: 0, Dst: 2, Weight: 3},
		{Src: 3, Dst: 4, Weight: 7},
	})
}

// buildMediumGraph creates a connected graph with n vertices and edgesCount edges.
//   - A chain 0—1—…—(n-1) with weights in [1..10] guarantees connectivity.
//   - The remaining edges join random distinct pairs with weights in [1..100].
//
// Pairs are never repeated, so the dense matrix and the edge list describe the same graph.
func buildMediumGraph(n, edgesCount int, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[[2]int]bool, edgesCount)
	edges := make([]core.Edge, 0, edgesCount)
	add := func(u, v int, w int64) bool {
		key := [2]int{min(u, v), max(u, v)}
		if u == v || seen[key] {
			return false
		}
		seen[key] = true
		edges = append(edges, core.Edge{Src: u, Dst: v, Weight: w})

		return true
	}
	for i := 1; i < n; i++ {
		add(i-1, i, 1+r.Int63n(10))
	}
	for len(edges) < edgesCount {
		add(r.Intn(n), r.Intn(n), 1+r.Int63n(100))
	}

	return core.MustGraph(n, edges)
}

// buildRandomGraph joins random distinct pairs without guaranteeing connectivity.
func buildRandomGraph(r *rand.Rand, n, edgesCount int) *core.Graph {
	seen := make(map[[2]int]bool, edgesCount)
	edges := make([]core.Edge, 0, edgesCount)
	limit := n * (n - 1) / 2
	for len(edges) < edgesCount && len(edges) < limit {
		u, v := r.Intn(n), r.Intn(n)
		key := [2]int{min(u, v), max(u, v)}
		if u == v || seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, core.Edge{Src: u, Dst: v, Weight: r.Int63n(41) - 10})
	}

	return core.MustGraph(n, edges)
}

// dense builds the weight matrix of g or fails the test.
func dense(t testing.TB, g *core.Graph) *matrix.Weights {
	t.Helper()
	w, err := matrix.BuildDenseWeights(g)
	require.NoError(t, err)

	return w
}

// requireForest fails when edges contain a cycle over [0, n).
func requireForest(t testing.TB, n int, edges []core.Edge) {
	t.Helper()
	set := dsu.New(n)
	for _, e := range edges {
		require.True(t, set.Union(e.Src, e.Dst), "edge %v closes a cycle", e)
	}
}

// requireSpanningTree fails unless edges form a tree touching all n vertices.
func requireSpanningTree(t testing.TB, n int, edges []core.Edge) {
	t.Helper()
	require.Len(t, edges, n-1)
	requireForest(t, n, edges)
}

// sumWeights totals edge weights.
func sumWeights(edges []core.Edge) int64 {
	var s int64
	for _, e := range edges {
		s += e.Weight
	}

	return s
}
