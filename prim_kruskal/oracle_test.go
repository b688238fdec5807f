// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// gonumTotal computes the spanning forest weight of g with gonum's Kruskal.
// g must not contain loops or parallel edges.
func gonumTotal(g *core.Graph) int64 {
	src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.VertexCount(); i++ {
		src.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(int64(e.Src)), simple.Node(int64(e.Dst)), float64(e.Weight)))
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return int64(path.Kruskal(dst, src))
}

// TestAgainstGonum_Connected checks both solvers against an independent MST implementation.
func TestAgainstGonum_Connected(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		n := 2 + r.Intn(30)
		g := buildMediumGraph(n, n-1+r.Intn(n*(n-1)/2-(n-1)+1), seed)
		want := gonumTotal(g)

		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, want, k.Total, "kruskal, seed %d", seed)

		p, err := prim_kruskal.Prim(dense(t, g), n)
		require.NoError(t, err)
		assert.Equal(t, want, p.Total, "prim, seed %d", seed)
	}
}

// TestAgainstGonum_Forests covers sparse random graphs that are often disconnected,
// with negative weights. Kruskal's forest and PrimForest must both match gonum.
func TestAgainstGonum_Forests(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 30; i++ {
		n := 1 + r.Intn(20)
		g := buildRandomGraph(r, n, r.Intn(n+1))
		want := gonumTotal(g)

		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		requireForest(t, n, k.Edges)
		assert.Equal(t, want, k.Total, "kruskal, case %d", i)

		forest, err := prim_kruskal.PrimForest(dense(t, g))
		require.NoError(t, err)
		var total int64
		edges := 0
		for _, tree := range forest {
			total += tree.Total
			edges += tree.Len()
		}
		assert.Equal(t, want, total, "prim forest, case %d", i)
		assert.Equal(t, k.Len(), edges, "both forests cover the same components")
		assert.Equal(t, n-k.Len(), len(forest), "one tree per component")

		_, err = prim_kruskal.Prim(dense(t, g), n)
		if k.Spanning(n) {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
		}
	}
}
