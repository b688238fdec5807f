// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dsu"
)

// Kruskal computes a minimum spanning tree (or forest) of an undirected, weighted graph.
// It uses a dsu.DisjointSet owned by this call: no path compression, index-valued merges.
//
// Error Conditions:
//   - ErrInvalidGraph   : graph is nil.
//   - ErrWeightOverflow : the accepted weights do not sum within int64.
//
// A disconnected graph is not an error: the result is a minimum spanning forest
// with fewer than |V|-1 edges, which callers detect with Result.Spanning.
//
// Steps:
//  1. Validate graph; |V| == 0 → empty result.
//  2. Copy edges and stable-sort them by ascending Weight (ties keep input order).
//  3. Initialize the disjoint set over [0, |V|).
//  4. Scan: ru, rv := Find(u), Find(v); accept iff ru != rv, then Merge(ru, rv).
//  5. Stop once |V|-1 edges have been accepted.
//
// Complexity: O(E log E) for the sort plus O(E·V) worst-case finds. Memory: O(E + V).
func Kruskal(graph *core.Graph) (Result, error) {
	// 1. Validate input.
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return Result{Edges: []core.Edge{}}, nil
	}

	// 2. Sort a private copy of the edge list.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Fresh disjoint set for this invocation only.
	set := dsu.New(n)

	// 4. Accept or reject edges in weight order.
	var (
		mst   = make([]core.Edge, 0, n-1)
		total int64
		ok    bool
	)
	for _, e := range edges {
		// 5. A tree over n vertices is complete at n-1 edges.
		if len(mst) == n-1 {
			break
		}
		ru, rv := set.Find(e.Src), set.Find(e.Dst)
		if ru == rv {
			// Same component: this edge would close a cycle.
			continue
		}
		mst = append(mst, e)
		if total, ok = addWeight(total, e.Weight); !ok {
			return Result{}, ErrWeightOverflow
		}
		set.Merge(ru, rv)
	}

	return Result{Edges: mst, Total: total}, nil
}
