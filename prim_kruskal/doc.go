// SPDX-License-Identifier: MIT

// Package prim_kruskal provides two independent algorithms for the Minimum
// Spanning Tree (MST) of an undirected, weighted graph: Kruskal's and Prim's.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects every vertex of V with minimum total weight and no cycle. The total weight is
//     unique even when several edge sets achieve it.
//
//   - Why two algorithms?
//     They reach the same total from opposite directions, which makes each a check on the other.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (Result, error)
//
//   - Strategy: stable-sort all edges by weight, scan them from lightest to heaviest and accept an
//     edge iff its endpoints have different dsu representatives, then merge those representatives.
//     Stop at |V|−1 accepted edges.
//
//   - Disconnected input: returns a minimum spanning forest (fewer than |V|−1 edges), not an error.
//
//   - Complexity: O(E log E) sort, O(E) finds of O(V) worst case each (no path compression).
//
//   - Prim(w *matrix.Weights, n int) (Result, error), PrimFrom(w, root), PrimForest(w)
//
//   - Strategy: grow one tree from a root over the dense weight matrix. For every vertex outside the
//     tree keep distance[i] (best edge into the tree) and nearest[i] (its tree endpoint), select the
//     minimum by linear scan, then relax the selected vertex's row. No heap.
//
//   - Disconnected input: ErrDisconnected, the partial tree is discarded. PrimForest re-seeds from
//     each uncovered vertex instead and returns one tree per component.
//
//   - Complexity: O(V²) time, O(V) extra memory; suited to dense graphs.
//
// Determinism
//
//	Each call owns its working state (a fresh dsu.DisjointSet, fresh distance/nearest/inTree
//	slices), so solvers may run concurrently over the same immutable graph and matrix. Ties in
//	Kruskal keep input edge order; ties in Prim pick the lowest vertex index.
//
// Error Conditions
//
//   - ErrInvalidGraph      - nil graph or matrix.
//   - ErrDisconnected      - Prim could not reach every vertex.
//   - ErrDimensionMismatch - Prim's n differs from the matrix size.
//   - ErrRootOutOfRange    - PrimFrom root outside [0, V).
//   - ErrWeightOverflow    - total weight leaves the int64 range.
//   - ErrUnknownMethod     - Compute with an unsupported method.
//
// An empty graph (|V| == 0) is not an error: both solvers return an empty, zero-weight Result.
package prim_kruskal
