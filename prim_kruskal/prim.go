// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/matrix"
)

// Prim computes the MST of the graph described by the dense weight matrix w,
// growing the tree from vertex 0. n is the vertex count and must equal w.Size().
//
// Error Conditions:
//   - ErrInvalidGraph      : w is nil.
//   - ErrDimensionMismatch : n != w.Size().
//   - ErrDisconnected      : some vertex is unreachable from vertex 0.
//   - ErrWeightOverflow    : the selected weights do not sum within int64.
//
// On ErrDisconnected the partially grown tree is discarded. Callers that need a
// spanning forest use PrimForest instead.
//
// Complexity: O(V²) time, O(V) extra memory.
func Prim(w *matrix.Weights, n int) (Result, error) {
	if w == nil {
		return Result{}, ErrInvalidGraph
	}
	if n != w.Size() {
		return Result{}, ErrDimensionMismatch
	}

	return PrimFrom(w, 0)
}

// PrimFrom is Prim seeded from an arbitrary root instead of vertex 0.
//
// Steps:
//  1. Validate w and root; |V| == 0 → empty result (root ignored).
//  2. Mark root in tree; distance[i] = w[root][i], nearest[i] = root.
//  3. Repeat: linear scan of excluded vertices for the minimum finite distance;
//     include it, record (nearest[sel], sel, distance[sel]), relax row sel.
//  4. Fewer than |V|-1 edges once the frontier is exhausted → ErrDisconnected.
func PrimFrom(w *matrix.Weights, root int) (Result, error) {
	// 1. Validate.
	if w == nil {
		return Result{}, ErrInvalidGraph
	}
	n := w.Size()
	if n == 0 {
		return Result{Edges: []core.Edge{}}, nil
	}
	if root < 0 || root >= n {
		return Result{}, ErrRootOutOfRange
	}

	// 2-3. Grow a single tree.
	inTree := make([]bool, n)
	tree, err := grow(w, root, inTree)
	if err != nil {
		return Result{}, err
	}

	// 4. Strict: a partial tree is a failure.
	if len(tree.Edges) < n-1 {
		return Result{}, ErrDisconnected
	}

	return tree, nil
}

// PrimForest runs Prim once per connected component, each time seeding from the
// lowest-numbered vertex not yet covered. Trees are returned in seed order; an
// isolated vertex yields a tree with no edges. It never returns ErrDisconnected.
//
// Complexity: O(V²) per component, O(V³) worst case on fully isolated vertices.
func PrimForest(w *matrix.Weights) ([]Result, error) {
	if w == nil {
		return nil, ErrInvalidGraph
	}
	n := w.Size()
	inTree := make([]bool, n)
	forest := make([]Result, 0, 1)
	for seed := 0; seed < n; seed++ {
		if inTree[seed] {
			continue
		}
		tree, err := grow(w, seed, inTree)
		if err != nil {
			return nil, err
		}
		forest = append(forest, tree)
	}

	return forest, nil
}

// grow expands a tree from root over vertices not yet marked in inTree, until no
// excluded vertex has a finite distance to the tree. inTree is updated in place.
func grow(w *matrix.Weights, root int, inTree []bool) (Result, error) {
	n := w.Size()

	// Frontier state, owned by this call.
	distance := make([]int64, n) // best known weight connecting i to the tree
	nearest := make([]int, n)    // in-tree vertex achieving distance[i]
	copy(distance, w.Row(root))
	for i := range nearest {
		nearest[i] = root
	}
	inTree[root] = true

	var (
		tree  = Result{Edges: []core.Edge{}}
		total int64
		ok    bool
	)
	for {
		// (a) Closest excluded vertex; Infinity never qualifies.
		sel, best := -1, matrix.Infinity
		for i := 0; i < n; i++ {
			if !inTree[i] && distance[i] < best {
				best, sel = distance[i], i
			}
		}
		if sel < 0 {
			break
		}

		// (b) Include it.
		inTree[sel] = true
		tree.Edges = append(tree.Edges, core.Edge{Src: nearest[sel], Dst: sel, Weight: best})
		if total, ok = addWeight(total, best); !ok {
			return Result{}, ErrWeightOverflow
		}

		// (c) Relax through sel.
		row := w.Row(sel)
		for i := 0; i < n; i++ {
			if !inTree[i] && row[i] < distance[i] {
				distance[i] = row[i]
				nearest[i] = sel
			}
		}
	}
	tree.Total = total

	return tree, nil
}
