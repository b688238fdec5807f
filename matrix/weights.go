// SPDX-License-Identifier: MIT

// Package matrix provides the dense, symmetric weight matrix consumed by the
// O(V²) variant of Prim's algorithm.
//
// Weights stores n×n int64 entries in a flat row-major slice. Pairs without an
// edge hold Infinity; the diagonal is never read by the solvers and stays at
// Infinity as well. Parallel edges collapse to the last one written
// (last-write-wins under input edge order).
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spantree/core"
)

// Infinity marks "no edge" between two vertices.
const Infinity int64 = math.MaxInt64

// Weights is a row-major n×n matrix of edge weights.
type Weights struct {
	n    int     // rows == cols
	data []int64 // flat backing storage, length n*n
}

// NewWeights returns an n×n matrix with every entry set to Infinity.
// n == 0 yields an empty matrix. Complexity: O(n²).
func NewWeights(n int) (*Weights, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewWeights(%d): %w", n, ErrOutOfRange)
	}
	data := make([]int64, n*n)
	for i := range data {
		data[i] = Infinity
	}

	return &Weights{n: n, data: data}, nil
}

// BuildDenseWeights converts g into its dense weight matrix.
//
// Both mirrored cells are written for every edge, in input order, so a later
// duplicate overwrites an earlier one. Self-loops land on the ignored diagonal.
// An edge weighing exactly Infinity is rejected with ErrReservedWeight.
//
// Complexity: O(V² + E) time, O(V²) memory.
func BuildDenseWeights(g *core.Graph) (*Weights, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w, err := NewWeights(g.VertexCount())
	if err != nil {
		return nil, err
	}
	for i, e := range g.Edges() {
		if e.Weight == Infinity {
			return nil, fmt.Errorf("edge #%d (%d,%d): %w", i, e.Src, e.Dst, ErrReservedWeight)
		}
		w.data[e.Src*w.n+e.Dst] = e.Weight
		w.data[e.Dst*w.n+e.Src] = e.Weight
	}

	return w, nil
}

// FromRows copies a caller-provided square matrix. Rows must be symmetric;
// the diagonal is not checked.
func FromRows(rows [][]int64) (*Weights, error) {
	n := len(rows)
	w := &Weights{n: n, data: make([]int64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		copy(w.data[i*n:(i+1)*n], row)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w.data[i*n+j] != w.data[j*n+i] {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return w, nil
}

// Size returns n.
func (w *Weights) Size() int { return w.n }

// At returns the weight between i and j, or Infinity when they are not adjacent.
func (w *Weights) At(i, j int) (int64, error) {
	if i < 0 || i >= w.n || j < 0 || j >= w.n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return w.data[i*w.n+j], nil
}

// Set writes weight into both (i,j) and (j,i), keeping the matrix symmetric.
func (w *Weights) Set(i, j int, weight int64) error {
	if i < 0 || i >= w.n || j < 0 || j >= w.n {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	w.data[i*w.n+j] = weight
	w.data[j*w.n+i] = weight

	return nil
}

// Adjacent reports whether i and j share a finite-weight entry.
func (w *Weights) Adjacent(i, j int) bool {
	v, err := w.At(i, j)

	return err == nil && i != j && v != Infinity
}

// Row returns row i without copying. Callers must not modify it.
// It panics when i is out of range; solvers use it on validated indices only.
func (w *Weights) Row(i int) []int64 { return w.data[i*w.n : (i+1)*w.n] }

// Rows returns a deep copy of the matrix as [][]int64.
func (w *Weights) Rows() [][]int64 {
	out := make([][]int64, w.n)
	for i := range out {
		out[i] = make([]int64, w.n)
		copy(out[i], w.Row(i))
	}

	return out
}
