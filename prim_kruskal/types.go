// SPDX-License-Identifier: MIT

// Package prim_kruskal defines the MST result type, configuration options and
// sentinel errors shared by both solvers.
package prim_kruskal

import (
	"errors"
	"math"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/matrix"
)

// ErrInvalidGraph indicates a nil graph or weight matrix was passed to a solver.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates Prim's frontier ran out of finite-distance vertices
// before the tree covered every vertex. Kruskal never returns it.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrDimensionMismatch indicates the vertex count given to Prim differs from the matrix size.
var ErrDimensionMismatch = errors.New("prim_kruskal: vertex count does not match weight matrix")

// ErrRootOutOfRange indicates Prim was seeded from a vertex outside [0, V).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrWeightOverflow indicates the total MST weight does not fit in int64.
var ErrWeightOverflow = errors.New("prim_kruskal: total weight overflows int64")

// ErrUnknownMethod indicates Compute was asked for a method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (dense frontier scan from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is the outcome of one solver run: the selected edges in selection
// order and their total weight. It is not mutated after the solver returns.
type Result struct {
	// Edges lists accepted edges in the order the solver picked them.
	Edges []core.Edge

	// Total is the sum of Edges' weights.
	Total int64
}

// Len returns the number of selected edges.
func (r Result) Len() int { return len(r.Edges) }

// Spanning reports whether r spans a graph of vertexCount vertices,
// i.e. holds exactly vertexCount-1 edges. An empty graph is spanned by the empty result.
func (r Result) Spanning(vertexCount int) bool {
	if vertexCount == 0 {
		return len(r.Edges) == 0
	}

	return len(r.Edges) == vertexCount-1
}

// MSTOptions configures which MST algorithm Compute runs and, for Prim, the root vertex.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   int:    start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions with Method = MethodKruskal and Root = 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    BuildDenseWeights(graph), then PrimFrom(weights, opts.Root).
//	– otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		if graph == nil {
			return Result{}, ErrInvalidGraph
		}
		w, err := matrix.BuildDenseWeights(graph)
		if err != nil {
			return Result{}, err
		}

		return PrimFrom(w, opts.Root)
	default:
		return Result{}, ErrUnknownMethod
	}
}

// addWeight returns total+w, or false when the sum leaves the int64 range.
func addWeight(total, w int64) (int64, bool) {
	if (w > 0 && total > math.MaxInt64-w) || (w < 0 && total < math.MinInt64-w) {
		return 0, false
	}

	return total + w, true
}
