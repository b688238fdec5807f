// SPDX-License-Identifier: MIT

// Package compare runs Kruskal's and Prim's algorithms side by side over one
// graph and summarises how their outcomes relate.
//
// The two solvers share only the immutable core.Graph and matrix.Weights, so
// Run executes them concurrently. Prim's ErrDisconnected is recorded on the
// Comparison as an outcome of that solver, not returned as a failure of Run:
// on a disconnected graph Kruskal still produces a useful spanning forest.
package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/matrix"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MethodBoth runs both solvers.
const MethodBoth = "both"

// ErrUnknownMethod indicates WithMethod received something other than
// prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim or MethodBoth.
var ErrUnknownMethod = errors.New("compare: unknown method")

// Comparison holds the outcome of one Run.
type Comparison struct {
	Vertices int // |V| of the input graph
	Edges    int // |E| of the input graph, parallel edges and loops included
	Root     int // Prim's root vertex

	Components int   // connected components of the input graph
	Unreached  []int // vertices Prim's root cannot reach, set only when PrimErr is set

	Kruskal        prim_kruskal.Result
	KruskalRan     bool
	KruskalElapsed time.Duration

	Prim        prim_kruskal.Result
	PrimRan     bool
	PrimErr     error // prim_kruskal.ErrDisconnected when the tree could not span the graph
	PrimElapsed time.Duration
}

// Connected reports whether Kruskal's result spans the graph.
// It is false when Kruskal did not run.
func (c *Comparison) Connected() bool {
	return c.KruskalRan && c.Kruskal.Spanning(c.Vertices)
}

// WeightsAgree reports whether both solvers ran, both succeeded and found the same total.
func (c *Comparison) WeightsAgree() bool {
	return c.KruskalRan && c.PrimRan && c.PrimErr == nil && c.Kruskal.Total == c.Prim.Total
}

// options configures Run.
type options struct {
	root   int
	method string
	logger logrus.FieldLogger
}

// Option configures Run.
type Option func(*options)

// WithRoot sets Prim's root vertex (default 0).
func WithRoot(root int) Option {
	return func(o *options) { o.root = root }
}

// WithMethod restricts Run to one solver; MethodBoth (the default) runs both.
func WithMethod(method string) Option {
	return func(o *options) { o.method = method }
}

// WithLogger sets the logger used for per-solver debug entries.
// By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	o := options{method: MethodBoth, logger: discard}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Run computes the requested MSTs of g.
//
// Error Conditions:
//   - prim_kruskal.ErrInvalidGraph   : g is nil.
//   - ErrUnknownMethod               : bad WithMethod value.
//   - matrix.ErrReservedWeight       : an edge weighs matrix.Infinity (Prim only).
//   - prim_kruskal.ErrRootOutOfRange : WithRoot outside [0, V) on a non-empty graph;
//     checked before either solver starts.
//   - prim_kruskal.ErrWeightOverflow : a total does not fit in int64.
//   - ctx.Err()                      : ctx was done before the solvers started.
//
// The solvers themselves are bounded and are not interrupted once started.
func Run(ctx context.Context, g *core.Graph, opts ...Option) (*Comparison, error) {
	o := gatherOptions(opts)
	if g == nil {
		return nil, prim_kruskal.ErrInvalidGraph
	}
	runKruskal := o.method == MethodBoth || o.method == prim_kruskal.MethodKruskal
	runPrim := o.method == MethodBoth || o.method == prim_kruskal.MethodPrim
	if !runKruskal && !runPrim {
		return nil, ErrUnknownMethod
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n := g.VertexCount(); runPrim && n > 0 && (o.root < 0 || o.root >= n) {
		return nil, fmt.Errorf("root %d with V=%d: %w", o.root, n, prim_kruskal.ErrRootOutOfRange)
	}

	c := &Comparison{
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		Root:       o.root,
		KruskalRan: runKruskal,
		PrimRan:    runPrim,
	}

	var (
		weights *matrix.Weights
		err     error
	)
	if runPrim {
		if weights, err = matrix.BuildDenseWeights(g); err != nil {
			return nil, err
		}
	}

	eg, _ := errgroup.WithContext(ctx)
	if runKruskal {
		eg.Go(func() error {
			start := time.Now()
			res, err := prim_kruskal.Kruskal(g)
			c.KruskalElapsed = time.Since(start)
			if err != nil {
				return err
			}
			c.Kruskal = res
			o.logger.WithFields(logrus.Fields{
				"solver":  prim_kruskal.MethodKruskal,
				"edges":   res.Len(),
				"total":   res.Total,
				"elapsed": c.KruskalElapsed,
			}).Debug("solver finished")

			return nil
		})
	}
	if runPrim {
		eg.Go(func() error {
			start := time.Now()
			res, err := prim_kruskal.PrimFrom(weights, o.root)
			c.PrimElapsed = time.Since(start)
			switch {
			case errors.Is(err, prim_kruskal.ErrDisconnected):
				c.PrimErr = err
				o.logger.WithFields(logrus.Fields{
					"solver": prim_kruskal.MethodPrim,
					"root":   o.root,
				}).Debug("graph is not connected")

				return nil
			case err != nil:
				return err
			}
			c.Prim = res
			o.logger.WithFields(logrus.Fields{
				"solver":  prim_kruskal.MethodPrim,
				"root":    o.root,
				"edges":   res.Len(),
				"total":   res.Total,
				"elapsed": c.PrimElapsed,
			}).Debug("solver finished")

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	_, c.Components, err = bfs.Components(g)
	if err != nil {
		return nil, err
	}
	if c.PrimErr != nil {
		walk, err := bfs.BFS(g, o.root, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		c.Unreached = walk.Unvisited()
	}

	return c, nil
}
