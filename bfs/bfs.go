// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation,
// ctx.Err() on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d with V=%d", ErrStartOutOfRange, start, g.VertexCount())
	}

	w := newWalker(adjacency(g), o)
	w.res.Start = start
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// Components labels every vertex of g with the index of its connected
// component. Components are numbered 0, 1, ... in order of their smallest
// vertex; an empty graph has none.
func Components(g *core.Graph) (labels []int, count int, err error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.VertexCount()
	labels = make([]int, n)
	for v := range labels {
		labels[v] = Unreached
	}
	adj := adjacency(g)
	for v := 0; v < n; v++ {
		if labels[v] != Unreached {
			continue
		}
		id := count
		o := DefaultOptions()
		o.OnVisit = func(u, _ int) error {
			labels[u] = id
			return nil
		}
		w := newWalker(adj, o)
		w.enqueue(v, 0, Unreached)
		if err := w.loop(); err != nil {
			return nil, 0, err
		}
		count++
	}

	return labels, count, nil
}

// adjacency builds undirected neighbour lists in edge order. Loops are dropped.
func adjacency(g *core.Graph) [][]int {
	adj := make([][]int, g.VertexCount())
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		adj[e.Src] = append(adj[e.Src], e.Dst)
		adj[e.Dst] = append(adj[e.Dst], e.Src)
	}

	return adj
}

func newWalker(adj [][]int, o Options) *walker {
	n := len(adj)
	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	return w
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for _, u := range w.adj[v] {
			if w.res.Depth[u] == Unreached {
				w.enqueue(u, d+1, v)
			}
		}
	}

	return nil
}
