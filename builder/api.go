// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Constructor emits one topology into a fragment using the resolved
// configuration. Constructors validate their parameters before emitting
// anything and never panic.
type Constructor func(f *fragment, cfg builderConfig) error

// fragment collects the vertices and edges of one constructor call.
// Indices are local to the fragment; BuildGraph shifts them.
type fragment struct {
	n     int
	edges []core.Edge
}

// edge appends u-v with the next weight from cfg.
func (f *fragment) edge(cfg builderConfig, u, v int) {
	f.edges = append(f.edges, core.Edge{Src: u, Dst: v, Weight: cfg.weightFn(cfg.rng)})
}

// BuildGraph resolves opts, runs every constructor in order and returns the
// disjoint union of their fragments. Fragment k's vertex i becomes vertex
// i + (vertices of fragments 0..k-1). Any constructor error is wrapped with
// "BuildGraph: " and returned immediately.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	var (
		offset int
		edges  []core.Edge
	)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		var f fragment
		if err := fn(&f, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		for _, e := range f.edges {
			edges = append(edges, core.Edge{Src: e.Src + offset, Dst: e.Dst + offset, Weight: e.Weight})
		}
		offset += f.n
	}

	return core.NewGraph(offset, edges)
}

// MustBuild is BuildGraph for fixtures known to be valid. It panics on error.
func MustBuild(opts []Option, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(opts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
