// SPDX-License-Identifier: MIT

package core

import "fmt"

// NewGraph validates edges against vertexCount and returns the immutable Graph.
//
// Every edge must satisfy 0 <= Src, Dst < vertexCount; the first violation aborts
// construction with ErrInvalidEdge wrapped with the edge position, and no partial
// graph is returned. The edges slice is copied, so the caller may reuse it.
//
// Complexity: O(E) time and memory.
func NewGraph(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("vertex count %d: %w", vertexCount, ErrNegativeVertexCount)
	}
	for i, e := range edges {
		if e.Src < 0 || e.Src >= vertexCount || e.Dst < 0 || e.Dst >= vertexCount {
			return nil, fmt.Errorf("edge #%d (%d,%d) with V=%d: %w", i, e.Src, e.Dst, vertexCount, ErrInvalidEdge)
		}
	}

	owned := make([]Edge, len(edges))
	copy(owned, edges)

	return &Graph{n: vertexCount, edges: owned}, nil
}

// MustGraph is NewGraph that panics on error. Intended for fixtures and examples.
func MustGraph(vertexCount int, edges []Edge) *Graph {
	g, err := NewGraph(vertexCount, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// FromTriples builds a Graph from (src, dst, weight) triples.
func FromTriples(vertexCount int, triples [][3]int64) (*Graph, error) {
	edges := make([]Edge, len(triples))
	for i, t := range triples {
		edges[i] = Edge{Src: int(t[0]), Dst: int(t[1]), Weight: t[2]}
	}

	return NewGraph(vertexCount, edges)
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges, parallel edges and loops included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Empty reports whether the graph has no vertices.
func (g *Graph) Empty() bool { return g.n == 0 }

// Edges returns a copy of the edge list in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the i-th edge in input order. It panics when i is out of range.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }
