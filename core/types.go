// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidEdge indicates an edge references a vertex outside [0, V).
	ErrInvalidEdge = errors.New("core: edge endpoint out of range")

	// ErrNegativeVertexCount indicates a graph was requested with V < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")
)

// Edge is an undirected, weighted connection between two vertex indices.
type Edge struct {
	// Src is one endpoint.
	Src int

	// Dst is the other endpoint.
	Dst int

	// Weight is the cost of the edge. Negative values are allowed.
	Weight int64
}

// Canonical returns a copy of e with Src <= Dst.
// Two edges describe the same undirected connection iff their canonical forms are equal.
func (e Edge) Canonical() Edge {
	if e.Src > e.Dst {
		e.Src, e.Dst = e.Dst, e.Src
	}

	return e
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.Src == e.Dst }

// String renders the edge as "src -- dst == weight" using zero-based indices.
func (e Edge) String() string {
	return fmt.Sprintf("%d -- %d == %d", e.Src, e.Dst, e.Weight)
}

// Graph is an immutable undirected, weighted graph over vertices [0, V).
type Graph struct {
	n     int    // vertex count
	edges []Edge // edges in input order
}
