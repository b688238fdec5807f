// SPDX-License-Identifier: MIT

// Package core defines the graph model shared by every spantree algorithm:
// an undirected, weighted graph whose vertices are the zero-based indices
// [0, V) and whose edges are kept in input order.
//
// What & Why
//
//   - Vertices carry no attributes. An index is all Kruskal's disjoint set and
//     Prim's dense matrix need, so the model stays a plain (V, []Edge) pair.
//   - Edges are undirected: Edge{Src: 1, Dst: 2, Weight: 7} and
//     Edge{Src: 2, Dst: 1, Weight: 7} describe the same connection.
//   - Parallel edges and self-loops are accepted. Kruskal sees every edge
//     instance; the dense matrix keeps the last one written per pair; neither
//     solver ever selects a self-loop.
//
// Immutability
//
//	A Graph is built once by NewGraph and never mutated afterwards. Edges()
//	returns a copy, so solvers can sort or scan freely and several solvers can
//	read the same Graph from different goroutines without locks.
//
// Errors:
//
//	ErrInvalidEdge         - an edge endpoint lies outside [0, V).
//	ErrNegativeVertexCount - V < 0.
package core
