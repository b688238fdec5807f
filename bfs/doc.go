// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order from a start vertex, plus
// connected-component labelling built on the same walk.
//
// Edge weights are ignored. The spanning-tree reports use BFS for the
// reachability questions that come up once a graph turns out to be
// disconnected: which vertices Prim's algorithm could never reach from its
// root, and how many trees Kruskal's spanning forest consists of.
//
// Determinism
//
//	Neighbours are visited in the order their edges appear in the graph,
//	so the visit sequence is reproducible for a given edge list.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)  (adjacency lists, queue, Depth and Parent slices)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	labels, count, err := bfs.Components(g)
package bfs
