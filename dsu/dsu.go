// SPDX-License-Identifier: MIT

// Package dsu provides a fixed-size disjoint-set (union-find) forest over the
// element indices [0, n), used by Kruskal's algorithm for cycle detection.
//
// The forest is deliberately simple:
//
//   - Find walks parent links iteratively and never rewrites them (no path
//     compression), so tree shapes depend only on the sequence of merges.
//   - Merge joins two representatives by index value, not by rank: the larger
//     index is attached under the smaller one. Which vertex ends up as root is
//     therefore fully determined by the merge sequence.
//
// Both choices keep cycle-detection decisions identical to the textbook
// union-find while making roots reproducible for tests. Worst-case Find is
// O(n) on a degenerate chain, acceptable for the vertex counts this module
// targets.
//
// A DisjointSet is owned by one caller and is not safe for concurrent use.
// Indices outside [0, n) are programming errors and panic.
package dsu

// DisjointSet is a union-find forest over [0, n).
type DisjointSet struct {
	parent []int // parent[i] == i for representatives
	count  int   // number of disjoint sets remaining
}

// New returns a forest of n singleton sets; every element is its own representative.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		panic("dsu: negative size")
	}
	d := &DisjointSet{parent: make([]int, n), count: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets remaining.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of x's set.
// Complexity: O(depth), O(n) worst case.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		x = d.parent[x]
	}

	return x
}

// Merge joins the sets represented by p and q.
//
// p and q MUST be representatives (results of Find). The larger index is
// attached under the smaller: if q > p then parent[q] = p, else parent[p] = q.
// Merging a representative with itself is a no-op.
func (d *DisjointSet) Merge(p, q int) {
	if p == q {
		return
	}
	if q > p {
		d.parent[q] = p
	} else {
		d.parent[p] = q
	}
	d.count--
}

// Union resolves the representatives of a and b and merges them.
// It reports whether the two elements were in different sets.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	d.Merge(ra, rb)

	return true
}

// Connected reports whether a and b share a representative.
func (d *DisjointSet) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }
