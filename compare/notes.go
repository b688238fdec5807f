// SPDX-License-Identifier: MIT

package compare

// Note is a short description of one algorithm, or of what two algorithms share.
type Note struct {
	Title  string   `json:"title" yaml:"title"`
	Points []string `json:"points" yaml:"points"`
}

// Notes returns the fixed commentary printed after a comparison.
func Notes() []Note {
	return []Note{
		{
			Title: "Kruskal's Algorithm",
			Points: []string{
				"Works on disconnected graphs (finds the MST of each connected component).",
				"Uses Disjoint Set data structure to detect cycles.",
				"Better suited for sparse graphs.",
			},
		},
		{
			Title: "Prim's Algorithm",
			Points: []string{
				"Requires the graph to be connected.",
				"Builds the MST by always adding the nearest vertex to the tree.",
				"Better suited for dense graphs.",
			},
		},
		{
			Title: "Commonalities",
			Points: []string{
				"Both are greedy algorithms used to find the Minimum Spanning Tree of a graph.",
				"Both aim to minimize the total weight of the edges in the tree.",
			},
		},
	}
}

// Verdict summarises a Comparison in one sentence.
func (c *Comparison) Verdict() string {
	switch {
	case !c.KruskalRan || !c.PrimRan:
		return "Only one algorithm was run."
	case c.PrimErr != nil:
		return "The graph is not connected: Kruskal's algorithm produced a spanning forest, Prim's algorithm could not finish."
	case c.WeightsAgree():
		return "Both algorithms found a minimum spanning tree of the same total weight."
	default:
		return "The algorithms disagree on the total weight; the graph has parallel edges resolved differently."
	}
}
