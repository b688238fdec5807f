// SPDX-License-Identifier: MIT

package builder

// Minimum sizes per topology.
const (
	MinCompleteNodes = 1
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinGridDim       = 1
	MinIsolatedNodes = 1
)

// Complete builds K_n. Pairs are emitted in lexicographic (i, j), i < j order.
func Complete(n int) Constructor {
	return func(f *fragment, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return tooFew("Complete", n, MinCompleteNodes)
		}
		f.n = n
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				f.edge(cfg, i, j)
			}
		}

		return nil
	}
}

// Path builds 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(f *fragment, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew("Path", n, MinPathNodes)
		}
		f.n = n
		for i := 0; i+1 < n; i++ {
			f.edge(cfg, i, i+1)
		}

		return nil
	}
}

// Cycle builds Path(n) plus the closing edge (n-1)-0.
func Cycle(n int) Constructor {
	return func(f *fragment, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew("Cycle", n, MinCycleNodes)
		}
		f.n = n
		for i := 0; i < n; i++ {
			f.edge(cfg, i, (i+1)%n)
		}

		return nil
	}
}

// Star joins centre 0 to every other vertex.
func Star(n int) Constructor {
	return func(f *fragment, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew("Star", n, MinStarNodes)
		}
		f.n = n
		for i := 1; i < n; i++ {
			f.edge(cfg, 0, i)
		}

		return nil
	}
}

// Wheel emits the spokes 0-i first, then the rim cycle over 1..n-1.
func Wheel(n int) Constructor {
	return func(f *fragment, cfg builderConfig) error {
		if n < MinWheelNodes {
			return tooFew("Wheel", n, MinWheelNodes)
		}
		f.n = n
		for i := 1; i < n; i++ {
			f.edge(cfg, 0, i)
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			f.edge(cfg, i, next)
		}

		return nil
	}
}

// Grid builds a rows×cols lattice; vertex (r, c) has index r*cols+c. For each
// cell the right neighbour is emitted before the bottom one.
func Grid(rows, cols int) Constructor {
	return func(f *fragment, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return tooFew("Grid", min(rows, cols), MinGridDim)
		}
		f.n = rows * cols
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					f.edge(cfg, id, id+1)
				}
				if r+1 < rows {
					f.edge(cfg, id, id+cols)
				}
			}
		}

		return nil
	}
}

// Isolated adds n vertices and no edges.
func Isolated(n int) Constructor {
	return func(f *fragment, _ builderConfig) error {
		if n < MinIsolatedNodes {
			return tooFew("Isolated", n, MinIsolatedNodes)
		}
		f.n = n

		return nil
	}
}
