// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse samples an Erdős–Rényi graph: every unordered pair {i, j},
// i < j, is kept independently with probability p. Trials run in (i asc,
// j asc) order so a fixed seed gives a fixed graph. p == 0 and p == 1 need
// no RNG; anything in between does.
func RandomSparse(n int, p float64) Constructor {
	return func(f *fragment, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		f.n = n
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					f.edge(cfg, i, j)
				}
			}
		}

		return nil
	}
}
