// SPDX-License-Identifier: MIT
// Package: edgegraph/builder
//
// topology.go - deterministic shapes. IDs below are relative to the block
// each constructor allocates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgegraph/core"
)

func tooFew(method string, n, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewVertices)
}

// Path emits 0-1, 1-2, …, (n-2)-(n-1). n ≥ 2.
func Path(n int) Constructor {
	return func(cfg *builderConfig, emit func(u, v core.NodeID)) error {
		if n < 2 {
			return tooFew("Path", n, 2)
		}
		base := cfg.alloc(n)
		for i := 1; i < n; i++ {
			emit(base+core.NodeID(i-1), base+core.NodeID(i))
		}

		return nil
	}
}

// Cycle emits Path(n) plus the closing edge (n-1)-0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(cfg *builderConfig, emit func(u, v core.NodeID)) error {
		if n < 3 {
			return tooFew("Cycle", n, 3)
		}
		base := cfg.alloc(n)
		for i := 1; i < n; i++ {
			emit(base+core.NodeID(i-1), base+core.NodeID(i))
		}
		emit(base+core.NodeID(n-1), base)

		return nil
	}
}

// Star emits center 0 to each leaf 1..n-1. n ≥ 2.
func Star(n int) Constructor {
	return func(cfg *builderConfig, emit func(u, v core.NodeID)) error {
		if n < 2 {
			return tooFew("Star", n, 2)
		}
		base := cfg.alloc(n)
		for i := 1; i < n; i++ {
			emit(base, base+core.NodeID(i))
		}

		return nil
	}
}

// Complete emits every pair i<j once, i ascending then j ascending. n ≥ 2.
func Complete(n int) Constructor {
	return func(cfg *builderConfig, emit func(u, v core.NodeID)) error {
		if n < 2 {
			return tooFew("Complete", n, 2)
		}
		base := cfg.alloc(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				emit(base+core.NodeID(i), base+core.NodeID(j))
			}
		}

		return nil
	}
}

// Grid emits a rows×cols 4-neighborhood lattice with row-major IDs
// r*cols+c: for each cell, its right neighbor then its lower neighbor.
// rows*cols ≥ 2.
func Grid(rows, cols int) Constructor {
	return func(cfg *builderConfig, emit func(u, v core.NodeID)) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		base := cfg.alloc(rows * cols)
		at := func(r, c int) core.NodeID { return base + core.NodeID(r*cols+c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					emit(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					emit(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}

// RandomSparse includes each unordered pair {i, j}, i<j, independently with
// probability p, trying pairs in i-then-j ascending order. p == 0 and p == 1
// need no random source; anything in between requires WithSeed or WithRand.
// n ≥ 2.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg *builderConfig, emit func(u, v core.NodeID)) error {
		if n < 2 {
			return tooFew("RandomSparse", n, 2)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		base := cfg.alloc(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					emit(base+core.NodeID(i), base+core.NodeID(j))
				}
			}
		}

		return nil
	}
}
