// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/finpos/poset"

// NewChain returns the canonical fully ordered poset
// 0 < 1 < ... < n-1: the upper-triangular all-true grid.
// Complexity: O(n²).
func NewChain(n int) *Poset {
	elems := make([]poset.Element, n)
	grid := make([][]bool, n)
	for i := range grid {
		elems[i] = i
		grid[i] = make([]bool, n)
		for j := i; j < n; j++ {
			grid[i][j] = true
		}
	}
	return newPoset(elems, grid)
}

// NewAntichain returns the canonical poset with no relation besides
// reflexivity: the identity grid. Complexity: O(n²).
func NewAntichain(n int) *Poset {
	elems := make([]poset.Element, n)
	grid := make([][]bool, n)
	for i := range grid {
		elems[i] = i
		grid[i] = make([]bool, n)
		grid[i][i] = true
	}
	return newPoset(elems, grid)
}

// NewCorolla returns one root (id n) below n incomparable leaves.
// Derived from NewAntichain and AdjoinBot; see poset.Corolla.
func NewCorolla(n int) *Poset {
	return poset.Corolla(NewAntichain, n)
}
