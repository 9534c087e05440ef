// SPDX-License-Identifier: MIT

package graph

import "github.com/katalvlaran/finpos/poset"

// NewChain returns the canonical fully ordered poset
// 0 < 1 < ... < n-1: element i reaches every j ≥ i.
// Complexity: O(n²).
func NewChain(n int) *Poset {
	rel := make(map[poset.Element]poset.ElementSet, n)
	for i := 0; i < n; i++ {
		up := poset.NewElementSet()
		for j := i; j < n; j++ {
			up.Add(j)
		}
		rel[i] = up
	}
	return newPoset(rel)
}

// NewAntichain returns the canonical poset with no relation besides
// reflexivity: every element reaches only itself. Complexity: O(n).
func NewAntichain(n int) *Poset {
	rel := make(map[poset.Element]poset.ElementSet, n)
	for i := 0; i < n; i++ {
		rel[i] = poset.NewElementSet(i)
	}
	return newPoset(rel)
}

// NewCorolla returns one root (id n) below n incomparable leaves.
// Derived from NewAntichain and AdjoinBot; see poset.Corolla.
func NewCorolla(n int) *Poset {
	return poset.Corolla(NewAntichain, n)
}
