// SPDX-License-Identifier: MIT

package hasse

import "github.com/katalvlaran/finpos/poset"

// NewChain returns the canonical fully ordered poset
// 0 < 1 < ... < n-1: each element covered by its successor only.
// Complexity: O(n).
func NewChain(n int) *Poset {
	cov := make(map[poset.Element]poset.ElementSet, n)
	for i := 0; i < n; i++ {
		if i+1 < n {
			cov[i] = poset.NewElementSet(i + 1)
		} else {
			cov[i] = poset.NewElementSet()
		}
	}
	return newPoset(cov)
}

// NewAntichain returns the canonical poset with no relation besides
// reflexivity: no covering edges at all. Complexity: O(n).
func NewAntichain(n int) *Poset {
	cov := make(map[poset.Element]poset.ElementSet, n)
	for i := 0; i < n; i++ {
		cov[i] = poset.NewElementSet()
	}
	return newPoset(cov)
}

// NewCorolla returns one root (id n) below n incomparable leaves.
// Derived from NewAntichain and AdjoinBot; see poset.Corolla.
func NewCorolla(n int) *Poset {
	return poset.Corolla(NewAntichain, n)
}
