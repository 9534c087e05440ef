// SPDX-License-Identifier: MIT

package hasse

import "github.com/katalvlaran/finpos/poset"

// Reduce returns the transitive reduction of a closed partial order:
// the covering relation whose closure is the input. rel must be a
// reflexive, antisymmetric, transitive reachable-set mapping (the
// graph representation's payload); the result maps each element to its
// direct covers only.
//
// j directly covers i iff i ≤ j, i ≠ j, and no witness k with
// i ≤ k ≤ j sits strictly between them. Every such redundant pair is
// discarded. The input is not modified.
//
// Time:   O(n³) worst case — for each related pair, a scan over the
// source's reachable set for a witness.
// Memory: O(n + e) for the cover mapping.
func Reduce(rel map[poset.Element]poset.ElementSet) map[poset.Element]poset.ElementSet {
	cov := make(map[poset.Element]poset.ElementSet, len(rel))
	for x, up := range rel {
		covers := poset.NewElementSet()
		for y := range up {
			if y == x {
				continue
			}
			redundant := false
			for k := range up {
				if k == x || k == y {
					continue
				}
				if rel[k].Has(y) {
					redundant = true
					break
				}
			}
			if !redundant {
				covers.Add(y)
			}
		}
		cov[x] = covers
	}
	return cov
}
