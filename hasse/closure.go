// SPDX-License-Identifier: MIT

package hasse

import "github.com/katalvlaran/finpos/poset"

// Close returns the reflexive-transitive closure of a cover mapping:
// for each element, the set of elements reachable via zero or more
// covering edges, the element itself included. The input is not
// modified.
//
// Close terminates on any mapping, cyclic ones included; whether the
// result is antisymmetric (i.e. the input was a genuine Hasse diagram)
// is for the caller to check.
//
// Time:   O(n·(n+e)) — one BFS per element.
// Memory: O(n²) for the result in the worst case.
func Close(cov map[poset.Element]poset.ElementSet) map[poset.Element]poset.ElementSet {
	cls := make(map[poset.Element]poset.ElementSet, len(cov))
	for src := range cov {
		reach := poset.NewElementSet(src)
		queue := []poset.Element{src}
		for qi := 0; qi < len(queue); qi++ {
			for next := range cov[queue[qi]] {
				if !reach.Has(next) {
					reach.Add(next)
					queue = append(queue, next)
				}
			}
		}
		cls[src] = reach
	}
	return cls
}
