// SPDX-License-Identifier: MIT

// Package graph implements the reachable-set representation of a
// finite poset: a mapping g with g(i) = { j : i ≤ j }. By reflexivity
// every set contains its own element, so |g(i)| counts i itself.
//
// That self-inclusion fixes the representation-specific shortcuts:
//
//   - FindBot looks for |g(i)| = n — the bottom reaches everything,
//     including itself.
//   - FindMaximals looks for |g(i)| = 1 — a maximal element reaches
//     only itself.
//
// New validates reflexivity, antisymmetry and transitivity of the
// supplied mapping and rejects anything else with
// poset.ErrMalformedRelation. The mapping's key set is the universe;
// after Sub it may be non-contiguous.
package graph
