// Package finpos is an in-memory toolkit for creating, manipulating and
// analyzing finite partially ordered sets.
//
// A poset is a set with an ordering x ≤ y that is reflexive (x ≤ x),
// antisymmetric (x ≤ y and y ≤ x imply x = y) and transitive (x ≤ y and
// y ≤ z imply x ≤ z). finpos keeps three interchangeable encodings of
// the same mathematical object and converts freely between them.
//
// Everything is organized under six subpackages:
//
//	poset/   — element space, ElementSet, Presence, Metadata & the shared contract
//	matrix/  — dense boolean-matrix representation: M[i][j] holds iff i ≤ j
//	graph/   — reachable-set representation: g(i) = { j : i ≤ j }, self included
//	hasse/   — covering-relation representation + closure/reduction kernels
//	convert/ — the six directed conversions between representations
//	dot/     — Graphviz DOT text for covering relations
//
// Each representation implements the same operation contract: canonical
// constructors (chain, antichain, corolla), extremal-element discovery
// (bottom, top, minimal and maximal sets), duality, sub-poset extraction
// and adjunction of universal elements. Conversions are semantics
// preserving: any round trip denotes the relation it started from.
//
// Quick ASCII example, the "vee" poset on three elements:
//
//	1   2
//	 \ /
//	  0
//
// has bottom 0, no top, minimals {0} and maximals {1, 2}.
//
//	go get github.com/katalvlaran/finpos
package finpos
