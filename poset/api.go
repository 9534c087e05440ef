// SPDX-License-Identifier: MIT

// api.go — the operation contract shared by all representations, and
// the one constructor that is derived rather than implemented per
// representation (Corolla).

package poset

import "iter"

// Poset is the capability contract every representation implements
// with identical observable semantics. P is the concrete
// representation type, so Op and Sub stay fully typed.
//
// Find* methods compute and store results in the value's Metadata;
// they do not return them directly. AdjoinBot and AdjoinTop mutate the
// receiver in place and grow the cardinality by one. Op and Sub return
// new, independently owned values with fresh (uncomputed) metadata.
type Poset[P any] interface {
	// Elements yields the universe in ascending order. The sequence is
	// finite and restartable: each range starts over.
	Elements() iter.Seq[Element]

	// Leq reports whether x ≤ y in the represented relation.
	// Returns ErrIndexOutOfRange if either argument is outside the universe.
	Leq(x, y Element) (bool, error)

	// Meta exposes the value's metadata cache.
	Meta() *Metadata

	// FindBot records the unique element b with b ≤ x for all x, or its
	// provable absence, in the metadata.
	FindBot()

	// FindTop records the unique element t with x ≤ t for all x, or its
	// provable absence. Derived from FindMaximals: the top exists iff
	// the maximal set is a singleton, so FindTop refreshes the maximal
	// set as a side effect.
	FindTop()

	// FindMinimals records the set of elements with no distinct
	// predecessor. Non-empty whenever the poset is.
	FindMinimals()

	// FindMaximals records the set of elements with no distinct
	// successor. Non-empty whenever the poset is.
	FindMaximals()

	// Op returns the dual poset: every relation x ≤ y reversed.
	// Involution: Op(Op(p)) denotes the same relation as p.
	Op() P

	// AdjoinBot extends the poset in place with one new universal
	// minimum below every existing element. The new element's id is one
	// past the largest existing id (0 for the empty poset). Metadata's
	// bottom and minimal set are updated to the new element; all other
	// fields keep their previous snapshot.
	AdjoinBot()

	// AdjoinTop dually adjoins a universal maximum and updates
	// metadata's top and maximal set.
	AdjoinTop()

	// Sub returns the induced sub-poset on the selected elements.
	// Identifiers are preserved — no re-indexing happens — and relation
	// pairs with an endpoint outside the selection are dropped.
	// Returns ErrIndexOutOfRange if the selector mentions an element
	// outside the universe.
	Sub(sel ElementSet) (P, error)
}

// Corolla builds the canonical corolla — one root below n pairwise
// incomparable leaves — in whichever representation the antichain
// constructor belongs to. Defined once in terms of the two primitives
// so every representation inherits it:
//
//	c := poset.Corolla(graph.NewAntichain, 3) // 4 elements, root id 3
//
// Cardinality of the result is n+1; the root is the unique bottom and
// sole minimal element, the n leaves are the maximal elements.
func Corolla[P Poset[P]](antichain func(n int) P, n int) P {
	c := antichain(n)
	c.AdjoinBot()
	return c
}
