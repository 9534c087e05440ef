// SPDX-License-Identifier: MIT

// Package hasse implements the covering-relation representation of a
// finite poset — the Hasse diagram. The payload maps each element to
// its direct covers: j ∈ cov(i) iff i < j and no element lies strictly
// between them. The covering relation is irreflexive and deliberately
// not transitive; it is the irredundant skeleton of the order and must
// be closed to recover the full relation.
//
// The two relation kernels are exported for reuse:
//
//   - Close computes the reflexive-transitive closure of a cover map by
//     breadth-first reachability from each element.
//   - Reduce computes the transitive reduction of a closed relation —
//     the covering relation — by discarding every pair with a witness
//     strictly between its endpoints.
//
// Queries that need the full order (Leq, FindBot) traverse covering
// edges on demand instead of materializing the closure up front.
//
// Validation at construction is deliberately shallow: New checks shape
// and strictness only, because acyclicity cannot be checked without
// closing the relation. A cyclic payload surfaces as
// poset.ErrMalformedRelation when the closure is taken (see
// convert.HasseToGraph); the in-place traversals themselves terminate
// on any payload.
package hasse
