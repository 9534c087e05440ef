// SPDX-License-Identifier: MIT

// Package poset defines the shared model every representation of a
// finite partially ordered set builds on: the element space, element
// sets, the Presence result of extremal-element computations, the
// Metadata cache, the sentinel error set, and the operation contract
// implemented by the matrix, graph and hasse representations.
//
// # Element space
//
// The underlying set of a fresh poset is {0, 1, ..., n-1}. Elements are
// plain integers; there is no node type and no pointer-linked structure.
// Sub-poset extraction keeps original identifiers, so after Sub the
// universe may be a non-contiguous subset of the original ids.
//
// # Metadata discipline
//
// Metadata fields (bottom, top, minimal set, maximal set) are computed
// on demand by the Find* operations and record either the element found
// or its provable absence — never computed, computed-and-known and
// computed-and-absent are three distinct states. Mutating operations do
// NOT invalidate previously computed fields; metadata is a snapshot and
// callers must re-run the corresponding Find* after any structural
// mutation.
//
// # Errors
//
//	ErrIndexOutOfRange   - element argument outside the poset's universe.
//	ErrMalformedRelation - payload violates reflexivity, antisymmetry or transitivity.
//	ErrNotComputed       - metadata field read before its Find* ever ran.
package poset
