// SPDX-License-Identifier: MIT

package poset

import "errors"

// Sentinel errors shared by all representations. Callers branch with
// errors.Is; implementations attach method context via %w wrapping.
var (
	// ErrIndexOutOfRange indicates an element argument outside the
	// poset's universe, passed to Leq, Sub or a selector. Arguments are
	// never silently clamped.
	ErrIndexOutOfRange = errors.New("poset: element index out of range")

	// ErrMalformedRelation indicates a raw payload that is not a poset:
	// a matrix or reachable-set relation violating reflexivity,
	// antisymmetry or transitivity at construction time, or a covering
	// relation whose closure turns out cyclic.
	ErrMalformedRelation = errors.New("poset: malformed relation")

	// ErrNotComputed indicates a metadata field was read before the
	// corresponding Find* ever ran. Distinct from computed-and-absent,
	// which is a valid result, not an error.
	ErrNotComputed = errors.New("poset: metadata not computed")
)
