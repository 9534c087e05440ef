// SPDX-License-Identifier: MIT

// Package convert moves a poset between its three encodings without
// changing its meaning. Six directed functions form a commuting
// diagram over the matrix, graph and hasse representations; every
// conversion is semantics preserving, so any round trip denotes the
// relation it started from.
//
// matrix ↔ graph is a plain re-encoding of the same full relation.
// graph → hasse is the transitive reduction (hasse.Reduce); hasse →
// graph is the reflexive-transitive closure (hasse.Close). The matrix
// ↔ hasse pair composes through the graph encoding.
//
// The hasse-sourced conversions are the one place a covering payload's
// deferred validation lands: if the closure turns out non-antisymmetric
// — the covering edges contain a cycle — HasseToGraph and HasseToMatrix
// report poset.ErrMalformedRelation.
//
// Conversions read their input through the deep-copy payload accessors
// and return new values with fresh (uncomputed) metadata.
package convert
