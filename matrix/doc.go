// SPDX-License-Identifier: MIT

// Package matrix implements the dense boolean-matrix representation of
// a finite poset: an n×n grid M with M[i][j] set iff i ≤ j. The grid
// must be reflexive (M[i][i] for all i), antisymmetric (M[i][j] and
// M[j][i] only when i = j) and transitive (M[i][j] and M[j][k] imply
// M[i][k]); New verifies all three and rejects anything else with
// poset.ErrMalformedRelation.
//
// Rows and columns are addressed through an element→row index, so a
// sub-poset keeps its original element identifiers even though the
// stored grid is compacted. On a fresh poset the index is the identity
// over {0, ..., n-1}.
//
// Representation-specific algorithmics:
//
//   - FindBot scans rows for all-true: a bottom's row covers every column.
//   - FindMaximals scans rows for "only the diagonal set".
//   - Op is the matrix transpose.
//
// All queries run in O(n²); construction-time validation is O(n³).
package matrix
