// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/finpos/graph"
	"github.com/katalvlaran/finpos/hasse"
	"github.com/katalvlaran/finpos/matrix"
	"github.com/katalvlaran/finpos/poset"
)

// MatrixToGraph re-encodes a boolean-grid poset as reachable sets:
// g(x) = { y : M[x][y] }. Reflexive diagonals become self-membership.
// Complexity: O(n²).
func MatrixToGraph(p *matrix.Poset) *graph.Poset {
	elems := slices.Collect(p.Elements())
	grid := p.Grid()
	rel := make(map[poset.Element]poset.ElementSet, len(elems))
	for i, x := range elems {
		up := poset.NewElementSet()
		for j, y := range elems {
			if grid[i][j] {
				up.Add(y)
			}
		}
		rel[x] = up
	}
	return graph.NewUnchecked(rel)
}

// GraphToMatrix re-encodes reachable sets as a boolean grid over the
// ascending universe: M[x][y] = (y ∈ g(x)). Complexity: O(n²).
func GraphToMatrix(p *graph.Poset) *matrix.Poset {
	rel := p.Relation()
	elems := slices.Sorted(maps.Keys(rel))
	grid := make([][]bool, len(elems))
	for i, x := range elems {
		grid[i] = make([]bool, len(elems))
		for j, y := range elems {
			grid[i][j] = rel[x].Has(y)
		}
	}
	return matrix.NewUnchecked(elems, grid)
}

// GraphToHasse computes the transitive reduction of the full relation,
// keeping only direct covers. This is the expensive direction:
// O(n³) worst case. See hasse.Reduce.
func GraphToHasse(p *graph.Poset) *hasse.Poset {
	return hasse.NewUnchecked(hasse.Reduce(p.Relation()))
}

// HasseToGraph computes the reflexive-transitive closure of the
// covering relation. This is where a covering payload's deferred
// validation lands: if the closure is not antisymmetric the covering
// edges contain a cycle, and the payload never encoded a poset —
// returns poset.ErrMalformedRelation. Complexity: O(n·(n+e)) plus an
// O(n²) antisymmetry scan.
func HasseToGraph(p *hasse.Poset) (*graph.Poset, error) {
	cls := hasse.Close(p.Covers())
	for x, up := range cls {
		for y := range up {
			if y != x && cls[y].Has(x) {
				return nil, fmt.Errorf("HasseToGraph: closure contains a cycle through %d and %d: %w",
					x, y, poset.ErrMalformedRelation)
			}
		}
	}
	return graph.NewUnchecked(cls), nil
}

// MatrixToHasse composes MatrixToGraph with GraphToHasse; no direct
// algorithm is needed beyond the composition.
func MatrixToHasse(p *matrix.Poset) *hasse.Poset {
	return GraphToHasse(MatrixToGraph(p))
}

// HasseToMatrix composes HasseToGraph with GraphToMatrix, inheriting
// the cycle check.
func HasseToMatrix(p *hasse.Poset) (*matrix.Poset, error) {
	g, err := HasseToGraph(p)
	if err != nil {
		return nil, fmt.Errorf("HasseToMatrix: %w", err)
	}
	return GraphToMatrix(g), nil
}
