// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/finpos/poset"
)

// Poset is a finite poset encoded as a dense boolean grid.
//
// grid[index[x]][index[y]] reports x ≤ y. elems holds the universe in
// ascending order; index maps an element id to its row/column. The two
// stay consistent for the lifetime of the value.
//
// The zero value is not usable; construct with New, NewUnchecked or a
// canonical constructor.
type Poset struct {
	md    poset.Metadata
	elems []poset.Element
	index map[poset.Element]int
	grid  [][]bool
}

// New builds a poset over the universe {0, ..., len(grid)-1} from a raw
// boolean grid and validates that it encodes a partial order.
//
// Returns poset.ErrMalformedRelation if the grid is not square or
// violates reflexivity, antisymmetry or transitivity.
// Complexity: O(n³) for the transitivity pass.
func New(grid [][]bool) (*Poset, error) {
	n := len(grid)
	elems := make([]poset.Element, n)
	for i := range elems {
		elems[i] = i
	}
	p := newPoset(elems, cloneGrid(grid))
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewUnchecked builds a poset over an explicit ascending universe
// without running the invariant pass. The caller vouches that elems is
// strictly ascending, that grid is square of matching size, and that
// the grid is reflexive, antisymmetric and transitive. Conversions use
// it for payloads that are valid by construction; anything else should
// go through New.
func NewUnchecked(elems []poset.Element, grid [][]bool) *Poset {
	return newPoset(slices.Clone(elems), cloneGrid(grid))
}

// newPoset wires up the index and fresh metadata. Takes ownership of
// both arguments.
func newPoset(elems []poset.Element, grid [][]bool) *Poset {
	index := make(map[poset.Element]int, len(elems))
	for i, e := range elems {
		index[e] = i
	}
	return &Poset{
		md:    poset.NewMetadata(len(elems)),
		elems: elems,
		index: index,
		grid:  grid,
	}
}

// validate checks squareness and the three partial-order laws.
func (p *Poset) validate() error {
	n := len(p.grid)
	for i, row := range p.grid {
		if len(row) != n {
			return fmt.Errorf("New: row %d has length %d, want %d: %w",
				i, len(row), n, poset.ErrMalformedRelation)
		}
	}
	for i := 0; i < n; i++ {
		if !p.grid[i][i] {
			return fmt.Errorf("New: not reflexive at %d: %w",
				p.elems[i], poset.ErrMalformedRelation)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p.grid[i][j] && p.grid[j][i] {
				return fmt.Errorf("New: antisymmetry violated by %d and %d: %w",
					p.elems[i], p.elems[j], poset.ErrMalformedRelation)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !p.grid[i][j] {
				continue
			}
			for k := 0; k < n; k++ {
				if p.grid[j][k] && !p.grid[i][k] {
					return fmt.Errorf("New: transitivity violated: %d ≤ %d ≤ %d but not %d ≤ %d: %w",
						p.elems[i], p.elems[j], p.elems[k], p.elems[i], p.elems[k],
						poset.ErrMalformedRelation)
				}
			}
		}
	}
	return nil
}

// Grid returns a deep copy of the boolean grid, row order matching the
// ascending universe. Complexity: O(n²).
func (p *Poset) Grid() [][]bool { return cloneGrid(p.grid) }

// Index returns a copy of the element→row index.
func (p *Poset) Index() map[poset.Element]int { return maps.Clone(p.index) }

// Eq reports whether q encodes the same universe and the same relation.
// Metadata snapshots are not compared.
func (p *Poset) Eq(q *Poset) bool {
	if !slices.Equal(p.elems, q.elems) {
		return false
	}
	for i := range p.grid {
		if !slices.Equal(p.grid[i], q.grid[i]) {
			return false
		}
	}
	return true
}

func cloneGrid(grid [][]bool) [][]bool {
	out := make([][]bool, len(grid))
	for i, row := range grid {
		out[i] = slices.Clone(row)
	}
	return out
}
