// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/finpos/poset"
)

// compile-time check: *Poset satisfies the shared contract.
var _ poset.Poset[*Poset] = (*Poset)(nil)

// Elements yields the universe in ascending order. Restartable.
func (p *Poset) Elements() iter.Seq[poset.Element] {
	return func(yield func(poset.Element) bool) {
		for _, e := range p.elems {
			if !yield(e) {
				return
			}
		}
	}
}

// Meta exposes the metadata cache.
func (p *Poset) Meta() *poset.Metadata { return &p.md }

// Leq reports whether x ≤ y. Returns poset.ErrIndexOutOfRange if
// either element is outside the universe. Complexity: O(1).
func (p *Poset) Leq(x, y poset.Element) (bool, error) {
	i, ok := p.index[x]
	if !ok {
		return false, fmt.Errorf("Leq: element %d: %w", x, poset.ErrIndexOutOfRange)
	}
	j, ok := p.index[y]
	if !ok {
		return false, fmt.Errorf("Leq: element %d: %w", y, poset.ErrIndexOutOfRange)
	}
	return p.grid[i][j], nil
}

// FindBot records the bottom element: the row that covers every
// column. Complexity: O(n²).
func (p *Poset) FindBot() {
	for i, row := range p.grid {
		if !slices.Contains(row, false) {
			p.md.SetBot(poset.Known(p.elems[i]))
			return
		}
	}
	p.md.SetBot(poset.KnownAbsent())
}

// FindTop derives the top from the maximal set: the top exists iff the
// maximal set is a singleton. Refreshes the maximal set as a side
// effect. Complexity: O(n²).
func (p *Poset) FindTop() {
	p.FindMaximals()
	maximals, _ := p.md.Maximals()
	if maximals.Len() == 1 {
		p.md.SetTop(poset.Known(maximals.Sorted()[0]))
		return
	}
	p.md.SetTop(poset.KnownAbsent())
}

// FindMinimals records the elements with no distinct predecessor:
// column i is clear in every row but its own. Complexity: O(n²).
func (p *Poset) FindMinimals() {
	minimals := poset.NewElementSet()
	for i := range p.grid {
		minimal := true
		for j := range p.grid {
			if j != i && p.grid[j][i] {
				minimal = false
				break
			}
		}
		if minimal {
			minimals.Add(p.elems[i])
		}
	}
	p.md.SetMinimals(minimals)
}

// FindMaximals records the elements with no distinct successor: the
// row holds nothing but the diagonal. Complexity: O(n²).
func (p *Poset) FindMaximals() {
	maximals := poset.NewElementSet()
	for i, row := range p.grid {
		maximal := true
		for j, rel := range row {
			if j != i && rel {
				maximal = false
				break
			}
		}
		if maximal {
			maximals.Add(p.elems[i])
		}
	}
	p.md.SetMaximals(maximals)
}

// Op returns the dual poset: the transposed grid over the same
// universe, with fresh metadata. Complexity: O(n²).
func (p *Poset) Op() *Poset {
	n := len(p.elems)
	grid := make([][]bool, n)
	for i := range grid {
		grid[i] = make([]bool, n)
		for j := range grid[i] {
			grid[i][j] = p.grid[j][i]
		}
	}
	return newPoset(slices.Clone(p.elems), grid)
}

// AdjoinBot extends the poset in place with a universal minimum. The
// new element's id is one past the largest existing id (0 when empty).
// The new row is all-true, the new column false elsewhere. Metadata's
// bottom and minimal set become the new element. Complexity: O(n²).
func (p *Poset) AdjoinBot() {
	n := len(p.elems)
	id := p.nextID()
	for i := range p.grid {
		p.grid[i] = append(p.grid[i], false)
	}
	bottom := make([]bool, n+1)
	for i := range bottom {
		bottom[i] = true
	}
	p.grid = append(p.grid, bottom)
	p.elems = append(p.elems, id)
	p.index[id] = n
	p.md.SetLen(n + 1)
	p.md.SetBot(poset.Known(id))
	p.md.SetMinimals(poset.NewElementSet(id))
}

// AdjoinTop dually adjoins a universal maximum: the new column is
// all-true, the new row holds only the diagonal. Metadata's top and
// maximal set become the new element. Complexity: O(n²).
func (p *Poset) AdjoinTop() {
	n := len(p.elems)
	id := p.nextID()
	for i := range p.grid {
		p.grid[i] = append(p.grid[i], true)
	}
	top := make([]bool, n+1)
	top[n] = true
	p.grid = append(p.grid, top)
	p.elems = append(p.elems, id)
	p.index[id] = n
	p.md.SetLen(n + 1)
	p.md.SetTop(poset.Known(id))
	p.md.SetMaximals(poset.NewElementSet(id))
}

// Sub returns the induced sub-poset on the selected elements. Rows and
// columns outside the selection are dropped; identifiers are kept, so
// the result addresses exactly the members of sel. Returns
// poset.ErrIndexOutOfRange if sel mentions an unknown element.
// Complexity: O(|sel|²).
func (p *Poset) Sub(sel poset.ElementSet) (*Poset, error) {
	keep := sel.Sorted()
	rows := make([]int, len(keep))
	for i, e := range keep {
		r, ok := p.index[e]
		if !ok {
			return nil, fmt.Errorf("Sub: element %d: %w", e, poset.ErrIndexOutOfRange)
		}
		rows[i] = r
	}
	grid := make([][]bool, len(keep))
	for i, ri := range rows {
		grid[i] = make([]bool, len(keep))
		for j, rj := range rows {
			grid[i][j] = p.grid[ri][rj]
		}
	}
	return newPoset(keep, grid), nil
}

// nextID returns an id guaranteed not to collide with the universe:
// one past the largest existing id. Equals the cardinality on a fresh,
// contiguous poset.
func (p *Poset) nextID() poset.Element {
	if len(p.elems) == 0 {
		return 0
	}
	return p.elems[len(p.elems)-1] + 1
}
