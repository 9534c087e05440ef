// SPDX-License-Identifier: MIT

package hasse

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/finpos/poset"
)

// compile-time check: *Poset satisfies the shared contract.
var _ poset.Poset[*Poset] = (*Poset)(nil)

// Elements yields the universe in ascending order. Restartable; each
// range re-reads the current key set.
func (p *Poset) Elements() iter.Seq[poset.Element] {
	return func(yield func(poset.Element) bool) {
		for _, e := range slices.Sorted(maps.Keys(p.cov)) {
			if !yield(e) {
				return
			}
		}
	}
}

// Meta exposes the metadata cache.
func (p *Poset) Meta() *poset.Metadata { return &p.md }

// Leq reports whether x ≤ y by searching for y along covering edges
// upward from x. Returns poset.ErrIndexOutOfRange if either element is
// outside the universe. Complexity: O(n + e) worst case.
func (p *Poset) Leq(x, y poset.Element) (bool, error) {
	if _, ok := p.cov[x]; !ok {
		return false, fmt.Errorf("Leq: element %d: %w", x, poset.ErrIndexOutOfRange)
	}
	if _, ok := p.cov[y]; !ok {
		return false, fmt.Errorf("Leq: element %d: %w", y, poset.ErrIndexOutOfRange)
	}
	if x == y {
		return true, nil
	}
	seen := poset.NewElementSet(x)
	queue := []poset.Element{x}
	for qi := 0; qi < len(queue); qi++ {
		for next := range p.cov[queue[qi]] {
			if next == y {
				return true, nil
			}
			if !seen.Has(next) {
				seen.Add(next)
				queue = append(queue, next)
			}
		}
	}
	return false, nil
}

// FindBot records the bottom element: the one whose upward reach spans
// the whole universe. Materializes the closure for the scan.
// Complexity: O(n·(n+e)).
func (p *Poset) FindBot() {
	n := len(p.cov)
	for x, reach := range Close(p.cov) {
		if reach.Len() == n {
			p.md.SetBot(poset.Known(x))
			return
		}
	}
	p.md.SetBot(poset.KnownAbsent())
}

// FindTop derives the top from the maximal set: the top exists iff the
// maximal set is a singleton. Refreshes the maximal set as a side
// effect. Complexity: O(n).
func (p *Poset) FindTop() {
	p.FindMaximals()
	maximals, _ := p.md.Maximals()
	if maximals.Len() == 1 {
		p.md.SetTop(poset.Known(maximals.Sorted()[0]))
		return
	}
	p.md.SetTop(poset.KnownAbsent())
}

// FindMinimals records the elements covered by nobody: no incoming
// covering edge means no predecessor at all. Complexity: O(n + e).
func (p *Poset) FindMinimals() {
	p.md.SetMinimals(p.minimals())
}

// FindMaximals records the elements with an empty cover set: nothing
// sits above them. Complexity: O(n).
func (p *Poset) FindMaximals() {
	maximals := poset.NewElementSet()
	for x, covers := range p.cov {
		if covers.Len() == 0 {
			maximals.Add(x)
		}
	}
	p.md.SetMaximals(maximals)
}

// Op returns the dual poset: every covering edge reversed. The covers
// of the dual are exactly the co-covers of the original, so no
// re-reduction is needed. Complexity: O(n + e).
func (p *Poset) Op() *Poset {
	cov := make(map[poset.Element]poset.ElementSet, len(p.cov))
	for x := range p.cov {
		cov[x] = poset.NewElementSet()
	}
	for x, covers := range p.cov {
		for y := range covers {
			cov[y].Add(x)
		}
	}
	return newPoset(cov)
}

// AdjoinBot extends the poset in place with a universal minimum. The
// new element is directly covered by exactly the current minimal
// elements; everything else stays reachable through them. The new
// element's id is one past the largest existing id (0 when empty).
// Metadata's bottom and minimal set become the new element.
// Complexity: O(n + e).
func (p *Poset) AdjoinBot() {
	id := p.nextID()
	p.cov[id] = p.minimals()
	p.md.SetLen(len(p.cov))
	p.md.SetBot(poset.Known(id))
	p.md.SetMinimals(poset.NewElementSet(id))
}

// AdjoinTop dually adjoins a universal maximum: every current maximal
// element gains the new element as its sole cover. Metadata's top and
// maximal set become the new element. Complexity: O(n).
func (p *Poset) AdjoinTop() {
	id := p.nextID()
	for _, covers := range p.cov {
		if covers.Len() == 0 {
			covers.Add(id)
		}
	}
	p.cov[id] = poset.NewElementSet()
	p.md.SetLen(len(p.cov))
	p.md.SetTop(poset.Known(id))
	p.md.SetMaximals(poset.NewElementSet(id))
}

// Sub returns the induced sub-poset on the selected elements. Covering
// edges cannot simply be filtered — restricting a chain 0 < 1 < 2 to
// {0, 2} must keep 0 < 2 even though no covering edge joins them — so
// Sub closes the relation, restricts the closure, and reduces again.
// Identifiers are preserved. Returns poset.ErrIndexOutOfRange if sel
// mentions an unknown element. Complexity: O(n³) worst case.
func (p *Poset) Sub(sel poset.ElementSet) (*Poset, error) {
	for x := range sel {
		if _, ok := p.cov[x]; !ok {
			return nil, fmt.Errorf("Sub: element %d: %w", x, poset.ErrIndexOutOfRange)
		}
	}
	cls := Close(p.cov)
	restricted := make(map[poset.Element]poset.ElementSet, sel.Len())
	for x := range sel {
		restricted[x] = cls[x].Intersect(sel)
	}
	return newPoset(Reduce(restricted)), nil
}

// minimals returns the set of elements with no incoming covering edge.
func (p *Poset) minimals() poset.ElementSet {
	minimals := poset.NewElementSet()
	for x := range p.cov {
		minimals.Add(x)
	}
	for _, covers := range p.cov {
		for y := range covers {
			delete(minimals, y)
		}
	}
	return minimals
}

// nextID returns one past the largest existing id, 0 when empty.
func (p *Poset) nextID() poset.Element {
	id := poset.Element(0)
	for x := range p.cov {
		if x >= id {
			id = x + 1
		}
	}
	return id
}
