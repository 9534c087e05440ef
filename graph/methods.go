// SPDX-License-Identifier: MIT

package graph

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
		for _, e := range slices.Sorted(maps.Keys(p.rel)) {
			if !yield(e) {
				return
			}
		}
	}
}

// Meta exposes the metadata cache.
func (p *Poset) Meta() *poset.Metadata { return &p.md }

// Leq reports whether x ≤ y, i.e. y ∈ rel[x]. Returns
// poset.ErrIndexOutOfRange if either element is outside the universe.
// Complexity: O(1).
func (p *Poset) Leq(x, y poset.Element) (bool, error) {
	up, ok := p.rel[x]
	if !ok {
		return false, fmt.Errorf("Leq: element %d: %w", x, poset.ErrIndexOutOfRange)
	}
	if _, ok = p.rel[y]; !ok {
		return false, fmt.Errorf("Leq: element %d: %w", y, poset.ErrIndexOutOfRange)
	}
	return up.Has(y), nil
}

// FindBot records the bottom element: by self-inclusion its reachable
// set has exactly n members. Complexity: O(n).
func (p *Poset) FindBot() {
	n := len(p.rel)
	for x, up := range p.rel {
		if up.Len() == n {
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

// FindMinimals records the elements reached by nobody else: x is
// minimal iff no y ≠ x has x in its reachable set.
// Complexity: O(n²) set lookups.
func (p *Poset) FindMinimals() {
	minimals := poset.NewElementSet()
	for x := range p.rel {
		minimal := true
		for y, up := range p.rel {
			if y != x && up.Has(x) {
				minimal = false
				break
			}
		}
		if minimal {
			minimals.Add(x)
		}
	}
	p.md.SetMinimals(minimals)
}

// FindMaximals records the elements that reach only themselves:
// |rel[x]| = 1. Complexity: O(n).
func (p *Poset) FindMaximals() {
	maximals := poset.NewElementSet()
	for x, up := range p.rel {
		if up.Len() == 1 {
			maximals.Add(x)
		}
	}
	p.md.SetMaximals(maximals)
}

// Op returns the dual poset: every edge reversed, so the dual's
// reachable sets are this poset's predecessor sets. Self-membership is
// preserved. Complexity: O(n + r).
func (p *Poset) Op() *Poset {
	rel := make(map[poset.Element]poset.ElementSet, len(p.rel))
	for x := range p.rel {
		rel[x] = poset.NewElementSet()
	}
	for x, up := range p.rel {
		for y := range up {
			rel[y].Add(x)
		}
	}
	return newPoset(rel)
}

// AdjoinBot extends the poset in place with a universal minimum whose
// reachable set is the whole (grown) universe. The new element's id is
// one past the largest existing id (0 when empty). Metadata's bottom
// and minimal set become the new element. Complexity: O(n).
func (p *Poset) AdjoinBot() {
	id := p.nextID()
	up := poset.NewElementSet(id)
	for x := range p.rel {
		up.Add(x)
	}
	p.rel[id] = up
	p.md.SetLen(len(p.rel))
	p.md.SetBot(poset.Known(id))
	p.md.SetMinimals(poset.NewElementSet(id))
}

// AdjoinTop dually adjoins a universal maximum: every existing set
// gains the new element, whose own set is the singleton {id}.
// Metadata's top and maximal set become the new element.
// Complexity: O(n).
func (p *Poset) AdjoinTop() {
	id := p.nextID()
	for _, up := range p.rel {
		up.Add(id)
	}
	p.rel[id] = poset.NewElementSet(id)
	p.md.SetLen(len(p.rel))
	p.md.SetTop(poset.Known(id))
	p.md.SetMaximals(poset.NewElementSet(id))
}

// Sub returns the induced sub-poset on the selected elements: each
// kept reachable set intersected with the selection. Identifiers are
// preserved. Returns poset.ErrIndexOutOfRange if sel mentions an
// unknown element. Complexity: O(Σ|rel[x]| for x ∈ sel).
func (p *Poset) Sub(sel poset.ElementSet) (*Poset, error) {
	rel := make(map[poset.Element]poset.ElementSet, sel.Len())
	for x := range sel {
		up, ok := p.rel[x]
		if !ok {
			return nil, fmt.Errorf("Sub: element %d: %w", x, poset.ErrIndexOutOfRange)
		}
		rel[x] = up.Intersect(sel)
	}
	return newPoset(rel), nil
}

// nextID returns one past the largest existing id, 0 when empty.
func (p *Poset) nextID() poset.Element {
	id := poset.Element(0)
	for x := range p.rel {
		if x >= id {
			id = x + 1
		}
	}
	return id
}
