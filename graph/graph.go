// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/finpos/poset"
)

// Poset is a finite poset encoded as per-element reachable sets:
// rel[x] holds every y with x ≤ y, x itself included.
//
// The zero value is not usable; construct with New, NewUnchecked or a
// canonical constructor.
type Poset struct {
	md  poset.Metadata
	rel map[poset.Element]poset.ElementSet
}

// New builds a poset from a raw reachable-set mapping and validates
// that it encodes a partial order: every set member must be a key of
// the mapping, and the relation must be reflexive (x ∈ rel[x]),
// antisymmetric and transitive.
//
// Returns poset.ErrMalformedRelation otherwise.
// Complexity: O(n³) for the transitivity pass.
func New(rel map[poset.Element]poset.ElementSet) (*Poset, error) {
	p := newPoset(cloneRelation(rel))
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewUnchecked builds a poset from a mapping known to satisfy the
// partial-order laws, skipping the O(n³) invariant pass. Conversions
// use it for payloads valid by construction; anything else should go
// through New.
func NewUnchecked(rel map[poset.Element]poset.ElementSet) *Poset {
	return newPoset(cloneRelation(rel))
}

// newPoset takes ownership of rel.
func newPoset(rel map[poset.Element]poset.ElementSet) *Poset {
	return &Poset{
		md:  poset.NewMetadata(len(rel)),
		rel: rel,
	}
}

func (p *Poset) validate() error {
	for x, up := range p.rel {
		for y := range up {
			if _, ok := p.rel[y]; !ok {
				return fmt.Errorf("New: %d relates to unknown element %d: %w",
					x, y, poset.ErrMalformedRelation)
			}
		}
		if !up.Has(x) {
			return fmt.Errorf("New: not reflexive at %d: %w", x, poset.ErrMalformedRelation)
		}
	}
	for x, up := range p.rel {
		for y := range up {
			if y != x && p.rel[y].Has(x) {
				return fmt.Errorf("New: antisymmetry violated by %d and %d: %w",
					x, y, poset.ErrMalformedRelation)
			}
			for z := range p.rel[y] {
				if !up.Has(z) {
					return fmt.Errorf("New: transitivity violated: %d ≤ %d ≤ %d but not %d ≤ %d: %w",
						x, y, z, x, z, poset.ErrMalformedRelation)
				}
			}
		}
	}
	return nil
}

// Relation returns a deep copy of the reachable-set mapping.
// Complexity: O(n + r) where r is the number of related pairs.
func (p *Poset) Relation() map[poset.Element]poset.ElementSet {
	return cloneRelation(p.rel)
}

// Eq reports whether q encodes the same universe and the same
// relation. Metadata snapshots are not compared.
func (p *Poset) Eq(q *Poset) bool {
	if len(p.rel) != len(q.rel) {
		return false
	}
	for x, up := range p.rel {
		other, ok := q.rel[x]
		if !ok || !up.Equal(other) {
			return false
		}
	}
	return true
}

func cloneRelation(rel map[poset.Element]poset.ElementSet) map[poset.Element]poset.ElementSet {
	out := make(map[poset.Element]poset.ElementSet, len(rel))
	for x, up := range rel {
		out[x] = up.Clone()
	}
	return out
}
