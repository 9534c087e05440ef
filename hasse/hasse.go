// SPDX-License-Identifier: MIT

package hasse

import (
	"fmt"

	"github.com/katalvlaran/finpos/poset"
)

// Poset is a finite poset encoded by its covering relation:
// cov[x] holds the elements directly above x.
//
// The zero value is not usable; construct with New, NewUnchecked or a
// canonical constructor.
type Poset struct {
	md  poset.Metadata
	cov map[poset.Element]poset.ElementSet
}

// New builds a poset from a raw cover mapping. Validation here is
// shape-only: every cover target must be a key of the mapping and no
// element may cover itself (the covering relation is strict).
// Acyclicity is deferred to closure conversion, which reports
// poset.ErrMalformedRelation on a cycle.
func New(cov map[poset.Element]poset.ElementSet) (*Poset, error) {
	p := newPoset(cloneCovers(cov))
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewUnchecked builds a poset from a cover mapping known to be a valid
// Hasse diagram, skipping the shape pass. Conversions use it for
// payloads valid by construction.
func NewUnchecked(cov map[poset.Element]poset.ElementSet) *Poset {
	return newPoset(cloneCovers(cov))
}

// newPoset takes ownership of cov.
func newPoset(cov map[poset.Element]poset.ElementSet) *Poset {
	return &Poset{
		md:  poset.NewMetadata(len(cov)),
		cov: cov,
	}
}

func (p *Poset) validate() error {
	for x, covers := range p.cov {
		if covers.Has(x) {
			return fmt.Errorf("New: element %d covers itself: %w", x, poset.ErrMalformedRelation)
		}
		for y := range covers {
			if _, ok := p.cov[y]; !ok {
				return fmt.Errorf("New: %d covers unknown element %d: %w",
					x, y, poset.ErrMalformedRelation)
			}
		}
	}
	return nil
}

// Covers returns a deep copy of the cover mapping.
// Complexity: O(n + e) where e is the number of covering edges.
func (p *Poset) Covers() map[poset.Element]poset.ElementSet {
	return cloneCovers(p.cov)
}

// Eq reports whether q has the same universe and the same covering
// edges. Metadata snapshots are not compared.
func (p *Poset) Eq(q *Poset) bool {
	if len(p.cov) != len(q.cov) {
		return false
	}
	for x, covers := range p.cov {
		other, ok := q.cov[x]
		if !ok || !covers.Equal(other) {
			return false
		}
	}
	return true
}

func cloneCovers(cov map[poset.Element]poset.ElementSet) map[poset.Element]poset.ElementSet {
	out := make(map[poset.Element]poset.ElementSet, len(cov))
	for x, covers := range cov {
		out[x] = covers.Clone()
	}
	return out
}
