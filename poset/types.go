// SPDX-License-Identifier: MIT

package poset

import (
	"maps"
	"slices"
)

// Element identifies a member of a poset's underlying set. A fresh
// poset of cardinality n uses {0, ..., n-1}; sub-poset extraction keeps
// original identifiers, so the universe need not stay contiguous.
type Element = int

// ElementSet is an unordered, duplicate-free collection of elements,
// used for neighbor sets, minimal/maximal sets and sub-poset selectors.
// The zero value is not usable; create sets with NewElementSet.
type ElementSet map[Element]struct{}

// NewElementSet returns a set holding the given elements.
// Complexity: O(len(elems)).
func NewElementSet(elems ...Element) ElementSet {
	s := make(ElementSet, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts e into the set. Inserting an existing element is a no-op.
func (s ElementSet) Add(e Element) { s[e] = struct{}{} }

// Has reports whether e is a member of the set.
func (s ElementSet) Has(e Element) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements in the set.
func (s ElementSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
// Complexity: O(|s|).
func (s ElementSet) Clone() ElementSet {
	return maps.Clone(s)
}

// Intersect returns a new set holding the elements present in both s
// and other. Complexity: O(min(|s|, |other|)).
func (s ElementSet) Intersect(other ElementSet) ElementSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(ElementSet, len(small))
	for e := range small {
		if large.Has(e) {
			out.Add(e)
		}
	}
	return out
}

// Sorted returns the members in ascending order. Useful for
// deterministic iteration and display.
// Complexity: O(|s| log |s|).
func (s ElementSet) Sorted() []Element {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether s and other hold exactly the same elements.
func (s ElementSet) Equal(other ElementSet) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if !other.Has(e) {
			return false
		}
	}
	return true
}
