// SPDX-License-Identifier: MIT

package poset

import "fmt"

// Metadata caches derived facts about a poset: its cardinality, bottom
// and top elements, and minimal/maximal sets. Every representation
// embeds one Metadata value.
//
// Fields other than the cardinality start out uncomputed; the Find*
// operations of the owning representation fill them in. Reading an
// uncomputed field yields ErrNotComputed. Mutating operations do not
// invalidate previously computed fields — metadata is a snapshot, and
// callers must re-run Find* after structural mutation.
type Metadata struct {
	n        int
	bot      *Presence
	top      *Presence
	minimals ElementSet
	maximals ElementSet
}

// NewMetadata returns fresh metadata for a poset of cardinality n with
// every derived field uncomputed.
func NewMetadata(n int) Metadata {
	return Metadata{n: n}
}

// Len returns the cardinality of the underlying set.
func (md *Metadata) Len() int { return md.n }

// SetLen records a new cardinality after a mutation changed the
// universe. For use by representation implementations.
func (md *Metadata) SetLen(n int) { md.n = n }

// Bot returns the recorded bottom-element result.
// Returns ErrNotComputed if FindBot never ran on this value.
func (md *Metadata) Bot() (Presence, error) {
	if md.bot == nil {
		return Presence{}, fmt.Errorf("Bot: %w", ErrNotComputed)
	}
	return *md.bot, nil
}

// Top returns the recorded top-element result.
// Returns ErrNotComputed if FindTop never ran on this value.
func (md *Metadata) Top() (Presence, error) {
	if md.top == nil {
		return Presence{}, fmt.Errorf("Top: %w", ErrNotComputed)
	}
	return *md.top, nil
}

// Minimals returns a copy of the recorded minimal set.
// Returns ErrNotComputed if FindMinimals never ran on this value.
func (md *Metadata) Minimals() (ElementSet, error) {
	if md.minimals == nil {
		return nil, fmt.Errorf("Minimals: %w", ErrNotComputed)
	}
	return md.minimals.Clone(), nil
}

// Maximals returns a copy of the recorded maximal set.
// Returns ErrNotComputed if FindMaximals never ran on this value.
func (md *Metadata) Maximals() (ElementSet, error) {
	if md.maximals == nil {
		return nil, fmt.Errorf("Maximals: %w", ErrNotComputed)
	}
	return md.maximals.Clone(), nil
}

// SetBot records a bottom-element result. For use by Find* and adjoin
// implementations.
func (md *Metadata) SetBot(p Presence) { md.bot = &p }

// SetTop records a top-element result.
func (md *Metadata) SetTop(p Presence) { md.top = &p }

// SetMinimals records the minimal set. The set is stored as given; do
// not mutate it afterwards.
func (md *Metadata) SetMinimals(s ElementSet) { md.minimals = s }

// SetMaximals records the maximal set.
func (md *Metadata) SetMaximals(s ElementSet) { md.maximals = s }
