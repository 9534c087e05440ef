// SPDX-License-Identifier: MIT

package poset

import "fmt"

// Presence is the outcome of computing a distinguished element such as
// the bottom or the top. Verifying that no such element exists can be
// as much work as finding one, so once the work is done the result
// records either the element or its provable absence.
//
// Presence values are produced by Known and KnownAbsent and are only
// ever handed out by Metadata after the corresponding Find* ran; the
// "never computed" state is reported separately as ErrNotComputed.
type Presence struct {
	elt    Element
	exists bool
}

// Known returns a Presence recording that e is the element in question.
func Known(e Element) Presence { return Presence{elt: e, exists: true} }

// KnownAbsent returns a Presence recording that the poset provably has
// no such element. Absence is a valid outcome, not an error.
func KnownAbsent() Presence { return Presence{} }

// Exists reports whether the computation found an element.
func (p Presence) Exists() bool { return p.exists }

// Element returns the recorded element. The boolean is false when the
// element is provably absent.
func (p Presence) Element() (Element, bool) { return p.elt, p.exists }

// String renders the presence for debugging: the element id, or "absent".
func (p Presence) String() string {
	if !p.exists {
		return "absent"
	}
	return fmt.Sprintf("%d", p.elt)
}
