package widget

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/

import (
	"bytes"
	"fmt"
)

// StateSet is a set of widget interaction states.
//
type StateSet uint16

// Flags for widget interaction states. Every atomic state corresponds to
// a pseudo-class which theme rules may select on, e.g. "button:hover".
const (
	NoState            StateSet = 0      // unset or error condition
	StateHover         StateSet = 0x0001 // pointer is over the widget
	StateActive        StateSet = 0x0002 // widget is being pressed
	StateFocus         StateSet = 0x0004 // widget owns keyboard focus
	StateFocusWithin   StateSet = 0x0008 // a descendent owns keyboard focus
	StateChecked       StateSet = 0x0010 // toggles and check menu items
	StateDisabled      StateSet = 0x0020 // widget is insensitive
	StateSelected      StateSet = 0x0040 // widget is selected
	StateBackdrop      StateSet = 0x0080 // widget sits in an unfocused window
	StateIndeterminate StateSet = 0x0100 // tri-state toggles
	StateFocusVisible  StateSet = 0x0200 // focus should be rendered visibly
)

var allWidgetStates = []StateSet{
	StateHover, StateActive, StateFocus, StateFocusWithin, StateChecked,
	StateDisabled, StateSelected, StateBackdrop, StateIndeterminate,
	StateFocusVisible,
}

// String returns the pseudo-class name of an atomic state.
func (s StateSet) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StateActive:
		return "active"
	case StateFocus:
		return "focus"
	case StateFocusWithin:
		return "focus-within"
	case StateChecked:
		return "checked"
	case StateDisabled:
		return "disabled"
	case StateSelected:
		return "selected"
	case StateBackdrop:
		return "backdrop"
	case StateIndeterminate:
		return "indeterminate"
	case StateFocusVisible:
		return "focus-visible"
	}
	return fmt.Sprintf("StateSet(%#04x)", uint16(s))
}

// Set sets a given atomic state within this state set.
func (s *StateSet) Set(st StateSet) {
	*s = (*s) | st
}

// Clear removes a given atomic state from this state set.
func (s *StateSet) Clear(st StateSet) {
	*s = (*s) &^ st
}

// Contains checks if a state set contains a given atomic state.
// Returns false for st = NoState.
func (s StateSet) Contains(st StateSet) bool {
	return st != NoState && (s&st > 0)
}

// Overlaps returns true if a given state set shares at least one atomic
// state flag with s (excluding NoState).
func (s StateSet) Overlaps(st StateSet) bool {
	for _, f := range allWidgetStates {
		if s.Contains(f) && st.Contains(f) {
			return true
		}
	}
	return false
}

// FullString returns all atomic states set in a state set.
func (s StateSet) FullString() string {
	var b bytes.Buffer
	first := true
	for _, f := range allWidgetStates {
		if s.Contains(f) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(f.String())
		}
	}
	return b.String()
}

// ParseState returns a state flag from a pseudo-class name.
func ParseState(name string) (StateSet, error) {
	switch name {
	case "hover":
		return StateHover, nil
	case "active":
		return StateActive, nil
	case "focus":
		return StateFocus, nil
	case "focus-within":
		return StateFocusWithin, nil
	case "focus-visible":
		return StateFocusVisible, nil
	case "checked":
		return StateChecked, nil
	case "disabled":
		return StateDisabled, nil
	case "selected":
		return StateSelected, nil
	case "backdrop":
		return StateBackdrop, nil
	case "indeterminate":
		return StateIndeterminate, nil
	}
	return NoState, fmt.Errorf("Unknown widget state: %s", name)
}
