package pointer

import "image"

// Button identifies the pointer button involved in an event.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// Action is the kind of pointer event.
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionMotion
	ActionRelease
	ActionEnter
	ActionExit
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionMotion:
		return "motion"
	case ActionRelease:
		return "release"
	case ActionEnter:
		return "enter"
	case ActionExit:
		return "exit"
	default:
		return "none"
	}
}

// Modifiers is a bit set of the selection modifiers held during an event.
// Hosts decide which physical keys map to which modifier.
type Modifiers uint8

const (
	// ModAdditive extends a selection without removing anything (shift by default).
	ModAdditive Modifiers = 1 << iota
	// ModToggle flips the membership of the target (ctrl by default).
	ModToggle
)

// Has reports whether all bits of m2 are set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// Event is a raw pointer event in container-local coordinates.
type Event struct {
	Pos    image.Point
	Button Button
	Action Action
	Mods   Modifiers
}
