package input

import (
	"fmt"
	"image"

	"boxgrip/internal/pointer"

	tea "github.com/charmbracelet/bubbletea"
)

// ModifierKey is a physical modifier key
type ModifierKey uint8

const (
	KeyShift ModifierKey = iota + 1
	KeyCtrl
	KeyAlt
)

// ParseModifierKey parses "shift", "ctrl" or "alt"
func ParseModifierKey(name string) (ModifierKey, error) {
	switch name {
	case "shift":
		return KeyShift, nil
	case "ctrl":
		return KeyCtrl, nil
	case "alt":
		return KeyAlt, nil
	}
	return 0, fmt.Errorf("unknown modifier key %q", name)
}

// ModifierMap assigns physical keys to the selection modifiers
type ModifierMap struct {
	Additive ModifierKey
	Toggle   ModifierKey
}

// DefaultModifierMap is shift to extend, ctrl to toggle
var DefaultModifierMap = ModifierMap{Additive: KeyShift, Toggle: KeyCtrl}

// NewModifierMap builds a map from configured key names
func NewModifierMap(additive, toggle string) (ModifierMap, error) {
	a, err := ParseModifierKey(additive)
	if err != nil {
		return ModifierMap{}, err
	}
	t, err := ParseModifierKey(toggle)
	if err != nil {
		return ModifierMap{}, err
	}
	if a == t {
		return ModifierMap{}, fmt.Errorf("additive and toggle modifiers are both %q", toggle)
	}
	return ModifierMap{Additive: a, Toggle: t}, nil
}

// Resolve returns the selection modifiers held for the given key states
func (m ModifierMap) Resolve(shift, ctrl, alt bool) pointer.Modifiers {
	held := func(k ModifierKey) bool {
		switch k {
		case KeyShift:
			return shift
		case KeyCtrl:
			return ctrl
		case KeyAlt:
			return alt
		}
		return false
	}
	var mods pointer.Modifiers
	if held(m.Additive) {
		mods |= pointer.ModAdditive
	}
	if held(m.Toggle) {
		mods |= pointer.ModToggle
	}
	return mods
}

// FromTeaMouse converts a bubbletea mouse message to a pointer event in
// terminal cell coordinates. Wheel events are not pointer events and
// report false.
func FromTeaMouse(msg tea.MouseMsg, mm ModifierMap) (pointer.Event, bool) {
	ev := pointer.Event{
		Pos:  image.Pt(msg.X, msg.Y),
		Mods: mm.Resolve(msg.Shift, msg.Ctrl, msg.Alt),
	}

	switch msg.Button {
	case tea.MouseButtonNone:
		ev.Button = pointer.ButtonNone
	case tea.MouseButtonLeft:
		ev.Button = pointer.ButtonPrimary
	case tea.MouseButtonMiddle:
		ev.Button = pointer.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = pointer.ButtonSecondary
	default:
		return pointer.Event{}, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = pointer.ActionPress
	case tea.MouseActionMotion:
		ev.Action = pointer.ActionMotion
	case tea.MouseActionRelease:
		ev.Action = pointer.ActionRelease
	default:
		return pointer.Event{}, false
	}
	return ev, true
}
