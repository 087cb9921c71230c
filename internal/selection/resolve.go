package selection

import "boxgrip/internal/pointer"

// ResolveClick returns the selection that results from a primary press on
// target with the given modifiers. current is not modified.
//
// The toggle modifier wins over the additive one. Without modifiers a press
// on an already selected element keeps the whole selection, so that an
// existing multi-selection can be dragged.
func ResolveClick(current Set, target ElementID, mods pointer.Modifiers) Set {
	switch {
	case mods.Has(pointer.ModToggle):
		next := current.Clone()
		if next.Has(target) {
			next.Remove(target)
		} else {
			next.Add(target)
		}
		return next

	case mods.Has(pointer.ModAdditive):
		next := current.Clone()
		next.Add(target)
		return next

	case current.Has(target):
		return current.Clone()

	default:
		return NewSet(target)
	}
}
