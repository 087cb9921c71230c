package selection

import (
	"maps"
	"slices"
)

// ElementID is the opaque handle of an element in the host's registry.
type ElementID string

// Set is a set of element ids.
type Set map[ElementID]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...ElementID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id ElementID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Add(id ElementID) {
	s[id] = struct{}{}
}

func (s Set) Remove(id ElementID) {
	delete(s, id)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	if s == nil {
		return make(Set)
	}
	return maps.Clone(s)
}

// Sorted returns the members of s in ascending order. Every operation that
// fans out over a set iterates in this order so that callbacks are
// deterministic.
func (s Set) Sorted() []ElementID {
	return slices.Sorted(maps.Keys(s))
}

// Minus returns the members of s that are not in other, sorted.
func (s Set) Minus(other Set) []ElementID {
	var out []ElementID
	for _, id := range s.Sorted() {
		if !other.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
