package domain

import (
	"image"

	"boxgrip/internal/selection"
)

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventElementsMoved    EventType = "ElementsMoved"
	EventSelectionChanged EventType = "SelectionChanged"
	EventElementAdded     EventType = "ElementAdded"
	EventElementRemoved   EventType = "ElementRemoved"
	EventLayoutChanged    EventType = "LayoutChanged"
	EventError            EventType = "Error"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ElementsMovedEvent is emitted once per drag step with the delta applied
// to every moved element
type ElementsMovedEvent struct {
	IDs    []selection.ElementID
	DX, DY int
}

func (e ElementsMovedEvent) Type() EventType { return EventElementsMoved }

// SelectionChangedEvent is emitted when the selection indicator of at least
// one element changed
type SelectionChangedEvent struct {
	Selected []selection.ElementID // full selection after the change
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ElementAddedEvent is emitted when a box is created and managed
type ElementAddedEvent struct {
	ID     selection.ElementID
	Bounds image.Rectangle
}

func (e ElementAddedEvent) Type() EventType { return EventElementAdded }

// ElementRemovedEvent is emitted when a box is unmanaged and deleted
type ElementRemovedEvent struct {
	ID selection.ElementID
}

func (e ElementRemovedEvent) Type() EventType { return EventElementRemoved }

// LayoutChangedEvent is emitted when a gesture or command leaves the
// layout different from what was last saved
type LayoutChangedEvent struct {
	Layout Layout
}

func (e LayoutChangedEvent) Type() EventType { return EventLayoutChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigSavedEvent is emitted when the layout was written to disk
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
