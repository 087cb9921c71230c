package selection

import (
	"fmt"
	"image"
	"io"
	"log"
	"sync/atomic"

	"boxgrip/internal/pointer"
)

// Binder attaches and detaches tagged pointer listeners. *pointer.Router
// implements it.
type Binder interface {
	Container() pointer.Target
	Attach(t pointer.Target, tag pointer.Tag, l pointer.Listener) error
	Detach(t pointer.Target, tag pointer.Tag) bool
}

// Logger is the subset of *log.Logger the manager uses.
type Logger interface {
	Printf(format string, v ...any)
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for gesture tracing.
func WithLogger(l Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithTag overrides the listener tag. Tags must be unique per binder.
func WithTag(tag pointer.Tag) Option {
	return func(m *Manager) {
		m.tag = tag
	}
}

var managerSeq atomic.Uint64

// Manager owns the managed and selected sets for one container and drives
// the rectangle, click and drag gestures.
type Manager struct {
	binder    Binder
	ui        Selectionable
	cursors   CursorSetter
	logger    Logger
	tag       pointer.Tag
	container pointer.Target

	managed  Set
	selected Set

	band     *containerController
	elements map[ElementID]*elementController
	// dragging is the single element whose tracker is armed, if any
	dragging *elementController

	discarded bool
}

// New creates a manager for the binder's container. It calls s.WorkFor and
// attaches exactly one listener to the container.
func New(b Binder, s Selectionable, opts ...Option) *Manager {
	m := &Manager{
		binder:    b,
		ui:        s,
		logger:    log.New(io.Discard, "", 0),
		tag:       pointer.Tag(fmt.Sprintf("selection.Manager#%d", managerSeq.Add(1))),
		container: b.Container(),
		managed:   make(Set),
		selected:  make(Set),
		elements:  make(map[ElementID]*elementController),
	}
	for _, opt := range opts {
		opt(m)
	}
	if cs, ok := s.(CursorSetter); ok {
		m.cursors = cs
	}
	m.band = &containerController{m: m}

	s.WorkFor(m)

	if err := b.Attach(m.container, m.tag, m.band); err != nil {
		fail("New", "", err.Error())
	}
	return m
}

// Tag returns the tag under which the manager's listeners are attached.
func (m *Manager) Tag() pointer.Tag {
	return m.tag
}

// Container returns the container the manager is bound to.
func (m *Manager) Container() pointer.Target {
	return m.container
}

// SelectionRect returns the normalized rubber band of an active rectangle
// gesture.
func (m *Manager) SelectionRect() (image.Rectangle, bool) {
	return m.band.rect, m.band.active
}

// GestureState returns the gesture state of a managed element.
func (m *Manager) GestureState(id ElementID) GestureState {
	c, ok := m.elements[id]
	if !ok {
		fail("GestureState", id, "element is not managed")
	}
	return c.state
}

// Dragging returns the element whose drag tracker is armed, if any.
func (m *Manager) Dragging() (ElementID, bool) {
	if m.dragging == nil {
		return "", false
	}
	return m.dragging.id, true
}

// Busy reports whether a rectangle or element gesture is in progress.
func (m *Manager) Busy() bool {
	if m.band.active {
		return true
	}
	for _, c := range m.elements {
		if c.state != GestureIdle {
			return true
		}
	}
	return false
}

// Cancel aborts the gesture in progress. An active rectangle is removed
// without selecting anything; a drag stops where it is, translations
// already applied are kept.
func (m *Manager) Cancel() {
	m.mustBeLive("Cancel", "")
	if m.band.active {
		m.band.reset()
		m.ui.KillSelectionRect()
		m.logger.Printf("selection: rectangle cancelled")
	}
	for _, id := range m.managedSorted() {
		c := m.elements[id]
		if c.state != GestureIdle {
			c.finish()
			m.logger.Printf("selection: gesture on %s cancelled", id)
		}
	}
}

func (m *Manager) managedSorted() []ElementID {
	return m.managed.Sorted()
}

// translateSelection applies one drag delta to every selected element.
func (m *Manager) translateSelection(dx, dy int) {
	for _, id := range m.selected.Sorted() {
		m.ui.Translate(id, dx, dy)
	}
}

func (m *Manager) setCursor(id ElementID, c Cursor) {
	if m.cursors != nil {
		m.cursors.SetCursor(id, c)
	}
}
