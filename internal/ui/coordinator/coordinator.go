package coordinator

import (
	"fmt"
	"image"
	"log"

	"boxgrip/internal/domain"
	"boxgrip/internal/eventbus"
	"boxgrip/internal/logic"
	"boxgrip/internal/pointer"
	"boxgrip/internal/selection"
)

// DefaultBoxSize is the size of boxes created with AddBox
var DefaultBoxSize = image.Pt(14, 4)

// Coordinator wires the element store, the pointer router and the selection
// manager of one canvas, and publishes what changes on the event bus. It is
// shared by every host and must be used from a single goroutine.
type Coordinator struct {
	Store   logic.ElementStore
	Router  *pointer.Router
	Manager *selection.Manager

	canvas *Canvas
	bus    eventbus.EventBus
	seq    int
}

// NewCoordinator creates a coordinator over store and manages every box
// already in it. bus may be nil.
func NewCoordinator(bus eventbus.EventBus, store logic.ElementStore, opts ...selection.Option) *Coordinator {
	c := &Coordinator{
		Store:  store,
		canvas: NewCanvas(store),
		bus:    bus,
	}
	c.Router = pointer.NewRouter(pointer.ContainerTarget("canvas"), c.hit)
	c.Manager = selection.New(c.Router, c.canvas, opts...)

	for _, id := range store.IDs() {
		c.Manager.Manage(id)
	}
	return c
}

func (c *Coordinator) hit(p image.Point) (string, bool) {
	id, ok := c.Store.HitTest(p)
	return string(id), ok
}

// Load adds the boxes of a layout to the canvas
func (c *Coordinator) Load(l domain.Layout) error {
	for _, b := range l.Boxes {
		b.Selected = false
		b.Cursor = selection.CursorDefault
		if err := c.Store.Add(b); err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
		c.Manager.Manage(b.ID)
	}
	return nil
}

// Dispatch routes one pointer event and publishes the resulting changes
func (c *Coordinator) Dispatch(ev pointer.Event) {
	c.Router.Dispatch(ev)
	c.flush()
}

// SelectAll selects every box
func (c *Coordinator) SelectAll() {
	c.Manager.SelectAll()
	c.flush()
}

// DeselectAll clears the selection
func (c *Coordinator) DeselectAll() {
	c.Manager.DeselectAll()
	c.flush()
}

// Escape aborts the gesture in progress, or clears the selection when there
// is none. It reports whether a gesture was aborted.
func (c *Coordinator) Escape() bool {
	if c.Manager.Busy() {
		c.Manager.Cancel()
		c.flush()
		return true
	}
	c.DeselectAll()
	return false
}

// AddBox creates a box at the given position, manages it and selects it
// alone
func (c *Coordinator) AddBox(label string, at image.Point) (selection.ElementID, error) {
	id := c.nextID()
	if label == "" {
		label = string(id)
	}
	box := domain.Box{
		ID:     id,
		Label:  label,
		Bounds: image.Rectangle{Min: at, Max: at.Add(DefaultBoxSize)},
	}
	if err := c.Store.Add(box); err != nil {
		return "", err
	}
	c.Manager.Manage(id)
	c.Manager.DeselectAll()
	c.Manager.AddToSelection(id)

	c.publish(domain.ElementAddedEvent{ID: id, Bounds: box.Bounds})
	c.canvas.markLayoutDirty()
	c.flush()
	return id, nil
}

// RemoveSelected unmanages and deletes every selected box. It is a no-op
// while a gesture is in progress.
func (c *Coordinator) RemoveSelected() []selection.ElementID {
	if c.Manager.Busy() {
		return nil
	}
	ids := c.Manager.Selected()
	for _, id := range ids {
		c.Manager.Unmanage(id)
		if err := c.Store.Remove(id); err != nil {
			log.Printf("coordinator: %v", err)
			c.publish(domain.ErrorEvent{Message: fmt.Sprintf("Failed to remove %s", id), Err: err})
			continue
		}
		c.publish(domain.ElementRemovedEvent{ID: id})
	}
	if len(ids) > 0 {
		c.canvas.markLayoutDirty()
	}
	c.flush()
	return ids
}

// Layout returns a snapshot of every box
func (c *Coordinator) Layout() domain.Layout {
	return c.Store.Layout()
}

// SelectionRect returns the rubber band to draw, if any
func (c *Coordinator) SelectionRect() (image.Rectangle, bool) {
	return c.canvas.SelectionRect()
}

// Status summarizes the canvas
func (c *Coordinator) Status() domain.Status {
	return domain.Status{
		Managed:  len(c.Manager.Managed()),
		Selected: len(c.Manager.Selected()),
		Gesture:  c.gesture(),
	}
}

func (c *Coordinator) gesture() string {
	if _, active := c.Manager.SelectionRect(); active {
		return "rectangle"
	}
	for _, id := range c.Manager.Managed() {
		if s := c.Manager.GestureState(id); s != selection.GestureIdle {
			return fmt.Sprintf("%s %s", s, id)
		}
	}
	return selection.GestureIdle.String()
}

// Close unmanages every box and detaches the canvas listeners
func (c *Coordinator) Close() {
	c.Manager.UnmanageAll()
	c.canvas.drain(false)
}

func (c *Coordinator) nextID() selection.ElementID {
	for {
		c.seq++
		id := selection.ElementID(fmt.Sprintf("box-%d", c.seq))
		if _, taken := c.Store.Get(id); !taken {
			return id
		}
	}
}

// flush publishes what the last operation changed
func (c *Coordinator) flush() {
	ch := c.canvas.drain(c.Manager.Busy())
	if len(ch.moved) > 0 {
		c.publish(domain.ElementsMovedEvent{IDs: ch.moved, DX: ch.dx, DY: ch.dy})
	}
	if ch.selection {
		c.publish(domain.SelectionChangedEvent{Selected: c.Manager.Selected()})
	}
	if ch.layout {
		c.publish(domain.LayoutChangedEvent{Layout: c.Store.Layout()})
	}
}

func (c *Coordinator) publish(e domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
