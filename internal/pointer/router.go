package pointer

import (
	"errors"
	"fmt"
	"image"
)

// TargetKind distinguishes the container background from the elements it hosts.
type TargetKind uint8

const (
	KindContainer TargetKind = iota
	KindElement
)

// Target is the origin an event is routed to.
type Target struct {
	Kind TargetKind
	ID   string
}

// ContainerTarget returns the target for the container with the given name.
func ContainerTarget(name string) Target {
	return Target{Kind: KindContainer, ID: name}
}

// ElementTarget returns the target for the element with the given id.
func ElementTarget(id string) Target {
	return Target{Kind: KindElement, ID: id}
}

func (t Target) String() string {
	if t.Kind == KindContainer {
		return "container:" + t.ID
	}
	return "element:" + t.ID
}

// Tag identifies the owner of a listener registration. Detaching is always
// done by tag so that subsystems sharing a target never remove each other's
// listeners.
type Tag string

// Listener receives the pointer events routed to a target.
type Listener interface {
	HandlePointer(ev Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev Event)

func (f ListenerFunc) HandlePointer(ev Event) { f(ev) }

// HitTester returns the topmost element under p, if any.
type HitTester func(p image.Point) (id string, ok bool)

// ErrDuplicateTag is returned when a tag is attached twice to the same target.
var ErrDuplicateTag = errors.New("listener tag already attached to target")

type binding struct {
	tag      Tag
	listener Listener
}

// Router delivers raw pointer events to the listeners of the target under
// the pointer. A press captures its target: every following motion and the
// release go to that target until the release, wherever the pointer is.
type Router struct {
	container Target
	hit       HitTester
	bindings  map[Target][]binding

	captured bool
	capture  Target
	hovering bool
	hover    Target
}

// NewRouter creates a router for one container. hit may be nil, in which
// case every event lands on the container.
func NewRouter(container Target, hit HitTester) *Router {
	if hit == nil {
		hit = func(image.Point) (string, bool) { return "", false }
	}
	return &Router{
		container: container,
		hit:       hit,
		bindings:  make(map[Target][]binding),
	}
}

// Container returns the container target this router serves.
func (r *Router) Container() Target {
	return r.container
}

// Attach registers l on t under tag.
func (r *Router) Attach(t Target, tag Tag, l Listener) error {
	for _, b := range r.bindings[t] {
		if b.tag == tag {
			return fmt.Errorf("attach %s to %s: %w", tag, t, ErrDuplicateTag)
		}
	}
	r.bindings[t] = append(r.bindings[t], binding{tag: tag, listener: l})
	return nil
}

// Detach removes the listener registered on t under tag and reports whether
// one was found. Listeners with other tags are left alone.
func (r *Router) Detach(t Target, tag Tag) bool {
	bs := r.bindings[t]
	for i, b := range bs {
		if b.tag != tag {
			continue
		}
		// copy so that a dispatch in progress keeps its own slice
		rest := make([]binding, 0, len(bs)-1)
		rest = append(rest, bs[:i]...)
		rest = append(rest, bs[i+1:]...)
		if len(rest) == 0 {
			delete(r.bindings, t)
		} else {
			r.bindings[t] = rest
		}
		return true
	}
	return false
}

// Tags returns the tags attached to t in registration order.
func (r *Router) Tags(t Target) []Tag {
	bs := r.bindings[t]
	tags := make([]Tag, len(bs))
	for i, b := range bs {
		tags[i] = b.tag
	}
	return tags
}

// Listeners returns the number of listeners attached to t.
func (r *Router) Listeners(t Target) int {
	return len(r.bindings[t])
}

// Captured returns the target owning the current gesture, if any.
func (r *Router) Captured() (Target, bool) {
	return r.capture, r.captured
}

// Dispatch routes ev.
func (r *Router) Dispatch(ev Event) {
	switch ev.Action {
	case ActionPress:
		if r.captured {
			// the host lost a release; finish the old gesture first
			r.deliver(r.capture, Event{Pos: ev.Pos, Button: ev.Button, Action: ActionRelease, Mods: ev.Mods})
			r.captured = false
		}
		t := r.targetAt(ev.Pos)
		r.capture, r.captured = t, true
		r.deliver(t, ev)

	case ActionMotion:
		if r.captured {
			r.deliver(r.capture, ev)
			return
		}
		t := r.updateHover(ev)
		r.deliver(t, ev)

	case ActionRelease:
		if r.captured {
			t := r.capture
			r.captured = false
			r.deliver(t, ev)
		} else {
			r.deliver(r.targetAt(ev.Pos), ev)
		}
		r.updateHover(ev)

	case ActionExit:
		if r.hovering {
			r.hovering = false
			r.deliver(r.hover, ev)
		}

	case ActionEnter:
		r.updateHover(ev)
	}
}

func (r *Router) targetAt(p image.Point) Target {
	if id, ok := r.hit(p); ok {
		return ElementTarget(id)
	}
	return r.container
}

// updateHover delivers exit/enter pairs when the pointer crosses into a new
// target and returns the target now under the pointer.
func (r *Router) updateHover(ev Event) Target {
	t := r.targetAt(ev.Pos)
	if r.hovering && r.hover == t {
		return t
	}
	if r.hovering {
		r.deliver(r.hover, Event{Pos: ev.Pos, Action: ActionExit, Mods: ev.Mods})
	}
	r.hover, r.hovering = t, true
	r.deliver(t, Event{Pos: ev.Pos, Action: ActionEnter, Mods: ev.Mods})
	return t
}

func (r *Router) deliver(t Target, ev Event) {
	for _, b := range r.bindings[t] {
		b.listener.HandlePointer(ev)
	}
}
