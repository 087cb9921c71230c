// Package selection coordinates multi-element selection and group dragging
// for interactive editors.
//
// A Manager is bound to one container and tracks a set of managed elements
// and the selected subset. It listens to pointer events through a Binder
// (usually a *pointer.Router) and drives three gestures:
//
//   - rubber-band selection on the container background,
//   - click selection on an element, with additive and toggle modifiers,
//   - group drag of every selected element.
//
// The manager never renders. Every visual effect goes through the
// Selectionable implementation supplied by the host:
//
//	canvas := &Canvas{}             // embeds selection.Adapter
//	m := selection.New(router, canvas)
//	m.Manage("box-1")
//	router.Dispatch(ev)             // canvas receives Translate, DisplaySelectionStatus, ...
//
// # Errors
//
// Precondition violations (selecting an unmanaged element, managing an
// element twice, unmanaging it twice) are programming errors in the host
// integration. They panic with a *ProgrammingError and are not meant to be
// recovered.
//
// # Threading
//
// A Manager is not safe for concurrent use. It expects every call to come
// from the host's single UI event loop.
package selection
