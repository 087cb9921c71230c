package selection

import "fmt"

// ProgrammingError reports a violated precondition. It is raised with panic.
type ProgrammingError struct {
	// Op is the manager operation that was called (e.g. "AddToSelection").
	Op string
	// ID is the element involved, if any.
	ID ElementID
	// Reason describes the violated precondition.
	Reason string
}

func (e *ProgrammingError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("selection: %s(%s): %s", e.Op, e.ID, e.Reason)
	}
	return fmt.Sprintf("selection: %s: %s", e.Op, e.Reason)
}

func fail(op string, id ElementID, reason string) {
	panic(&ProgrammingError{Op: op, ID: id, Reason: reason})
}
