package types

// Selection actions
type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

// EscapeAction aborts the gesture in progress, or clears the selection
type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

// Canvas editing actions
type NewBoxAction struct{}

func (a NewBoxAction) Type() string { return "new_box" }

type RemoveSelectedAction struct{}

func (a RemoveSelectedAction) Type() string { return "remove_selected" }

type SaveLayoutAction struct{}

func (a SaveLayoutAction) Type() string { return "save_layout" }

// UI actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
