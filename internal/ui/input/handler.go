package input

import (
	"boxgrip/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the canvas key bindings
type KeyMap struct {
	SelectAll      key.Binding
	Escape         key.Binding
	NewBox         key.Binding
	RemoveSelected key.Binding
	Save           key.Binding
	Help           key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel / deselect"),
		),
		NewBox: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new box"),
		),
		RemoveSelected: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove selected"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelectAll, k.Escape, k.NewBox, k.RemoveSelected, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SelectAll, k.Escape},
		{k.NewBox, k.RemoveSelected, k.Save},
		{k.Help, k.Quit},
	}
}

type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the handler
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey turns a key press into actions. Unbound keys return nil.
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	switch {
	case key.Matches(msg, h.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}
	case key.Matches(msg, h.keys.SelectAll):
		return []types.Action{types.SelectAllAction{}}
	case key.Matches(msg, h.keys.Escape):
		return []types.Action{types.EscapeAction{}}
	case key.Matches(msg, h.keys.NewBox):
		return []types.Action{types.NewBoxAction{}}
	case key.Matches(msg, h.keys.RemoveSelected):
		return []types.Action{types.RemoveSelectedAction{}}
	case key.Matches(msg, h.keys.Save):
		return []types.Action{types.SaveLayoutAction{}}
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ShowHelpAction{}}
	}
	return nil
}
