package input

import (
	"testing"

	"boxgrip/internal/ui/input/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKey(t *testing.T) {
	h := New()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []types.Action
	}{
		{"select all", runes("a"), []types.Action{types.SelectAllAction{}}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []types.Action{types.EscapeAction{}}},
		{"new box", runes("n"), []types.Action{types.NewBoxAction{}}},
		{"remove", runes("x"), []types.Action{types.RemoveSelectedAction{}}},
		{"remove with delete", tea.KeyMsg{Type: tea.KeyDelete}, []types.Action{types.RemoveSelectedAction{}}},
		{"save", runes("s"), []types.Action{types.SaveLayoutAction{}}},
		{"help", runes("?"), []types.Action{types.ShowHelpAction{}}},
		{"quit", runes("q"), []types.Action{types.QuitAction{}}},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, []types.Action{types.QuitAction{Force: true}}},
		{"unbound", runes("z"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.HandleKey(tt.msg))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()

	assert.Len(t, k.ShortHelp(), 6)
	for _, col := range k.FullHelp() {
		for _, b := range col {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}
