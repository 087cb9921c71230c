package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"boxgrip/internal/ui/input"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys input.KeyMap
	mods input.ModifierMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys input.KeyMap, mods input.ModifierMap) *HelpRenderer {
	return &HelpRenderer{keys: keys, mods: mods}
}

func modifierName(k input.ModifierKey) string {
	switch k {
	case input.KeyShift:
		return "Shift"
	case input.KeyCtrl:
		return "Ctrl"
	case input.KeyAlt:
		return "Alt"
	}
	return "?"
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("boxgrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	add, tog := modifierName(r.mods.Additive), modifierName(r.mods.Toggle)
	help.WriteString(line("Click", "Select a box (keeps the selection if it is already selected)"))
	help.WriteString(line(add+"+Click", "Add a box to the selection"))
	help.WriteString(line(tog+"+Click", "Toggle a box in the selection"))
	help.WriteString(line("Drag box", "Move every selected box"))
	help.WriteString(line("Drag background", "Select the boxes fully inside the rectangle"))
	help.WriteString(line(add+"+Drag", "Add the boxes inside the rectangle"))
	help.WriteString("\n")

	sections := []string{"Selection", "Editing", "Other"}
	for i, col := range r.keys.FullHelp() {
		if i < len(sections) {
			help.WriteString(sectionStyle.Render(sections[i]))
			help.WriteString("\n")
		}
		for _, b := range col {
			help.WriteString(line(b.Help().Key, b.Help().Desc))
		}
		help.WriteString("\n")
	}

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// vimKeys are added to ov's default bindings
var vimKeys = map[string][]string{
	"exit":   {"q", "?"},
	"down":   {"j"},
	"up":     {"k"},
	"top":    {"g"},
	"bottom": {"G"},
}

// configureVimKeyBindings adds vim-like navigation to the pager
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	for action, keys := range vimKeys {
		for _, k := range keys {
			if !slices.Contains(config.Keybind[action], k) {
				config.Keybind[action] = append(config.Keybind[action], k)
			}
		}
	}
}
