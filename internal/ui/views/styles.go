package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Background  lipgloss.Style
	Box         lipgloss.Style
	BoxHover    lipgloss.Style
	BoxPressed  lipgloss.Style
	BoxSelected lipgloss.Style
	Label       lipgloss.Style
	Band        lipgloss.Style

	// border glyph sets
	BoxBorder      lipgloss.Border
	SelectedBorder lipgloss.Border
	BandBorder     lipgloss.Border
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Background:  lipgloss.NewStyle(),
		Box:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		BoxHover:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		BoxPressed:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		BoxSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Band:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green

		BoxBorder:      lipgloss.RoundedBorder(),
		SelectedBorder: lipgloss.ThickBorder(),
		BandBorder:     lipgloss.NormalBorder(),
	}
}
