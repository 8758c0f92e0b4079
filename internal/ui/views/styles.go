package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	Button      lipgloss.Style
	ActiveBtn   lipgloss.Style
	Outcome     lipgloss.Style
	Bold        lipgloss.Style
	Error       lipgloss.Style
	Loading     lipgloss.Style
	MatrixHead  lipgloss.Style
	MatrixCell  lipgloss.Style
	Border      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241")),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Prompt:    lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // adjusted per frame
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		ActiveBtn: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Foreground(lipgloss.Color("208")),
		Outcome:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")), // green
		Bold:       lipgloss.NewStyle().Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Loading:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		MatrixHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")).Padding(0, 1),
		MatrixCell: lipgloss.NewStyle().Padding(0, 1),
		Border:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
