package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the form around the dropdowns
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
}

// Padding of the Main style, needed to place mouse origins
const (
	MainPaddingTop  = 1
	MainPaddingLeft = 2
)

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FocusedLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(MainPaddingTop, MainPaddingLeft),
	}
}
