package dropdown

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds one style per visual affordance of the control. None of them
// may add vertical padding, margins or borders: hit regions are computed
// from rendered widths on a one-row-per-line layout.
type Styles struct {
	Wrapper           lipgloss.Style
	FocusedWrapper    lipgloss.Style
	Value             lipgloss.Style
	Placeholder       lipgloss.Style
	Badge             lipgloss.Style
	RemoveButton      lipgloss.Style
	ClearButton       lipgloss.Style
	Divider           lipgloss.Style
	Caret             lipgloss.Style
	Options           lipgloss.Style
	Option            lipgloss.Style
	SelectedOption    lipgloss.Style
	HighlightedOption lipgloss.Style
	Scroll            lipgloss.Style
}

// DefaultStyles returns the default look
func DefaultStyles() Styles {
	return Styles{
		Wrapper:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedWrapper: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Underline(true),
		Value:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Placeholder:    lipgloss.NewStyle().Faint(true),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			PaddingLeft(1),
		RemoveButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // red
			Background(lipgloss.Color("238")).
			PaddingRight(1),
		ClearButton: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Caret:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Options:     lipgloss.NewStyle(),
		Option:      lipgloss.NewStyle().PaddingLeft(2),
		SelectedOption: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("78")). // green
			Bold(true),
		HighlightedOption: lipgloss.NewStyle().
			PaddingLeft(2).
			Background(lipgloss.Color("238")),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
