package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// headerRows is the title line plus one blank line
const headerRows = 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Title         string
	Labels        []string
	Controls      []string // rendered dropdowns, one per label
	Focused       int      // -1 when no field is focused
	StatusMessage string
	StatusIsError bool
	Help          string
}

// Point is a screen cell
type Point struct {
	X, Y int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n\n")

	labelWidth := r.labelWidth(state.Labels)
	rows := make([]string, 0, len(state.Labels))
	for i, label := range state.Labels {
		style := r.styles.Label
		if i == state.Focused {
			style = r.styles.FocusedLabel
		}
		cell := style.Width(labelWidth).Render(label)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cell, state.Controls[i]))
	}
	if len(rows) == 0 {
		rows = append(rows, r.styles.Dim.Render("No fields configured"))
	}
	content.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	content.WriteString("\n\n")

	switch {
	case state.StatusMessage == "":
		content.WriteString(r.styles.Status.Render(" "))
	case state.StatusIsError:
		content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
	default:
		content.WriteString(r.styles.StatusSuccess.Render(state.StatusMessage))
	}

	if state.Help != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return r.styles.Main.Render(content.String())
}

// ControlOrigins returns the screen cell where each control starts. It
// mirrors the layout of Render.
func (r *Renderer) ControlOrigins(state ViewState) []Point {
	labelWidth := r.labelWidth(state.Labels)
	origins := make([]Point, len(state.Controls))
	y := MainPaddingTop + headerRows
	for i, control := range state.Controls {
		origins[i] = Point{X: MainPaddingLeft + labelWidth, Y: y}
		y += lipgloss.Height(control)
	}
	return origins
}

func (r *Renderer) labelWidth(labels []string) int {
	width := 0
	for _, l := range labels {
		width = max(width, lipgloss.Width(l))
	}
	return width + 2
}
