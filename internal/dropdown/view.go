package dropdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tuiselect/internal/mouse"
)

// Hit region identifiers
const (
	regionControl     = "control"      // whole control row
	regionClear       = "clear"        // clear-all affordance
	regionBadgeRemove = "badge-remove" // Data: index into the selected options
	regionOption      = "option"       // Data: index into the candidate list
	regionList        = "list"         // open list container, under the option rows
)

const (
	removeGlyph  = " ×"
	clearGlyph   = "×"
	dividerGlyph = "│"
	caretClosed  = "▾"
	caretOpen    = "▴"
)

// segment is one rendered piece of the control row
type segment struct {
	text   string
	region string
	data   int
}

// View implements tea.Model
func (m Model) View() string {
	lines := []string{m.renderControl()}
	if m.open {
		lines = append(lines, m.renderOptions()...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderControl() string {
	var row strings.Builder
	for _, seg := range m.controlSegments() {
		row.WriteString(seg.text)
	}
	if m.focused {
		return m.styles.FocusedWrapper.Render(row.String())
	}
	return m.styles.Wrapper.Render(row.String())
}

// controlSegments lays out the control row from left to right
func (m Model) controlSegments() []segment {
	var segs []segment

	switch sel := m.selection.(type) {
	case Multiple:
		for i, opt := range sel.Value {
			if i > 0 {
				segs = append(segs, segment{text: " "})
			}
			segs = append(segs,
				segment{text: m.styles.Badge.Render(opt.Label)},
				segment{text: m.styles.RemoveButton.Render(removeGlyph), region: regionBadgeRemove, data: i},
			)
		}
		if len(sel.Value) == 0 {
			segs = append(segs, segment{text: m.styles.Placeholder.Render(m.placeholder)})
		}
	case Single:
		if sel.Value != nil {
			segs = append(segs, segment{text: m.styles.Value.Render(sel.Value.Label)})
		} else {
			segs = append(segs, segment{text: m.styles.Placeholder.Render(m.placeholder)})
		}
	}

	caret := caretClosed
	if m.open {
		caret = caretOpen
	}
	segs = append(segs,
		segment{text: " "},
		segment{text: m.styles.ClearButton.Render(clearGlyph), region: regionClear},
		segment{text: " " + m.styles.Divider.Render(dividerGlyph) + " "},
		segment{text: m.styles.Caret.Render(caret)},
	)
	return segs
}

// visibleRange returns the half-open range of option rows on screen
func (m Model) visibleRange() (int, int) {
	if m.maxHeight <= 0 || len(m.options) <= m.maxHeight {
		return 0, len(m.options)
	}
	return m.offset, min(m.offset+m.maxHeight, len(m.options))
}

func (m Model) renderOptions() []string {
	start, end := m.visibleRange()
	rows := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderOption(i))
	}
	if end-start < len(m.options) {
		rows = append(rows, m.styles.Scroll.Render(
			fmt.Sprintf("  %d-%d of %d", start+1, end, len(m.options))))
	}
	if len(m.options) == 0 {
		rows = append(rows, m.styles.Placeholder.Render("  (no options)"))
	}
	return []string{m.styles.Options.Render(strings.Join(rows, "\n"))}
}

func (m Model) renderOption(i int) string {
	opt := m.options[i]
	style := m.styles.Option
	switch {
	case i == m.highlighted:
		style = m.styles.HighlightedOption
		if m.IsOptionSelected(opt) {
			style = style.Inherit(m.styles.SelectedOption)
		}
	case m.IsOptionSelected(opt):
		style = m.styles.SelectedOption
	}
	return style.Render(opt.Label)
}

// layout computes the hit regions of the current frame, in control
// coordinates. It mirrors View.
func (m Model) layout() *mouse.HitMap {
	hits := mouse.NewHitMap()

	segs := m.controlSegments()
	width := 0
	for _, seg := range segs {
		width += lipgloss.Width(seg.text)
	}
	hits.Add(regionControl, mouse.Rect{X: 0, Y: 0, Width: width, Height: 1}, 0)

	x := 0
	for _, seg := range segs {
		w := lipgloss.Width(seg.text)
		if seg.region != "" {
			hits.Add(seg.region, mouse.Rect{X: x, Y: 0, Width: w, Height: 1}, seg.data)
		}
		x += w
	}

	if !m.open {
		return hits
	}
	// the container also covers the scroll footer and the empty-list row
	list := m.renderOptions()[0]
	rowWidth := max(width, lipgloss.Width(list))
	hits.Add(regionList, mouse.Rect{X: 0, Y: 1, Width: rowWidth, Height: lipgloss.Height(list)}, 0)

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		hits.Add(regionOption, mouse.Rect{X: 0, Y: 1 + i - start, Width: rowWidth, Height: 1}, i)
	}
	return hits
}
