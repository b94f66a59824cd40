package dropdown

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuiselect/internal/mouse"
)

const (
	defaultMaxHeight   = 8
	defaultPlaceholder = "Select..."
)

// Model is a dropdown selection control. It owns only interaction state:
// whether the list is open and which candidate is highlighted. What is
// selected belongs to the caller and is proposed through the Selection's
// OnChange callback.
type Model struct {
	id          string
	options     []*Option
	selection   Selection
	open        bool
	highlighted int
	offset      int // first visible option row
	focused     bool

	originX, originY int

	keys        KeyMap
	styles      Styles
	placeholder string
	maxHeight   int
}

// ModelOption configures a Model
type ModelOption func(*Model)

// WithID names the control in log output
func WithID(id string) ModelOption {
	return func(m *Model) { m.id = id }
}

// WithKeyMap replaces the default key bindings
func WithKeyMap(keys KeyMap) ModelOption {
	return func(m *Model) { m.keys = keys }
}

// WithStyles replaces the default styles
func WithStyles(styles Styles) ModelOption {
	return func(m *Model) { m.styles = styles }
}

// WithPlaceholder sets the text shown while nothing is selected
func WithPlaceholder(text string) ModelOption {
	return func(m *Model) { m.placeholder = text }
}

// WithMaxHeight limits the number of visible option rows; 0 shows all
func WithMaxHeight(rows int) ModelOption {
	return func(m *Model) {
		if rows >= 0 {
			m.maxHeight = rows
		}
	}
}

// New creates a closed control over options bound to sel. A nil sel binds an
// empty single-choice selection without a callback.
func New(options []*Option, sel Selection, opts ...ModelOption) Model {
	if sel == nil {
		sel = Single{}
	}
	m := Model{
		options:     options,
		selection:   sel,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		placeholder: defaultPlaceholder,
		maxHeight:   defaultMaxHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Options returns the candidate list
func (m Model) Options() []*Option {
	return m.options
}

// SetOptions replaces the candidate list. The highlight is clamped into the
// new range.
func (m *Model) SetOptions(options []*Option) {
	m.options = options
	if m.highlighted >= len(options) {
		m.highlighted = max(len(options)-1, 0)
	}
	m.ensureVisible()
}

// SetSelection rebinds the control to the caller's current value. The mode
// is fixed at construction; a binding of the other mode is ignored.
func (m *Model) SetSelection(sel Selection) {
	if sel == nil || sel.multiple() != m.selection.multiple() {
		log.Printf("dropdown %s: ignoring selection of a different mode", m.id)
		return
	}
	m.selection = sel
}

// Multiple reports whether the control is in multiple-choice mode
func (m Model) Multiple() bool {
	return m.selection.multiple()
}

// IsOpen reports whether the candidate list is visible
func (m Model) IsOpen() bool {
	return m.open
}

// Highlighted returns the index of the highlighted candidate
func (m Model) Highlighted() int {
	return m.highlighted
}

// Focused reports whether the control receives keys
func (m Model) Focused() bool {
	return m.focused
}

// Focus gives the control keyboard focus
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard focus. Losing focus always closes the list.
func (m *Model) Blur() {
	m.focused = false
	m.Close()
}

// SetOrigin records the screen cell of the control's top-left corner so
// mouse events can be translated into control coordinates.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Open shows the list and resets the highlight to the first candidate
func (m *Model) Open() {
	if m.open {
		return
	}
	m.open = true
	m.highlighted = 0
	m.offset = 0
}

// Close hides the list. The highlight is kept.
func (m *Model) Close() {
	m.open = false
}

// ToggleOpen flips the list between open and closed
func (m *Model) ToggleOpen() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

// ClearSelection proposes an empty selection. The list stays as it is.
func (m *Model) ClearSelection() {
	m.selection.clear()
}

// SelectOption proposes a selection change for option. In multiple mode the
// option is toggled in or out of the selection; in single mode it becomes the
// value unless it already is, in which case nothing is emitted.
func (m *Model) SelectOption(option *Option) {
	if option == nil {
		return
	}
	m.selection.toggle(option)
}

// IsOptionSelected reports whether option is part of the current selection
func (m Model) IsOptionSelected(option *Option) bool {
	return m.selection.contains(option)
}

// Highlight moves the highlight to index. Out of range indexes are ignored.
func (m *Model) Highlight(index int) {
	if index < 0 || index >= len(m.options) {
		return
	}
	m.highlighted = index
	m.ensureVisible()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focused {
			m.handleKey(msg)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.Close()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if !m.open {
			m.Open()
			return
		}
		m.Close()
		if m.highlighted < len(m.options) {
			m.SelectOption(m.options[m.highlighted])
		}

	case key.Matches(msg, m.keys.Down):
		if !m.open {
			m.Open()
			return
		}
		m.Highlight(m.highlighted + 1)

	case key.Matches(msg, m.keys.Up):
		if !m.open {
			m.Open()
			return
		}
		m.Highlight(m.highlighted - 1)

	case key.Matches(msg, m.keys.Close):
		m.Close()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := msg.X-m.originX, msg.Y-m.originY
	hit, ok := m.layout().Test(x, y)

	if mouse.IsMotion(msg) {
		if ok && hit.ID == regionOption {
			m.Highlight(hit.Data)
		}
		return
	}
	if !mouse.IsLeftPress(msg) {
		return
	}
	if !ok {
		// click-away
		if m.focused {
			m.Blur()
		}
		return
	}

	m.focused = true
	switch hit.ID {
	case regionClear:
		m.ClearSelection()
	case regionBadgeRemove:
		if sel, isMulti := m.selection.(Multiple); isMulti && hit.Data < len(sel.Value) {
			m.SelectOption(sel.Value[hit.Data])
		}
	case regionOption:
		m.SelectOption(m.options[hit.Data])
		m.Close()
	case regionControl, regionList:
		m.ToggleOpen()
	}
}

// ensureVisible scrolls the list so the highlighted row is shown
func (m *Model) ensureVisible() {
	if m.maxHeight <= 0 {
		m.offset = 0
		return
	}
	if m.highlighted < m.offset {
		m.offset = m.highlighted
	} else if m.highlighted >= m.offset+m.maxHeight {
		m.offset = m.highlighted - m.maxHeight + 1
	}
	if limit := max(len(m.options)-m.maxHeight, 0); m.offset > limit {
		m.offset = limit
	}
}
