package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuiselect/internal/config"
	"tuiselect/internal/domain"
	"tuiselect/internal/dropdown"
	"tuiselect/internal/eventbus"
	"tuiselect/internal/ui/services/navigation"
	"tuiselect/internal/ui/state"
	"tuiselect/internal/ui/views"
)

const title = "tuiselect"

// Saver persists the current selections
type Saver interface {
	SaveSelections(selections map[string][]string) error
}

// Model is the form: one dropdown per configured field. It owns the
// selection of record and hands each dropdown its current value.
type Model struct {
	bus      eventbus.EventBus
	settings config.UISettings
	saver    Saver
	state    *state.AppState

	fields   []dropdown.Model
	nav      *navigation.Service
	renderer *views.Renderer
	help     help.Model
	keys     keyMap

	width  int
	height int
}

// NewModel creates the form with the first field focused. saver may be nil,
// which disables explicit saving.
func NewModel(bus eventbus.EventBus, fields []domain.Field, settings config.UISettings, saver Saver) *Model {
	m := &Model{
		bus:      bus,
		settings: settings,
		saver:    saver,
		state:    state.NewAppState(fields),
		nav:      navigation.NewService(len(fields)),
		renderer: views.NewRenderer(),
		help:     help.New(),
		keys:     newKeyMap(),
	}

	for i, fs := range m.state.Fields {
		opts := []dropdown.ModelOption{
			dropdown.WithID(fs.Field.Name),
			dropdown.WithMaxHeight(settings.MaxHeight),
		}
		if fs.Field.Placeholder != "" {
			opts = append(opts, dropdown.WithPlaceholder(fs.Field.Placeholder))
		}
		m.fields = append(m.fields, dropdown.New(fs.Options, m.bindField(i), opts...))
	}

	m.nav.OnMove(func(oldIndex, newIndex int) {
		if oldIndex >= 0 {
			m.fields[oldIndex].Blur()
		}
		if newIndex >= 0 {
			m.fields[newIndex].Focus()
		}
	})
	if cursor := m.nav.GetCursor(); cursor >= 0 {
		m.fields[cursor].Focus()
	}

	return m
}

// Field returns the dropdown of a field
func (m *Model) Field(index int) dropdown.Model {
	return m.fields[index]
}

// State returns the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// FocusedIndex returns the focused field, -1 when none
func (m *Model) FocusedIndex() int {
	return m.nav.GetCursor()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		if i := m.nav.GetCursor(); i >= 0 {
			return m, m.updateField(i, msg)
		}

	case EventMsg:
		m.handleEvent(msg.Event)

	case savedMsg:
		if msg.err != nil {
			log.Printf("Failed to save selections: %v", msg.err)
			m.state.SetStatus(fmt.Sprintf("Save failed: %v", msg.err), true)
		} else {
			m.state.SetStatus("Saved", false)
		}

	case historyPagerMsg:
		if msg.err != nil {
			log.Printf("History pager failed: %v", msg.err)
			m.state.SetStatus(fmt.Sprintf("History failed: %v", msg.err), true)
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	focused := m.nav.GetCursor()
	listOpen := focused >= 0 && m.fields[focused].IsOpen()

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.nav.Navigate(navigation.DirectionNext)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.nav.Navigate(navigation.DirectionPrev)
		return nil
	case key.Matches(msg, m.keys.Save):
		return m.save()
	}

	// With a list open, every other key belongs to the dropdown
	if !listOpen {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.History):
			return showHistoryInPager(m.state.History)
		case key.Matches(msg, m.keys.Help):
			m.state.ShowFullHelp = !m.state.ShowFullHelp
			return nil
		}
	}

	if focused < 0 {
		return nil
	}
	return m.updateField(focused, msg)
}

// handleMouse routes pointer events to every field. Each field hit-tests
// its own regions, so a click on one field is a click-away for the others.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.settings.Mouse {
		return nil
	}
	m.placeFields()

	var cmds []tea.Cmd
	for i := range m.fields {
		cmds = append(cmds, m.updateField(i, msg))
	}

	focused := -1
	for i := range m.fields {
		if m.fields[i].Focused() {
			focused = i
			break
		}
	}
	m.nav.MoveToIndex(focused)
	return tea.Batch(cmds...)
}

func (m *Model) updateField(index int, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.fields[index], cmd = m.fields[index].Update(msg)
	// hand the control the value of record, which OnChange may have replaced
	m.fields[index].SetSelection(m.bindField(index))
	return cmd
}

// bindField binds a field's dropdown to the selection of record
func (m *Model) bindField(index int) dropdown.Selection {
	fs := m.state.Fields[index]
	if fs.Field.Multiple {
		return dropdown.Multiple{
			Value: fs.Multi,
			OnChange: func(next []*dropdown.Option) {
				m.commit(fs, m.state.SetMultiple(index, next))
			},
		}
	}
	return dropdown.Single{
		Value: fs.Single,
		OnChange: func(next *dropdown.Option) {
			m.commit(fs, m.state.SetSingle(index, next))
		},
	}
}

func (m *Model) commit(fs *state.FieldState, change domain.Change) {
	log.Printf("Selection changed: %s = %v", change.Field, change.Labels)

	if len(change.Labels) == 0 {
		m.state.SetStatus(fmt.Sprintf("%s cleared", change.Field), false)
	} else {
		m.state.SetStatus(fmt.Sprintf("%s: %s", change.Field, strings.Join(change.Labels, ", ")), false)
	}

	if m.bus != nil {
		m.bus.Publish(eventbus.SelectionChangedEvent{
			Field:  change.Field,
			Values: fs.Values(),
			Labels: change.Labels,
		})
	}
}

func (m *Model) save() tea.Cmd {
	if m.saver == nil {
		m.state.SetStatus("Saving is disabled", true)
		return nil
	}
	selections := m.state.Selections()
	saver := m.saver
	return func() tea.Msg {
		return savedMsg{err: saver.SaveSelections(selections)}
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		m.state.SetStatus(fmt.Sprintf("%s: %v", e.Message, e.Err), true)
	case eventbus.ConfigSavedEvent:
		m.state.SetStatus(fmt.Sprintf("Saved to %s", e.Path), false)
	case eventbus.ConfigLoadedEvent:
		if e.Path == "" {
			m.state.SetStatus("No form file found, showing the sample form (ctrl+s saves it)", false)
		} else {
			m.state.SetStatus(fmt.Sprintf("Loaded %d fields from %s", e.Fields, e.Path), false)
		}
	}
}

// placeFields tells every dropdown where it is drawn
func (m *Model) placeFields() {
	origins := m.renderer.ControlOrigins(m.viewState())
	for i, p := range origins {
		m.fields[i].SetOrigin(p.X, p.Y)
	}
}

func (m *Model) viewState() views.ViewState {
	vs := views.ViewState{
		Title:         title,
		Focused:       m.nav.GetCursor(),
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
	}
	for i, fs := range m.state.Fields {
		vs.Labels = append(vs.Labels, fs.Field.Name)
		vs.Controls = append(vs.Controls, m.fields[i].View())
	}
	if m.settings.ShowHelp {
		m.help.ShowAll = m.state.ShowFullHelp
		vs.Help = m.help.View(m.keys)
	}
	return vs
}

// View renders the form
func (m *Model) View() string {
	return m.renderer.Render(m.viewState())
}
