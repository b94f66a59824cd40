package state

import (
	"strconv"
	"time"

	"tuiselect/internal/domain"
	"tuiselect/internal/dropdown"
)

// FieldState is the selection of record for one field. Options are created
// once so their identity is stable for the lifetime of the form.
type FieldState struct {
	Field   domain.Field
	Options []*dropdown.Option
	Single  *dropdown.Option   // single-choice fields
	Multi   []*dropdown.Option // multiple-choice fields, in selection order
}

// Selected returns the selected options in display order
func (f *FieldState) Selected() []*dropdown.Option {
	if f.Field.Multiple {
		return f.Multi
	}
	if f.Single == nil {
		return nil
	}
	return []*dropdown.Option{f.Single}
}

// Values returns the identity keys of the selected options
func (f *FieldState) Values() []string {
	selected := f.Selected()
	values := make([]string, 0, len(selected))
	for _, o := range selected {
		values = append(values, o.Value.String())
	}
	return values
}

// Labels returns the labels of the selected options
func (f *FieldState) Labels() []string {
	selected := f.Selected()
	labels := make([]string, 0, len(selected))
	for _, o := range selected {
		labels = append(labels, o.Label)
	}
	return labels
}

// AppState contains all the application state
type AppState struct {
	Fields  []*FieldState
	History []domain.Change

	// UI state
	StatusMessage string
	StatusIsError bool
	ShowFullHelp  bool

	now func() time.Time
}

// NewAppState builds the field states and their initial selections
func NewAppState(fields []domain.Field) *AppState {
	s := &AppState{now: time.Now}
	for _, f := range fields {
		fs := &FieldState{Field: f}
		for _, c := range f.Choices {
			fs.Options = append(fs.Options, newOption(c))
		}
		for _, v := range f.Selected {
			i := f.ChoiceByValue(v)
			if i < 0 {
				continue
			}
			if f.Multiple {
				fs.Multi = append(fs.Multi, fs.Options[i])
			} else {
				fs.Single = fs.Options[i]
			}
		}
		if f.Multiple && fs.Multi == nil {
			fs.Multi = []*dropdown.Option{}
		}
		s.Fields = append(s.Fields, fs)
	}
	return s
}

func newOption(c domain.Choice) *dropdown.Option {
	if c.Numeric {
		if n, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return dropdown.NewNumberOption(c.Label, n)
		}
	}
	return dropdown.NewOption(c.Label, c.Value)
}

// SetSingle records a new value for a single-choice field
func (s *AppState) SetSingle(index int, option *dropdown.Option) domain.Change {
	fs := s.Fields[index]
	fs.Single = option
	return s.record(fs)
}

// SetMultiple records a new value for a multiple-choice field
func (s *AppState) SetMultiple(index int, options []*dropdown.Option) domain.Change {
	fs := s.Fields[index]
	fs.Multi = options
	return s.record(fs)
}

func (s *AppState) record(fs *FieldState) domain.Change {
	change := domain.Change{
		At:     s.now(),
		Field:  fs.Field.Name,
		Labels: fs.Labels(),
	}
	s.History = append(s.History, change)
	return change
}

// Selections returns the selected values of every field by field name
func (s *AppState) Selections() map[string][]string {
	out := make(map[string][]string, len(s.Fields))
	for _, fs := range s.Fields {
		out[fs.Field.Name] = fs.Values()
	}
	return out
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(message string, isError bool) {
	s.StatusMessage = message
	s.StatusIsError = isError
}
