package domain

import (
	"time"
)

// Choice is one configured option of a field
type Choice struct {
	Label   string
	Value   string
	Numeric bool // Value holds a number
}

// Field is one dropdown of the form
type Field struct {
	Name        string
	Multiple    bool
	Placeholder string
	Choices     []Choice
	Selected    []string // values of the selected choices, in selection order
}

// ChoiceByValue returns the index of the choice with the given value, or -1
func (f Field) ChoiceByValue(value string) int {
	for i, c := range f.Choices {
		if c.Value == value {
			return i
		}
	}
	return -1
}

// Change records one accepted selection change
type Change struct {
	At     time.Time
	Field  string
	Labels []string // labels of the selection after the change
}
