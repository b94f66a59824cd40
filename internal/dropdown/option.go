package dropdown

import (
	"strconv"
)

// Value is the identity key of an option: either a string or a number
type Value struct {
	str     string
	num     float64
	numeric bool
}

// StringValue creates a string key
func StringValue(s string) Value {
	return Value{str: s}
}

// NumberValue creates a numeric key
func NumberValue(n float64) Value {
	return Value{num: n, numeric: true}
}

// IsNumber reports whether the key is numeric
func (v Value) IsNumber() bool {
	return v.numeric
}

func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Option is one candidate of the list. Options are passed around as
// pointers; two options are the same option only if they are the same pointer.
type Option struct {
	Label string
	Value Value
}

// NewOption creates an option with a string key
func NewOption(label, value string) *Option {
	return &Option{Label: label, Value: StringValue(value)}
}

// NewNumberOption creates an option with a numeric key
func NewNumberOption(label string, value float64) *Option {
	return &Option{Label: label, Value: NumberValue(value)}
}

func indexOf(options []*Option, option *Option) int {
	for i, o := range options {
		if o == option {
			return i
		}
	}
	return -1
}
