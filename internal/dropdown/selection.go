package dropdown

// Selection binds the control to the caller's selection state. It is either
// Single or Multiple; the variant fixes the control's mode for its lifetime.
type Selection interface {
	multiple() bool
	contains(option *Option) bool
	toggle(option *Option)
	clear()
}

// Single binds a single-choice control. A nil Value means nothing is selected.
type Single struct {
	Value    *Option
	OnChange func(next *Option)
}

func (s Single) multiple() bool { return false }

func (s Single) contains(option *Option) bool {
	return option != nil && option == s.Value
}

// toggle emits option unless it is already the value
func (s Single) toggle(option *Option) {
	if option == s.Value {
		return
	}
	s.emit(option)
}

func (s Single) clear() {
	s.emit(nil)
}

func (s Single) emit(next *Option) {
	if s.OnChange != nil {
		s.OnChange(next)
	}
}

// Multiple binds a multiple-choice control. Value holds unique options in
// insertion order.
type Multiple struct {
	Value    []*Option
	OnChange func(next []*Option)
}

func (s Multiple) multiple() bool { return true }

func (s Multiple) contains(option *Option) bool {
	return indexOf(s.Value, option) >= 0
}

// toggle emits Value without option if it is a member, or with option
// appended otherwise. The caller's slice is never written to.
func (s Multiple) toggle(option *Option) {
	if option == nil {
		return
	}
	if i := indexOf(s.Value, option); i >= 0 {
		next := make([]*Option, 0, len(s.Value)-1)
		next = append(next, s.Value[:i]...)
		next = append(next, s.Value[i+1:]...)
		s.emit(next)
		return
	}
	next := make([]*Option, 0, len(s.Value)+1)
	next = append(next, s.Value...)
	next = append(next, option)
	s.emit(next)
}

func (s Multiple) clear() {
	s.emit([]*Option{})
}

func (s Multiple) emit(next []*Option) {
	if s.OnChange != nil {
		s.OnChange(next)
	}
}
