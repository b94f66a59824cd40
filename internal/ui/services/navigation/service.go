package navigation

// Service moves focus between the fields of a form. Next and previous wrap
// around the ends.
type Service struct {
	state  *State
	onMove func(oldIndex, newIndex int)
}

// NewService creates a focus ring over count fields with the first one
// focused
func NewService(count int) *Service {
	cursor := 0
	if count == 0 {
		cursor = -1
	}
	return &Service{
		state: &State{Cursor: cursor, Count: count},
	}
}

// OnMove registers a callback invoked whenever the cursor changes
func (s *Service) OnMove(fn func(oldIndex, newIndex int)) {
	s.onMove = fn
}

// GetCursor returns the focused index, -1 when nothing is focused
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// Navigate handles navigation in a direction. With nothing focused, next
// and first focus the first field, prev and last the last one.
func (s *Service) Navigate(direction Direction) {
	if s.state.Count == 0 {
		return
	}

	target := s.state.Cursor
	switch direction {
	case DirectionNext:
		if target < 0 {
			target = 0
		} else {
			target = (target + 1) % s.state.Count
		}
	case DirectionPrev:
		if target < 0 {
			target = s.state.Count - 1
		} else {
			target = (target - 1 + s.state.Count) % s.state.Count
		}
	case DirectionFirst:
		target = 0
	case DirectionLast:
		target = s.state.Count - 1
	}
	s.MoveToIndex(target)
}

// MoveToIndex focuses a specific field; -1 clears focus. Other out of range
// indexes are ignored.
func (s *Service) MoveToIndex(index int) {
	if index < -1 || index >= s.state.Count {
		return
	}

	oldCursor := s.state.Cursor
	s.state.Cursor = index

	if oldCursor != s.state.Cursor && s.onMove != nil {
		s.onMove(oldCursor, s.state.Cursor)
	}
}
