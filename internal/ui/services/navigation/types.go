package navigation

// State holds the focus ring position
type State struct {
	Cursor int // focused field, -1 when nothing is focused
	Count  int // number of focusable fields
}

// Direction represents movement directions
type Direction string

const (
	DirectionNext  Direction = "next"
	DirectionPrev  Direction = "prev"
	DirectionFirst Direction = "first"
	DirectionLast  Direction = "last"
)
