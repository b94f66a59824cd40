package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a cell rectangle relative to a component's top-left corner
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Region is a named clickable area. Data carries region-specific payload,
// usually an item index.
type Region struct {
	ID   string
	Rect Rect
	Data int
}

// HitMap collects the regions of one rendered frame. Regions added later sit
// on top of earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region. Empty rectangles are ignored.
func (h *HitMap) Add(id string, rect Rect, data int) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: rect, Data: data})
}

// Test returns the topmost region containing (x, y)
func (h *HitMap) Test(x, y int) (Region, bool) {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return h.regions[i], true
		}
	}
	return Region{}, false
}

// Regions returns the registered regions in insertion order
func (h *HitMap) Regions() []Region {
	return append([]Region(nil), h.regions...)
}

// IsLeftPress reports whether msg is a left button press
func IsLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// IsMotion reports whether msg is pointer movement, with or without a button held
func IsMotion(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionMotion
}
