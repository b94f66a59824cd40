package dropdown

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuiselect/internal/mouse"
)

func manyOptions(n int) []*Option {
	opts := make([]*Option, n)
	for i := range opts {
		opts[i] = NewOption(fmt.Sprintf("item-%02d", i), fmt.Sprint(i))
	}
	return opts
}

func TestView_ClosedShowsOnlyControlRow(t *testing.T) {
	m := New(testOptions(), Single{})

	view := m.View()

	assert.Equal(t, 1, lipgloss.Height(view))
	assert.Contains(t, view, defaultPlaceholder)
	assert.Contains(t, view, caretClosed)
	assert.NotContains(t, view, "B")
}

func TestView_SingleShowsValueLabel(t *testing.T) {
	opts := testOptions()
	m := New(opts, Single{Value: opts[2]}, WithPlaceholder("pick one"))

	view := m.View()

	assert.True(t, strings.HasPrefix(view, "C"))
	assert.NotContains(t, view, "pick one")
}

func TestView_MultipleShowsBadges(t *testing.T) {
	opts := testOptions()
	m := New(opts, Multiple{Value: []*Option{opts[2], opts[0]}})

	view := m.View()

	require.Contains(t, view, "C")
	require.Contains(t, view, "A")
	assert.Less(t, strings.Index(view, "C"), strings.Index(view, "A"), "badges follow selection order")
	assert.Equal(t, 3, strings.Count(view, "×"), "two remove affordances and the clear affordance")
}

func TestView_OpenListsEveryOption(t *testing.T) {
	m := New(testOptions(), Single{})
	m.Open()

	view := m.View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], caretOpen)
	for i, label := range []string{"A", "B", "C"} {
		assert.Contains(t, lines[i+1], label)
	}
}

func TestView_NoOptions(t *testing.T) {
	m := New(nil, Single{})
	m.Open()

	assert.Contains(t, m.View(), "(no options)")
}

func TestView_ScrollsToKeepHighlightVisible(t *testing.T) {
	opts := manyOptions(12)
	m := New(opts, Single{}, WithMaxHeight(4))
	m.Focus()
	m.Open()

	for i := 0; i < 6; i++ {
		m, _ = m.Update(keyDown)
	}
	require.Equal(t, 6, m.Highlighted())

	view := m.View()
	assert.Contains(t, view, "item-06")
	assert.Contains(t, view, "item-03")
	assert.NotContains(t, view, "item-02")
	assert.NotContains(t, view, "item-07")
	assert.Contains(t, view, "4-7 of 12")

	for i := 0; i < 6; i++ {
		m, _ = m.Update(keyUp)
	}
	view = m.View()
	assert.Contains(t, view, "item-00")
	assert.Contains(t, view, "1-4 of 12")
}

func TestView_MaxHeightZeroShowsAll(t *testing.T) {
	m := New(manyOptions(20), Single{}, WithMaxHeight(0))
	m.Open()

	assert.Equal(t, 21, lipgloss.Height(m.View()))
}

func TestLayout_RegionsFollowRenderedWidths(t *testing.T) {
	opts := testOptions()
	m := New(opts, Multiple{Value: []*Option{opts[0], opts[1]}})
	m.Open()

	hits := m.layout()
	row := m.renderControl()

	control, ok := hits.Test(0, 0)
	require.True(t, ok)
	assert.Equal(t, regionControl, control.ID)

	clearHit := findRegion(t, hits.Regions(), regionClear, 0)
	assert.Equal(t, "×", string([]rune(stripRow(row))[clearHit.Rect.X]))

	for i := range opts {
		r := findRegion(t, hits.Regions(), regionOption, i)
		assert.Equal(t, 1+i, r.Rect.Y)
	}
	_, ok = hits.Test(0, 4)
	assert.False(t, ok)
}

func TestLayout_ClosedHasNoOptionRegions(t *testing.T) {
	m := New(testOptions(), Single{})

	for _, r := range m.layout().Regions() {
		assert.NotEqual(t, regionOption, r.ID)
	}
}

func TestMouse_HoverHighlights(t *testing.T) {
	m := New(testOptions(), Single{})
	m.Open()

	x, y := regionOf(t, m, regionOption, 2)
	m, _ = m.Update(motion(x, y))

	assert.Equal(t, 2, m.Highlighted())
	assert.True(t, m.IsOpen())
}

func TestMouse_ClearDoesNotToggle(t *testing.T) {
	opts := testOptions()
	host := &singleHost{value: opts[0]}
	m := New(opts, host.bind())

	x, y := regionOf(t, m, regionClear, 0)
	m, _ = m.Update(leftPress(x, y))

	require.Len(t, host.calls, 1)
	assert.Nil(t, host.calls[0])
	assert.False(t, m.IsOpen())
}

func TestMouse_ClickAwayBlurs(t *testing.T) {
	m := New(testOptions(), Single{})
	m, _ = m.Update(leftPress(0, 0))
	require.True(t, m.IsOpen())

	m, _ = m.Update(leftPress(200, 50))

	assert.False(t, m.IsOpen())
	assert.False(t, m.Focused())
}

func TestMouse_ClickWhileOpenCloses(t *testing.T) {
	m := New(testOptions(), Single{})
	m, _ = m.Update(leftPress(0, 0))
	m, _ = m.Update(leftPress(0, 0))

	assert.False(t, m.IsOpen())
	assert.True(t, m.Focused())
}

func TestMouse_OriginTranslatesCoordinates(t *testing.T) {
	opts := testOptions()
	host := &singleHost{}
	m := New(opts, host.bind())
	m.SetOrigin(10, 5)

	m, _ = m.Update(leftPress(10, 5))
	require.True(t, m.IsOpen())

	x, y := regionOf(t, m, regionOption, 1)
	m, _ = m.Update(leftPress(x+10, y+5))

	require.Len(t, host.calls, 1)
	assert.Same(t, opts[1], host.calls[0])
	assert.False(t, m.IsOpen())
}

func TestMouse_RightClickIgnored(t *testing.T) {
	m := New(testOptions(), Single{})
	msg := leftPress(0, 0)
	msg.Button = tea.MouseButtonRight

	m, _ = m.Update(msg)

	assert.False(t, m.IsOpen())
}

func TestMouse_ClickOnEmptyListClosesKeepingFocus(t *testing.T) {
	host := &singleHost{}
	m := New(nil, host.bind())
	m, _ = m.Update(leftPress(0, 0))
	require.True(t, m.IsOpen())

	m, _ = m.Update(leftPress(2, 1))

	assert.False(t, m.IsOpen())
	assert.True(t, m.Focused())
	assert.Empty(t, host.calls)
}

func TestMouse_ClickOnScrollFooterClosesKeepingFocus(t *testing.T) {
	host := &singleHost{}
	m := New(manyOptions(12), host.bind())
	m, _ = m.Update(leftPress(0, 0))
	require.True(t, m.IsOpen())
	require.Contains(t, m.View(), "1-8 of 12")

	m, _ = m.Update(leftPress(2, 1+defaultMaxHeight))

	assert.False(t, m.IsOpen())
	assert.True(t, m.Focused())
	assert.Empty(t, host.calls)
}

func TestLayout_OptionRowsSitAboveListContainer(t *testing.T) {
	m := New(testOptions(), Single{})
	m.Open()

	hit, ok := m.layout().Test(0, 2)
	require.True(t, ok)
	assert.Equal(t, regionOption, hit.ID)
	assert.Equal(t, 1, hit.Data)
}

func TestView_CustomStyles(t *testing.T) {
	styles := DefaultStyles()
	styles.Placeholder = lipgloss.NewStyle().Transform(strings.ToUpper)

	m := New(testOptions(), Single{}, WithStyles(styles), WithPlaceholder("pick one"))

	assert.Contains(t, m.View(), "PICK ONE")
}

func findRegion(t *testing.T, regions []mouse.Region, id string, data int) mouse.Region {
	t.Helper()
	for _, r := range regions {
		if r.ID == id && r.Data == data {
			return r
		}
	}
	require.Failf(t, "region not found", "%s/%d", id, data)
	return mouse.Region{}
}

func stripRow(s string) string {
	return strings.Split(s, "\n")[0]
}
