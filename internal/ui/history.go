package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"tuiselect/internal/domain"
)

// renderHistoryContent renders the selection history, newest first
func renderHistoryContent(history []domain.Change) string {
	var b strings.Builder
	b.WriteString("Selection history\n\n")
	if len(history) == 0 {
		b.WriteString("  (no changes yet)\n")
		return b.String()
	}
	for i := len(history) - 1; i >= 0; i-- {
		c := history[i]
		labels := "(cleared)"
		if len(c.Labels) > 0 {
			labels = strings.Join(c.Labels, ", ")
		}
		fmt.Fprintf(&b, "  %s  %-12s %s\n", c.At.Format("15:04:05"), c.Field, labels)
	}
	return b.String()
}

// pagerCommand runs the ov pager over a fixed text. It implements
// tea.ExecCommand so Bubble Tea releases the terminal while ov owns it.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showHistoryInPager shows the history using the ov pager
func showHistoryInPager(history []domain.Change) tea.Cmd {
	cmd := &pagerCommand{content: renderHistoryContent(history)}
	return tea.Exec(cmd, func(err error) tea.Msg {
		return historyPagerMsg{err: err}
	})
}
