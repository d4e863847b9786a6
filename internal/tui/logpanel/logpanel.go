// Package logpanel is the collapsible event-log pane docked under the
// run grid. It formats eventlog entries into a viewport that follows
// the tail unless the user has scrolled away from it.
package logpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/mquinnv/gh-hud/internal/eventlog"
	"github.com/mquinnv/gh-hud/internal/ui"
)

type Model struct {
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	filter   eventlog.Level
	shown    int
	total    int
}

func New() Model {
	return Model{}
}

// SetSize gives the panel the full terminal width and the number of
// entry lines to show. The pane border and title line are added on top
// of height, so the rendered block is height+3 lines tall.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	if !m.ready {
		m.viewport = viewport.New(inner, height)
		m.ready = true
	} else {
		m.viewport.Width = inner
		m.viewport.Height = height
	}
}

// SetEntries replaces the panel content with the entries passing the
// filter. A viewport sitting at the bottom keeps following the tail;
// one scrolled back holds its offset.
func (m *Model) SetEntries(entries []eventlog.Entry, filter eventlog.Level) {
	m.filter = filter
	m.total = len(entries)

	var lines []string
	for _, e := range entries {
		if !eventlog.Visible(e.Level, filter) {
			continue
		}
		lines = append(lines, formatEntry(e))
	}
	m.shown = len(lines)

	if !m.ready {
		return
	}
	wasAtBottom := m.viewport.AtBottom()
	prevOffset := m.viewport.YOffset

	if len(lines) == 0 {
		m.viewport.SetContent(ui.StyleMuted.Render("nothing logged yet"))
	} else {
		m.viewport.SetContent(strings.Join(lines, "\n"))
	}

	if wasAtBottom {
		m.viewport.GotoBottom()
		return
	}
	maxOffset := m.viewport.TotalLineCount() - m.viewport.VisibleLineCount()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if prevOffset > maxOffset {
		prevOffset = maxOffset
	}
	m.viewport.SetYOffset(prevOffset)
}

// Scroll moves the viewport by delta lines, positive meaning down.
func (m *Model) Scroll(delta int) {
	if !m.ready {
		return
	}
	offset := m.viewport.YOffset + delta
	maxOffset := m.viewport.TotalLineCount() - m.viewport.VisibleLineCount()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	m.viewport.SetYOffset(offset)
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	title := ui.StyleMuted.Render(fmt.Sprintf(" Log  filter=%s  %d/%d  f cycles, +/- resize, L hides",
		m.filter, m.shown, m.total))
	return ui.StylePane.Width(m.width - 2).
		Render(title + "\n" + m.viewport.View())
}

func formatEntry(e eventlog.Entry) string {
	tag := fmt.Sprintf("%-5s", strings.ToUpper(e.Level.String()))
	return fmt.Sprintf("%s %s %s",
		ui.StyleMuted.Render(e.Time.Format("15:04:05")),
		levelStyle(e.Level).Render(tag),
		e.Text)
}

func levelStyle(l eventlog.Level) lipgloss.Style {
	switch l {
	case eventlog.LevelError:
		return ui.StyleFailure
	case eventlog.LevelEvent:
		return ui.StyleSuccess
	case eventlog.LevelDebug, eventlog.LevelTrace:
		return ui.StyleMuted
	}
	return ui.StyleInfo
}
