// Package grid renders the workflow run cards that fill the dashboard's
// main region. It is render-only: the app owns the cursor and passes the
// selected index in, so the grid never carries state of its own.
package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mquinnv/gh-hud/internal/lifecycle"
	"github.com/mquinnv/gh-hud/internal/model"
	"github.com/mquinnv/gh-hud/internal/nav"
	"github.com/mquinnv/gh-hud/internal/ui"
)

const minCardWidth = 24

// Render lays the runs out in rows of nav.GridCols columns, newest
// first as given. selected is the flattened index of the cursor when
// focused is true; pass focused=false to draw every card unselected.
func Render(entries []lifecycle.Entry, jobs map[int64][]model.Job, selected int, focused bool, width int, now time.Time) string {
	if len(entries) == 0 {
		return ui.StyleMuted.Render("  No workflow runs in view. r to refresh, u to reach back.")
	}

	cols := nav.GridCols(len(entries))
	cardW := width/cols - 2
	if cardW < minCardWidth {
		cardW = minCardWidth
	}

	var rows []string
	for start := 0; start < len(entries); start += cols {
		end := start + cols
		if end > len(entries) {
			end = len(entries)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(entries[i], jobs[entries[i].Run.ID], cardW, focused && i == selected, now))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func renderCard(e lifecycle.Entry, jobs []model.Job, cardW int, selected bool, now time.Time) string {
	run := e.Run

	icon := ui.StatusIcon(string(run.Conclusion))
	if run.Status != model.RunStatusCompleted {
		icon = ui.StatusIcon(string(run.Status))
	}

	name := run.Name
	if name == "" {
		name = run.DisplayTitle
	}
	// Every line must fit in cardW runes or lipgloss wraps it and the
	// card grows past its four rows, staggering the whole grid.
	num := fmt.Sprintf("#%d", run.RunNumber)
	title := fmt.Sprintf("%s %s %s", icon,
		lipgloss.NewStyle().Bold(true).Render(clip(name, cardW-len(num)-5)),
		ui.StyleMuted.Render(num))
	if e.Resurrected {
		title += " " + ui.StyleResurrected.Render("^")
	}

	nwo := clip(run.Repo.NWO(), cardW-6)
	where := fmt.Sprintf("%s %s",
		ui.StyleMuted.Render(nwo),
		ui.StyleInfo.Render(clip(run.HeadBranch, cardW-len([]rune(nwo))-1)))

	who := run.Actor.Login
	if who == "" {
		who = "unknown"
	}
	meta := ui.StyleMuted.Render(clip(fmt.Sprintf("%s by %s  %s",
		run.Event, clip(who, 16), elapsed(run, now)), cardW))

	style := ui.StylePane
	if selected {
		style = ui.StylePaneFocused
	}
	lines := []string{title, where, meta, statusLine(e, jobs, cardW)}
	return style.Width(cardW).Render(strings.Join(lines, "\n"))
}

// statusLine is the card's fourth line: live job progress while the run
// executes, the conclusion once it is done, a queue note before it
// starts.
func statusLine(e lifecycle.Entry, jobs []model.Job, cardW int) string {
	run := e.Run
	if run.Completed() {
		return ui.ConclusionStyle(string(run.Conclusion)).Render(string(run.Conclusion))
	}
	if run.Status != model.RunStatusInProgress {
		return ui.StyleMuted.Render("waiting for runner")
	}
	for _, j := range jobs {
		if j.Status != model.RunStatusInProgress {
			continue
		}
		done, total := j.Progress()
		if step := j.CurrentStep(); step != nil && total > 0 {
			return ui.StyleInfo.Render(clip(fmt.Sprintf("%s %d/%d %s", j.Name, done, total, step.Name), cardW-2))
		}
		return ui.StyleInfo.Render(clip(j.Name, cardW-2))
	}
	return ui.StyleInfo.Render("running")
}

// elapsed ticks with the clock for live runs and freezes at the final
// duration for completed ones.
func elapsed(run model.Run, now time.Time) string {
	d := run.Duration()
	if !run.Completed() {
		start := run.RunStartedAt
		if start.IsZero() {
			start = run.CreatedAt
		}
		d = now.Sub(start)
	}
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}

func clip(s string, max int) string {
	if max < 1 {
		max = 1
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return string(r[:1])
	}
	return string(r[:max-1]) + "…"
}
