// Package prstrip renders the single-row strip of open pull requests
// that sits above the run grid. Like the grid it is render-only; the
// cursor lives in the app.
package prstrip

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mquinnv/gh-hud/internal/model"
	"github.com/mquinnv/gh-hud/internal/ui"
)

var chipSelected = lipgloss.NewStyle().Background(ui.ColorHighlight).Bold(true)

// Render draws the strip in a one-line pane. When the chips overrun the
// width, the window slides so the selected chip stays in view.
func Render(pulls []model.PullRequest, selected int, focused bool, width int) string {
	style := ui.StylePane
	if focused {
		style = ui.StylePaneFocused
	}
	inner := width - 2

	if len(pulls) == 0 {
		return style.Width(inner).Render(ui.StyleMuted.Render(" PRs: none open"))
	}

	label := ui.StyleMuted.Render(" PRs ")
	chips := make([]string, len(pulls))
	for i, pr := range pulls {
		chips[i] = chip(pr, focused && i == selected)
	}
	line := label + slideWindow(chips, selected, inner-lipgloss.Width(label))
	return style.Width(inner).Render(line)
}

func chip(pr model.PullRequest, selected bool) string {
	text := fmt.Sprintf("%s #%d %s", ui.ReviewIcon(pr.ReviewState()), pr.Number, clip(pr.Title, 28))
	if pr.Draft {
		text = ui.StyleMuted.Render(text)
	}
	if selected {
		return chipSelected.Render(" "+text+" ") + ui.StyleMuted.Render(clip(" "+pr.Repo.NWO(), 22))
	}
	return " " + text + " "
}

// slideWindow drops whole chips from the left until the selected one
// fits, then clips the assembled line to the width.
func slideWindow(chips []string, selected int, width int) string {
	if width < 1 {
		return ""
	}
	start := 0
	for start < selected {
		// a slid window spends two cells on the « marker
		avail := width
		if start > 0 {
			avail -= 2
		}
		w := 0
		for i := start; i <= selected; i++ {
			w += lipgloss.Width(chips[i])
		}
		if w <= avail {
			break
		}
		start++
	}
	line := ""
	if start > 0 {
		line = ui.StyleMuted.Render("« ")
	}
	for i := start; i < len(chips); i++ {
		if lipgloss.Width(line)+lipgloss.Width(chips[i]) > width {
			break
		}
		line += chips[i]
	}
	return line
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 2 {
		return string(r[:1])
	}
	return string(r[:max-1]) + "…"
}
