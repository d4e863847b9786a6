// Package services renders the docker compose strip at the top of the
// dashboard. Services from every compose project flatten into one row;
// the selected index addresses that flattened sequence.
package services

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mquinnv/gh-hud/internal/model"
	"github.com/mquinnv/gh-hud/internal/ui"
)

var chipSelected = lipgloss.NewStyle().Background(ui.ColorHighlight).Bold(true)

func Render(groups []model.ComposeStatus, selected int, focused bool, width int) string {
	style := ui.StylePane
	if focused {
		style = ui.StylePaneFocused
	}
	inner := width - 2

	total := model.ServiceCount(groups)
	if total == 0 {
		return style.Width(inner).Render(ui.StyleMuted.Render(" Services: none running"))
	}

	label := ui.StyleMuted.Render(" Services ")
	multi := len(groups) > 1
	chips := make([]string, 0, total)
	i := 0
	for _, g := range groups {
		for _, s := range g.Services {
			chips = append(chips, chip(g, s, multi, focused && i == selected))
			i++
		}
	}
	line := label + slideWindow(chips, selected, inner-lipgloss.Width(label))
	return style.Width(inner).Render(line)
}

func chip(g model.ComposeStatus, s model.Service, multi, selected bool) string {
	name := s.Name
	if multi {
		name = g.Project + "/" + s.Name
	}
	text := fmt.Sprintf("%s %s", ui.ServiceIcon(string(s.State), string(s.Health)), clip(name, 24))
	if !selected {
		return " " + text + " "
	}
	out := chipSelected.Render(" " + text + " ")
	if s.Ports != "" {
		out += ui.StyleMuted.Render(clip(" "+s.Ports, 24))
	}
	return out
}

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
