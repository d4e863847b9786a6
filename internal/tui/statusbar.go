package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mquinnv/gh-hud/internal/ui"
)

// RenderStatusBar draws the bottom bar: refresh status on the left, a
// transient notice after it, context key hints on the right.
func RenderStatusBar(status, notice, hints string, width int) string {
	left := ui.StyleMuted.Render("  " + status)
	if notice != "" {
		left += ui.StyleWarning.Render("  " + notice)
	}

	help := ui.StyleMuted.Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + padding + help)
}
