package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mquinnv/gh-hud/internal/ui"
)

// RenderHeader draws the top bar: watched repos on the left, run counts
// on the right.
func RenderHeader(repos string, active, pending int, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" gh-hud | %s", repos))

	counts := ""
	if active > 0 {
		counts = ui.StyleInfo.Render(fmt.Sprintf("%d active", active))
	}
	if pending > 0 {
		if counts != "" {
			counts += ui.StyleMuted.Render(" | ")
		}
		counts += ui.StyleWarning.Render(fmt.Sprintf("%d done", pending))
	}
	if counts != "" {
		counts += " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(counts)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + counts)
}
