package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mquinnv/gh-hud/internal/ui"
)

func (a App) renderHelp() string {
	bold := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(12)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("hjkl / arrows", "Move between cards and strips"))
	b.WriteString(row("enter / o", "Open selected run or PR in browser"))
	b.WriteString(row("esc", "Close dialog or log panel"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + bold.Render("  Refresh") + "\n\n")
	b.WriteString(row("r", "Refresh now"))
	b.WriteString(row("R", "Flush caches and refresh"))

	b.WriteString("\n" + bold.Render("  Runs") + "\n\n")
	b.WriteString(row("d", "Dismiss selected completed run"))
	b.WriteString(row("D", "Dismiss all completed runs"))
	b.WriteString(row("u", "Bring back the next older run"))
	b.WriteString(row("x", "Cancel selected run"))
	b.WriteString(row("X", "Rerun failed jobs of selected run"))

	b.WriteString("\n" + bold.Render("  Pull requests & services") + "\n\n")
	b.WriteString(row("m", "Squash-merge selected PR"))
	b.WriteString(row("s", "Restart selected compose service"))
	b.WriteString(row("S", "Stop selected compose service"))
	b.WriteString(row("C", "Recreate selected compose service"))

	b.WriteString("\n" + bold.Render("  Log panel") + "\n\n")
	b.WriteString(row("L", "Show / hide the event log"))
	b.WriteString(row("+ / -", "Grow / shrink the panel"))
	b.WriteString(row("f", "Cycle level filter: info, debug, trace"))
	b.WriteString(row("PgUp/PgDn", "Scroll the panel"))

	b.WriteString("\n" + ui.StyleMuted.Render("  Press any key to close"))
	return b.String()
}
