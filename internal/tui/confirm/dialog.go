// Package confirm is the modal yes/no dialog that guards destructive
// actions. The dialog resolves to a ResultMsg carrying the action name
// and payload it was opened with; the app switches on the name to run
// the confirmed action.
package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mquinnv/gh-hud/internal/ui"
)

type ResultMsg struct {
	Confirmed bool
	Action    string
	Data      interface{}
}

type Model struct {
	Title   string
	Message string
	Action  string
	Data    interface{}

	active   bool
	selected bool // true when Yes is highlighted
}

func New(title, message, action string, data interface{}) Model {
	return Model{
		Title:   title,
		Message: message,
		Action:  action,
		Data:    data,
		active:  true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return m.resolve(true)
		case "n", "N", "esc":
			return m.resolve(false)
		case "enter":
			return m.resolve(m.selected)
		case "tab", "left", "right", "h", "l":
			m.selected = !m.selected
		}
	}
	return m, nil
}

func (m Model) resolve(confirmed bool) (Model, tea.Cmd) {
	m.active = false
	return m, func() tea.Msg {
		return ResultMsg{Confirmed: confirmed, Action: m.Action, Data: m.Data}
	}
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(50)

	title := ui.StyleWarning.Bold(true).Render(m.Title)

	yes := lipgloss.NewStyle().Padding(0, 1)
	no := lipgloss.NewStyle().Padding(0, 1)
	if m.selected {
		yes = yes.Bold(true).Background(ui.ColorSuccess).Foreground(lipgloss.Color("#F9FAFB"))
		no = no.Foreground(ui.ColorMuted)
	} else {
		yes = yes.Foreground(ui.ColorMuted)
		no = no.Bold(true).Background(ui.ColorFailure).Foreground(lipgloss.Color("#F9FAFB"))
	}

	return frame.Render(fmt.Sprintf("%s\n\n%s\n\n%s  %s\n\ny/n to confirm, esc to cancel",
		title, m.Message, yes.Render("Yes"), no.Render("No")))
}
