package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Back        key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Open        key.Binding
	Refresh     key.Binding
	HardRefresh key.Binding
	Dismiss     key.Binding
	DismissAll  key.Binding
	Resurrect   key.Binding
	CancelRun   key.Binding
	RerunFailed key.Binding
	Merge       key.Binding
	Restart     key.Binding
	Stop        key.Binding
	Recreate    key.Binding
	ToggleLog   key.Binding
	LogTaller   key.Binding
	LogShorter  key.Binding
	LogFilter   key.Binding
}

var Keys = KeyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/left", "left")),
	Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/right", "right")),
	Open:        key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open in browser")),
	Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	HardRefresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "hard refresh")),
	Dismiss:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
	DismissAll:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "dismiss all")),
	Resurrect:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "bring back older run")),
	CancelRun:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel run")),
	RerunFailed: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "rerun failed jobs")),
	Merge:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "merge PR")),
	Restart:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "restart service")),
	Stop:        key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "stop service")),
	Recreate:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "recreate service")),
	ToggleLog:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log panel")),
	LogTaller:   key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "grow log")),
	LogShorter:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shrink log")),
	LogFilter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "log filter")),
}
