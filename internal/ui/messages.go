package ui

import (
	"github.com/mquinnv/gh-hud/internal/model"
	"github.com/mquinnv/gh-hud/internal/poll"
)

// RefreshDoneMsg delivers one completed refresh cycle. Snap is nil when
// Err is set; an ErrInFlight drop arrives here too and is ignored.
type RefreshDoneMsg struct {
	Snap *poll.Snapshot
	Err  error
}

// RefreshTickMsg fires the scheduled auto-refresh.
type RefreshTickMsg struct{}

// LogTickMsg drives the log panel flush: the panel re-renders at tick
// pace when its content generation moved, so append bursts coalesce.
type LogTickMsg struct{}

// ClockTickMsg advances the relative timestamps (elapsed run time,
// "refreshed Ns ago") while no data changed.
type ClockTickMsg struct{}

// ActionDoneMsg is the outcome of one dispatched action (cancel, rerun,
// merge, restart, stop, recreate, open). Success triggers a forced
// refresh; failure only logs.
type ActionDoneMsg struct {
	Action string
	Detail string
	Err    error
}

// ResurrectDoneMsg delivers the snapshot after re-admitting an older
// run, or ErrNothingOlder when the backward walk is exhausted.
type ResurrectDoneMsg struct {
	Snap *poll.Snapshot
	Run  model.Run
	Err  error
}

// PrefsSavedMsg reports the async preference write; failures are logged
// and never fatal.
type PrefsSavedMsg struct {
	Err error
}
