package lifecycle

import (
	"sort"
	"sync"
	"time"

	"github.com/mquinnv/gh-hud/internal/model"
)

// Entry is the derived per-run state, independent of raw poll data. An
// entry is created the first time a run id is observed and never
// destroyed; a run that vanishes from later polls keeps its last
// record.
type Entry struct {
	Run              model.Run
	Watched          bool // ever seen non-completed
	CompletedPending bool // completion caught live, visible until dismissed
	Dismissed        bool
	Resurrected      bool
	LastSeen         time.Time
}

// Visible reports whether the run renders: status non-completed, or a
// completion caught live (or resurrected) and not yet dismissed.
func (e Entry) Visible() bool {
	return !e.Run.Completed() || e.CompletedPending
}

type Transition int

const (
	TransitionNone Transition = iota
	TransitionWatched
	TransitionIgnoredCompleted
	TransitionCompletedPending
)

func (tr Transition) String() string {
	switch tr {
	case TransitionWatched:
		return "watched"
	case TransitionIgnoredCompleted:
		return "ignored-completed"
	case TransitionCompletedPending:
		return "completed-pending"
	}
	return "none"
}

// Tracker owns the lifecycle state machine for every run id ever
// observed. The poll engine is the only caller during a cycle; the
// mutex covers dismiss and resurrect, which arrive from the update loop
// outside the cycle guard.
type Tracker struct {
	mu      sync.Mutex
	entries map[int64]*Entry
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{entries: make(map[int64]*Entry), now: time.Now}
}

// Observe feeds one polled run through the state machine, replacing the
// stored record wholesale. Transitions:
//
//	first sight, non-completed     -> Watched
//	first sight, already completed -> recorded but never shown
//	Watched, flips to completed    -> CompletedPending
//	any state, seen active again   -> Watched (a rerun starts a new
//	                                  active phase, clearing dismissal)
func (t *Tracker) Observe(run model.Run) Transition {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[run.ID]
	if !ok {
		e = &Entry{Run: run, Watched: !run.Completed(), LastSeen: t.now()}
		t.entries[run.ID] = e
		if e.Watched {
			return TransitionWatched
		}
		return TransitionIgnoredCompleted
	}

	wasCompleted := e.Run.Completed()
	e.Run = run
	e.LastSeen = t.now()

	if !run.Completed() {
		fresh := !e.Watched || e.Dismissed
		e.Watched = true
		e.Dismissed = false
		e.CompletedPending = false
		e.Resurrected = false
		if fresh {
			return TransitionWatched
		}
		return TransitionNone
	}
	if e.Watched && !wasCompleted && !e.Dismissed {
		e.CompletedPending = true
		return TransitionCompletedPending
	}
	return TransitionNone
}

// Dismiss hides one CompletedPending run. Purely local: no poll needed
// for the run to leave the visible set. Returns false when the id is
// not currently dismissable.
func (t *Tracker) Dismiss(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok || !e.CompletedPending {
		return false
	}
	e.CompletedPending = false
	e.Dismissed = true
	e.Resurrected = false
	return true
}

// DismissAll hides exactly the currently CompletedPending runs and
// returns how many there were.
func (t *Tracker) DismissAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, e := range t.entries {
		if e.CompletedPending {
			e.CompletedPending = false
			e.Dismissed = true
			e.Resurrected = false
			n++
		}
	}
	return n
}

// Resurrect admits a fetched older run as CompletedPending regardless of
// its real status, so it renders, is visually marked and stays
// dismiss-eligible.
func (t *Tracker) Resurrect(run model.Run) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[run.ID] = &Entry{
		Run:              run,
		Watched:          true,
		CompletedPending: true,
		Resurrected:      true,
		LastSeen:         t.now(),
	}
}

// Visible returns renderable entries, newest run first.
func (t *Tracker) Visible() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		if e.Visible() {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Run.CreatedAt.Equal(out[j].Run.CreatedAt) {
			return out[i].Run.ID > out[j].Run.ID
		}
		return out[i].Run.CreatedAt.After(out[j].Run.CreatedAt)
	})
	return out
}

// IsVisible reports whether an id currently renders. Resurrection skips
// candidates that are already on screen.
func (t *Tracker) IsVisible(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	return ok && e.Visible()
}

// OldestVisible returns the creation time of the oldest rendered run,
// zero when nothing renders. It seeds the resurrect cursor.
func (t *Tracker) OldestVisible() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	var oldest time.Time
	for _, e := range t.entries {
		if !e.Visible() {
			continue
		}
		if oldest.IsZero() || e.Run.CreatedAt.Before(oldest) {
			oldest = e.Run.CreatedAt
		}
	}
	return oldest
}

// Counts reports watched-active, completed-pending and dismissed totals
// for the status line.
func (t *Tracker) Counts() (active, pending, dismissed int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		switch {
		case e.CompletedPending:
			pending++
		case e.Dismissed:
			dismissed++
		case e.Watched && !e.Run.Completed():
			active++
		}
	}
	return active, pending, dismissed
}
