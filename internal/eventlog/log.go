package eventlog

import (
	"fmt"
	"sync"
	"time"
)

// Level orders log verbosity. Info, debug and trace form the monotone
// filter scale; event and error sit outside it and pass every filter.
type Level int

const (
	LevelInfo Level = iota
	LevelDebug
	LevelTrace
	LevelEvent
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	case LevelEvent:
		return "event"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// ParseLevel maps a stored preference string back to a filter level.
// Unknown strings fall back to info, the least verbose filter.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "trace":
		return LevelTrace
	}
	return LevelInfo
}

// NextFilter cycles info -> debug -> trace -> info for the filter key.
func NextFilter(f Level) Level {
	switch f {
	case LevelInfo:
		return LevelDebug
	case LevelDebug:
		return LevelTrace
	}
	return LevelInfo
}

// Visible reports whether an entry at level passes the filter.
func Visible(level, filter Level) bool {
	if level == LevelEvent || level == LevelError {
		return true
	}
	return level <= filter
}

type Entry struct {
	Time  time.Time
	Level Level
	Text  string
}

// Log is the process-wide diagnostic ring, append-only and
// capacity-bounded with the oldest entry overwritten on overflow.
// Appends are cheap and never fail; tea.Cmd goroutines log through it
// too, hence the mutex. Entries below the current filter are stored
// anyway so raising the filter later reveals history up to capacity.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	start   int
	count   int
	filter  Level
	renders uint64
	now     func() time.Time
}

const DefaultCapacity = 512

func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{entries: make([]Entry, capacity), now: time.Now}
}

func (l *Log) append(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := (l.start + l.count) % len(l.entries)
	l.entries[idx] = Entry{Time: l.now(), Level: level, Text: fmt.Sprintf(format, args...)}
	if l.count < len(l.entries) {
		l.count++
	} else {
		l.start = (l.start + 1) % len(l.entries)
	}
	if Visible(level, l.filter) {
		l.renders++
	}
}

func (l *Log) Infof(format string, args ...interface{})  { l.append(LevelInfo, format, args...) }
func (l *Log) Debugf(format string, args ...interface{}) { l.append(LevelDebug, format, args...) }
func (l *Log) Tracef(format string, args ...interface{}) { l.append(LevelTrace, format, args...) }
func (l *Log) Eventf(format string, args ...interface{}) { l.append(LevelEvent, format, args...) }
func (l *Log) Errorf(format string, args ...interface{}) { l.append(LevelError, format, args...) }

// Filter returns the current filter level.
func (l *Log) Filter() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// SetFilter changes the filter and marks the panel dirty; lowering or
// raising it retroactively changes which stored entries show.
func (l *Log) SetFilter(f Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f == l.filter {
		return
	}
	l.filter = f
	l.renders++
}

// Entries returns every stored entry, oldest first, in append order.
// Filtering is the renderer's business (Visible), so below-filter
// history stays reachable when the filter is raised later.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.start+i)%len(l.entries)]
	}
	return out
}

// Len counts stored entries regardless of filter.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// RenderGeneration increments only when the visible content changed: an
// append passing the filter, or a filter change. The panel compares it
// against the generation it last drew, so bursts coalesce into one
// redraw per flush tick and below-filter appends force none at all.
func (l *Log) RenderGeneration() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.renders
}
