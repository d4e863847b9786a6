package logpanel

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mquinnv/gh-hud/internal/eventlog"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func entry(level eventlog.Level, text string) eventlog.Entry {
	return eventlog.Entry{Time: t0, Level: level, Text: text}
}

func TestViewEmptyBeforeFirstSize(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("panel without a size should render nothing")
	}
}

func TestTitleCountsFilteredEntries(t *testing.T) {
	m := New()
	m.SetSize(100, 5)
	m.SetEntries([]eventlog.Entry{
		entry(eventlog.LevelInfo, "poll finished"),
		entry(eventlog.LevelDebug, "cache hit"),
		entry(eventlog.LevelError, "pulls failed"),
	}, eventlog.LevelInfo)

	view := m.View()
	if !strings.Contains(view, "filter=info") {
		t.Error("title should name the filter")
	}
	if !strings.Contains(view, "2/3") {
		t.Errorf("debug entry should be hidden at info, view:\n%s", view)
	}
	if strings.Contains(view, "cache hit") {
		t.Error("below-filter entry must not render")
	}
	if !strings.Contains(view, "pulls failed") {
		t.Error("errors pass every filter")
	}
}

func TestRaisingFilterRevealsHistory(t *testing.T) {
	entries := []eventlog.Entry{
		entry(eventlog.LevelDebug, "cache hit"),
		entry(eventlog.LevelInfo, "poll finished"),
	}
	m := New()
	m.SetSize(100, 5)
	m.SetEntries(entries, eventlog.LevelInfo)
	if strings.Contains(m.View(), "cache hit") {
		t.Fatal("setup: debug hidden at info")
	}
	m.SetEntries(entries, eventlog.LevelDebug)
	if !strings.Contains(m.View(), "cache hit") {
		t.Error("stored entries should reappear when the filter loosens")
	}
}

func TestViewportFollowsTail(t *testing.T) {
	m := New()
	m.SetSize(100, 3)

	var entries []eventlog.Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, entry(eventlog.LevelInfo, fmt.Sprintf("line-%d", i)))
	}
	m.SetEntries(entries, eventlog.LevelInfo)

	view := m.View()
	if !strings.Contains(view, "line-9") {
		t.Errorf("panel should sit at the tail, view:\n%s", view)
	}
	if strings.Contains(view, "line-0") {
		t.Error("oldest line should have scrolled out of a 3-row panel")
	}
}

func TestEntriesCarryTimeAndLevelTag(t *testing.T) {
	m := New()
	m.SetSize(100, 5)
	m.SetEntries([]eventlog.Entry{entry(eventlog.LevelError, "boom")}, eventlog.LevelInfo)

	view := m.View()
	if !strings.Contains(view, "12:00:00") {
		t.Error("entry should carry its timestamp")
	}
	if !strings.Contains(view, "ERROR") {
		t.Error("entry should carry its level tag")
	}
}

func TestScrollClampsAtEdges(t *testing.T) {
	m := New()
	m.SetSize(100, 3)
	var entries []eventlog.Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, entry(eventlog.LevelInfo, fmt.Sprintf("line-%d", i)))
	}
	m.SetEntries(entries, eventlog.LevelInfo)

	m.Scroll(-100)
	if !strings.Contains(m.View(), "line-0") {
		t.Error("scrolling far up should land on the first line")
	}
	m.Scroll(100)
	if !strings.Contains(m.View(), "line-9") {
		t.Error("scrolling far down should land back on the tail")
	}
}
