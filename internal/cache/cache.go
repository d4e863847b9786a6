package cache

import (
	"fmt"
	"sync"
	"time"
)

// Kind names one adapter query class. Job queries add the run id to the
// key; run, pull-request and docker queries are keyed per repo.
type Kind string

const (
	KindRuns     Kind = "runs"
	KindJobs     Kind = "jobs"
	KindPulls    Kind = "pulls"
	KindServices Kind = "services"
)

// Key addresses one cached query result.
type Key struct {
	Repo string
	Kind Kind
	ID   int64
}

func (k Key) String() string {
	if k.ID != 0 {
		return fmt.Sprintf("%s/%s/%d", k.Repo, k.Kind, k.ID)
	}
	return fmt.Sprintf("%s/%s", k.Repo, k.Kind)
}

type entry struct {
	value    interface{}
	storedAt time.Time
}

// Cache is a fixed-TTL memo in front of the poll adapters. It absorbs
// bursts of near-simultaneous refreshes; staleness up to one TTL window
// is acceptable, so the TTL stays below the refresh interval. Expired
// entries are evicted lazily by the access that finds them stale, never
// by a background sweep.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[Key]entry
	now     func() time.Time

	hits   int
	misses int
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[Key]entry),
		now:     time.Now,
	}
}

// Get returns the stored value while it is fresh.
func (c *Cache) Get(key Key) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		c.misses++
		return nil, false
	}
	c.hits++
	return e.value, true
}

func (c *Cache) Put(key Key, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// Flush drops everything. The hard-refresh key uses it to force adapter
// calls on the next cycle.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]entry)
}

// Stats returns lifetime hit and miss counts. The engine folds them
// into its cycle-completion log line.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len counts stored entries. Expired ones still count until an access
// evicts them; that is the lazy-eviction contract, not a leak.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
