package cache

import (
	"sort"
	"sync"

	"github.com/lysyi3m/rss-toast/app/feed"
)

// Dedup remembers entries seen within the current window, keyed by timestamp.
// Entries published in the same second are treated as one entry.
type Dedup struct {
	mu      sync.Mutex
	entries map[int64]feed.Entry
}

func NewDedup() *Dedup {
	return &Dedup{entries: make(map[int64]feed.Entry)}
}

// Offer stores the entry if its key is new. notify is true only for a new
// entry offered while warm; the first cycle fills the cache silently.
func (d *Dedup) Offer(entry feed.Entry, warm bool) (inserted bool, notify bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.entries[entry.Key()]; ok {
		return false, false
	}

	d.entries[entry.Key()] = entry
	return true, warm
}

// Evict removes every entry with a timestamp at or before cutoff
func (d *Dedup) Evict(cutoff int64) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for key, entry := range d.entries {
		if entry.Timestamp <= cutoff {
			delete(d.entries, key)
			removed++
		}
	}

	return removed
}

func (d *Dedup) Contains(timestamp int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.entries[timestamp]
	return ok
}

func (d *Dedup) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.entries)
}

// Snapshot returns a copy of the stored entries, newest first
func (d *Dedup) Snapshot() []feed.Entry {
	d.mu.Lock()
	entries := make([]feed.Entry, 0, len(d.entries))
	for _, entry := range d.entries {
		entries = append(entries, entry)
	}
	d.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})

	return entries
}
