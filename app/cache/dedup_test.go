package cache

import (
	"testing"

	"github.com/lysyi3m/rss-toast/app/feed"
)

func TestOffer_Idempotent(t *testing.T) {
	d := NewDedup()
	entry := feed.Entry{Title: "T", Link: "http://x/1", Timestamp: 1736726400}

	inserted, notify := d.Offer(entry, true)
	if !inserted || !notify {
		t.Errorf("First offer: expected inserted and notify, got %v %v", inserted, notify)
	}

	inserted, notify = d.Offer(entry, true)
	if inserted || notify {
		t.Errorf("Second offer: expected neither inserted nor notify, got %v %v", inserted, notify)
	}

	if d.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", d.Len())
	}
}

func TestOffer_WarmUpIsSilent(t *testing.T) {
	d := NewDedup()

	inserted, notify := d.Offer(feed.Entry{Timestamp: 100}, false)
	if !inserted {
		t.Error("Expected entry to be inserted during warm-up")
	}
	if notify {
		t.Error("Expected no notification during warm-up")
	}

	if _, notify := d.Offer(feed.Entry{Timestamp: 100}, true); notify {
		t.Error("Entry seen during warm-up should not notify later")
	}
}

func TestOffer_SameTimestampCollapses(t *testing.T) {
	d := NewDedup()

	d.Offer(feed.Entry{Title: "A", Link: "http://a", Timestamp: 42}, true)
	inserted, _ := d.Offer(feed.Entry{Title: "B", Link: "http://b", Timestamp: 42}, true)

	if inserted {
		t.Error("Entries sharing a timestamp should be treated as the same entry")
	}
	if d.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", d.Len())
	}
}

func TestEvict(t *testing.T) {
	d := NewDedup()
	for _, ts := range []int64{10, 20, 30, 40} {
		d.Offer(feed.Entry{Timestamp: ts}, false)
	}

	removed := d.Evict(20)
	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}

	for _, ts := range []int64{10, 20} {
		if d.Contains(ts) {
			t.Errorf("Entry %d should have been evicted", ts)
		}
	}
	for _, ts := range []int64{30, 40} {
		if !d.Contains(ts) {
			t.Errorf("Entry %d should remain", ts)
		}
	}

	if removed := d.Evict(0); removed != 0 {
		t.Errorf("Expected nothing removed, got %d", removed)
	}
}

func TestEvict_AllowsReinsert(t *testing.T) {
	d := NewDedup()
	d.Offer(feed.Entry{Timestamp: 5}, false)
	d.Evict(5)

	if inserted, _ := d.Offer(feed.Entry{Timestamp: 5}, true); !inserted {
		t.Error("Evicted entry should be insertable again")
	}
}

func TestSnapshot_NewestFirst(t *testing.T) {
	d := NewDedup()
	for _, ts := range []int64{20, 40, 10, 30} {
		d.Offer(feed.Entry{Timestamp: ts}, false)
	}

	snapshot := d.Snapshot()
	if len(snapshot) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(snapshot))
	}
	for i, ts := range []int64{40, 30, 20, 10} {
		if snapshot[i].Timestamp != ts {
			t.Errorf("Position %d: expected %d, got %d", i, ts, snapshot[i].Timestamp)
		}
	}
}
