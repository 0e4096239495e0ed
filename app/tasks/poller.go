package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/rss-toast/app/cache"
	"github.com/lysyi3m/rss-toast/app/feed"
	"github.com/lysyi3m/rss-toast/app/notify"
	"github.com/samber/lo"
)

type Options struct {
	Window     time.Duration // entries older than now-Window are ignored and evicted
	Pause      time.Duration // between consecutive fetches
	Interval   time.Duration // between cycles
	NotifyWait time.Duration // after each notification

	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// CycleStats summarizes one pass over the feed list
type CycleStats struct {
	Cycle        int       `json:"cycle"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	Cutoff       int64     `json:"cutoff"`
	Feeds        int       `json:"feeds"`
	Fetched      int       `json:"fetched"`
	FetchFailed  int       `json:"fetch_failed"`
	ParseFailed  int       `json:"parse_failed"`
	Skipped      int       `json:"skipped"`
	Accepted     int       `json:"accepted"`
	New          int       `json:"new"`
	Notified     int       `json:"notified"`
	Muted        int       `json:"muted"`
	NotifyFailed int       `json:"notify_failed"`
	Evicted      int       `json:"evicted"`
	CacheSize    int       `json:"cache_size"`
}

type Stats struct {
	Cycles int         `json:"cycles"`
	Last   *CycleStats `json:"last_cycle,omitempty"`
}

// Poller fetches every feed in order, cycle after cycle, and notifies about
// entries that were not seen before within the window. Everything runs on
// the calling goroutine.
type Poller struct {
	feeds    []string
	fetcher  FetcherInterface
	parser   ParserInterface
	cache    *cache.Dedup
	filterer *feed.Filterer
	notifier NotifierInterface
	recorder RecorderInterface
	opts     Options

	mu    sync.Mutex
	stats Stats
}

func NewPoller(feeds []string, fetcher FetcherInterface, parser ParserInterface, dedup *cache.Dedup,
	filterer *feed.Filterer, notifier NotifierInterface, recorder RecorderInterface, opts Options) *Poller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if filterer == nil {
		filterer = feed.NewFilterer(nil)
	}

	return &Poller{
		feeds:    feeds,
		fetcher:  fetcher,
		parser:   parser,
		cache:    dedup,
		filterer: filterer,
		notifier: notifier,
		recorder: recorder,
		opts:     opts,
	}
}

// Run executes cycles until ctx is cancelled
func (p *Poller) Run(ctx context.Context) error {
	for cycle := 0; ; cycle++ {
		if _, err := p.RunCycle(ctx, cycle); err != nil {
			return err
		}

		if err := p.opts.Sleep(ctx, p.opts.Interval); err != nil {
			return err
		}
	}
}

// RunCycle performs one pass over the feed list. Cycle 0 only fills the cache.
func (p *Poller) RunCycle(ctx context.Context, cycle int) (CycleStats, error) {
	started := p.opts.Now()
	cutoff := started.Add(-p.opts.Window).Unix()

	stats := CycleStats{
		Cycle:     cycle,
		StartedAt: started,
		Cutoff:    cutoff,
		Feeds:     len(p.feeds),
	}

	slog.Debug("Cycle started", "cycle", cycle, "feeds", len(p.feeds), "cutoff", time.Unix(cutoff, 0).UTC())

	for i, feedURL := range p.feeds {
		if i > 0 {
			if err := p.opts.Sleep(ctx, p.opts.Pause); err != nil {
				return stats, err
			}
		}

		if err := p.processFeed(ctx, feedURL, cycle, cutoff, &stats); err != nil {
			return stats, err
		}
	}

	stats.Evicted = p.cache.Evict(cutoff)
	stats.CacheSize = p.cache.Len()
	stats.FinishedAt = p.opts.Now()

	p.recorder.RecordCycle(stats.CacheSize)

	p.mu.Lock()
	p.stats.Cycles = cycle + 1
	last := stats
	p.stats.Last = &last
	p.mu.Unlock()

	slog.Info("Cycle completed",
		"cycle", cycle,
		"duration", stats.FinishedAt.Sub(started),
		"fetched", stats.Fetched,
		"failed", stats.FetchFailed+stats.ParseFailed,
		"new", stats.New,
		"notified", stats.Notified,
		"muted", stats.Muted,
		"notify_failed", stats.NotifyFailed,
		"evicted", stats.Evicted,
		"cache", stats.CacheSize)

	return stats, nil
}

// processFeed returns an error only when ctx is done; feed failures are logged and counted
func (p *Poller) processFeed(ctx context.Context, feedURL string, cycle int, cutoff int64, stats *CycleStats) error {
	fetchStarted := p.opts.Now()
	data, err := p.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Warn("Failed to fetch feed", "feed", feedURL, "error", err)
		stats.FetchFailed++
		p.recorder.RecordFetchFailure(feedURL)
		return nil
	}
	stats.Fetched++
	p.recorder.RecordFetchSuccess(feedURL, p.opts.Now().Sub(fetchStarted))

	entries, skipped, err := p.parser.Run(data)
	if err != nil {
		slog.Warn("Failed to parse feed", "feed", feedURL, "error", err)
		stats.ParseFailed++
		p.recorder.RecordParseFailure(feedURL)
		return nil
	}

	for _, skipErr := range skipped {
		slog.Warn("Skipped entry", "feed", feedURL, "error", skipErr)
	}
	stats.Skipped += len(skipped)
	p.recorder.RecordEntriesSkipped(len(skipped))

	fresh := lo.Filter(entries, func(e feed.Entry, _ int) bool {
		return e.Timestamp > cutoff
	})
	stats.Accepted += len(fresh)

	newCount := 0
	for _, entry := range fresh {
		inserted, shouldNotify := p.cache.Offer(entry, cycle > 0)
		if inserted {
			newCount++
		}
		if !shouldNotify {
			continue
		}

		if muted, reason := p.filterer.Muted(entry); muted {
			slog.Debug("Entry muted", "feed", feedURL, "title", entry.Title, "reason", reason)
			stats.Muted++
			continue
		}

		if err := p.notify(ctx, entry, stats); err != nil {
			return err
		}
	}
	stats.New += newCount

	slog.Debug("Feed processed",
		"feed", feedURL,
		"total", len(entries),
		"skipped", len(skipped),
		"fresh", len(fresh),
		"new", newCount)

	return nil
}

// notify waits NotifyWait after every attempt, delivered or not
func (p *Poller) notify(ctx context.Context, entry feed.Entry, stats *CycleStats) error {
	var partial *notify.PartialError
	err := p.notifier.Notify(entry.Title, entry.Link)

	switch {
	case err == nil:
		slog.Info("New entry", "title", entry.Title, "link", entry.Link, "published", entry.PublishedAt())
	case errors.As(err, &partial):
		slog.Warn("New entry partially notified", "title", entry.Title, "link", entry.Link, "published", entry.PublishedAt(), "error", err)
	default:
		slog.Error("Failed to notify", "title", entry.Title, "link", entry.Link, "error", err)
		stats.NotifyFailed++
		p.recorder.RecordNotification(false)
		return p.opts.Sleep(ctx, p.opts.NotifyWait)
	}

	stats.Notified++
	p.recorder.RecordNotification(true)

	return p.opts.Sleep(ctx, p.opts.NotifyWait)
}

// Stats returns the counters of the most recent cycle
func (p *Poller) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := p.stats
	if stats.Last != nil {
		last := *stats.Last
		stats.Last = &last
	}
	return stats
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsShutdown reports whether err only signals that the poller was asked to stop
func IsShutdown(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
