package tasks

import (
	"context"
	"time"

	"github.com/lysyi3m/rss-toast/app/feed"
	"github.com/lysyi3m/rss-toast/app/metrics"
	"github.com/lysyi3m/rss-toast/app/notify"
)

type FetcherInterface interface {
	Fetch(ctx context.Context, feedURL string) ([]byte, error)
}

type ParserInterface interface {
	Run(data []byte) ([]feed.Entry, []error, error)
}

type NotifierInterface interface {
	Notify(title, link string) error
}

type RecorderInterface interface {
	RecordCycle(cacheEntries int)
	RecordFetchSuccess(feed string, latency time.Duration)
	RecordFetchFailure(feed string)
	RecordParseFailure(feed string)
	RecordEntriesSkipped(count int)
	RecordNotification(delivered bool)
}

var (
	_ FetcherInterface  = (*Fetcher)(nil)
	_ ParserInterface   = (*feed.Parser)(nil)
	_ NotifierInterface = (notify.Notifier)(nil)
	_ RecorderInterface = (*metrics.Collector)(nil)
)

type nopRecorder struct{}

func (nopRecorder) RecordCycle(int)                          {}
func (nopRecorder) RecordFetchSuccess(string, time.Duration) {}
func (nopRecorder) RecordFetchFailure(string)                {}
func (nopRecorder) RecordParseFailure(string)                {}
func (nopRecorder) RecordEntriesSkipped(int)                 {}
func (nopRecorder) RecordNotification(bool)                  {}
