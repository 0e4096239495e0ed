package feed

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
)

// Summary is gofeed's view of a feed, used to sanity-check the feed list
type Summary struct {
	FeedType string
	Title    string
	Items    int
	Latest   time.Time
}

type Prober struct {
	gofeedParser *gofeed.Parser
}

func NewProber() *Prober {
	return &Prober{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *Prober) Run(data []byte) (*Summary, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	dates := lo.FilterMap(feed.Items, func(item *gofeed.Item, _ int) (time.Time, bool) {
		if item.UpdatedParsed != nil {
			return *item.UpdatedParsed, true
		}
		if item.PublishedParsed != nil {
			return *item.PublishedParsed, true
		}
		return time.Time{}, false
	})

	return &Summary{
		FeedType: feed.FeedType,
		Title:    feed.Title,
		Items:    len(feed.Items),
		Latest: lo.MaxBy(dates, func(a, b time.Time) bool {
			return a.After(b)
		}),
	}, nil
}
