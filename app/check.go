package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/lysyi3m/rss-toast/app/feed"
	"github.com/lysyi3m/rss-toast/app/tasks"
	"github.com/samber/lo"
)

type checkResult struct {
	url     string
	summary *feed.Summary
	entries int
	skipped int
	err     error
}

// runCheck fetches every feed once and reports what both parsers see.
// It returns a non-zero exit code when any feed failed.
func runCheck(ctx context.Context, feeds []string, fetcher tasks.FetcherInterface, parser tasks.ParserInterface, prober *feed.Prober) int {
	results := make([]checkResult, 0, len(feeds))

	for _, feedURL := range feeds {
		if ctx.Err() != nil {
			break
		}
		results = append(results, checkFeed(ctx, feedURL, fetcher, parser, prober))
	}

	for _, r := range results {
		if r.err != nil {
			slog.Error("Feed check failed", "feed", displayURL(r.url), "error", r.err)
			continue
		}

		attrs := []any{"feed", displayURL(r.url), "entries", r.entries, "skipped", r.skipped}
		if r.summary != nil {
			attrs = append(attrs, "type", r.summary.FeedType, "title", r.summary.Title, "items", r.summary.Items)
			if !r.summary.Latest.IsZero() {
				attrs = append(attrs, "latest", r.summary.Latest.Format(time.RFC3339))
			}
		}
		slog.Info("Feed check passed", attrs...)
	}

	failed := lo.Filter(results, func(r checkResult, _ int) bool {
		return r.err != nil
	})

	slog.Info("Check completed", "feeds", len(results), "failed", len(failed))

	if len(failed) > 0 || len(results) < len(feeds) {
		return 1
	}
	return 0
}

func checkFeed(ctx context.Context, feedURL string, fetcher tasks.FetcherInterface, parser tasks.ParserInterface, prober *feed.Prober) checkResult {
	result := checkResult{url: feedURL}

	data, err := fetcher.Fetch(ctx, feedURL)
	if err != nil {
		result.err = err
		return result
	}

	entries, skipped, err := parser.Run(data)
	if err != nil {
		result.err = err
		return result
	}
	result.entries = len(entries)
	result.skipped = len(skipped)

	// gofeed is more lenient; its view is informational only
	if summary, err := prober.Run(data); err == nil {
		result.summary = summary
	} else {
		slog.Debug("gofeed could not read feed", "feed", feedURL, "error", err)
	}

	return result
}
