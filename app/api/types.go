package api

import (
	"time"

	"github.com/lysyi3m/rss-toast/app/feed"
	"github.com/lysyi3m/rss-toast/app/tasks"
)

type StatsProvider interface {
	Stats() tasks.Stats
}

type EntrySource interface {
	Snapshot() []feed.Entry
	Len() int
}

type GeneratorInterface interface {
	Run(entries []feed.Entry, builtAt time.Time) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

type Handler struct {
	stats     StatsProvider
	entries   EntrySource
	generator GeneratorInterface
	feeds     []string
	version   string
	startedAt time.Time
}
