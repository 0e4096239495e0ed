package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records polling activity as Prometheus metrics
type Collector struct {
	cycles         prometheus.Counter
	fetchSuccess   prometheus.Counter
	fetchFail      prometheus.Counter
	fetchLatency   prometheus.Histogram
	parseFail      prometheus.Counter
	entriesSkipped prometheus.Counter
	notifications  prometheus.Counter
	notifyFail     prometheus.Counter
	cacheEntries   prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsstoast_cycles_total",
			Help: "Completed polling cycles",
		}),
		fetchSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsstoast_fetch_success_total",
			Help: "Successful feed fetches",
		}),
		fetchFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsstoast_fetch_fail_total",
			Help: "Failed feed fetches",
		}),
		fetchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rsstoast_fetch_latency_seconds",
			Help:    "Feed fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		parseFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsstoast_parse_fail_total",
			Help: "Feeds that were not well-formed XML",
		}),
		entriesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsstoast_entries_skipped_total",
			Help: "Entries skipped because their date could not be parsed",
		}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsstoast_notifications_total",
			Help: "Notifications delivered",
		}),
		notifyFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsstoast_notify_fail_total",
			Help: "Notifications that failed to deliver",
		}),
		cacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rsstoast_cache_entries",
			Help: "Entries held in the dedup cache after the last cycle",
		}),
	}

	reg.MustRegister(
		c.cycles,
		c.fetchSuccess,
		c.fetchFail,
		c.fetchLatency,
		c.parseFail,
		c.entriesSkipped,
		c.notifications,
		c.notifyFail,
		c.cacheEntries,
	)

	return c
}

func (c *Collector) RecordCycle(cacheEntries int) {
	c.cycles.Inc()
	c.cacheEntries.Set(float64(cacheEntries))
}

func (c *Collector) RecordFetchSuccess(feed string, latency time.Duration) {
	c.fetchSuccess.Inc()
	c.fetchLatency.Observe(latency.Seconds())
}

func (c *Collector) RecordFetchFailure(feed string) {
	c.fetchFail.Inc()
}

func (c *Collector) RecordParseFailure(feed string) {
	c.parseFail.Inc()
}

func (c *Collector) RecordEntriesSkipped(count int) {
	c.entriesSkipped.Add(float64(count))
}

func (c *Collector) RecordNotification(delivered bool) {
	if delivered {
		c.notifications.Inc()
	} else {
		c.notifyFail.Inc()
	}
}

// Handler returns the Prometheus scrape handler
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
