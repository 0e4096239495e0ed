package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/rss-toast/app/feed"
)

func NewHandler(stats StatsProvider, entries EntrySource, feeds []string, version string) *Handler {
	return &Handler{
		stats:     stats,
		entries:   entries,
		generator: feed.NewGenerator("RSS Toast", version),
		feeds:     feeds,
		version:   version,
		startedAt: time.Now(),
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	stats := h.stats.Stats()

	health := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"cycles":    stats.Cycles,
		"feeds":     len(h.feeds),
	}

	if stats.Last != nil {
		health["last_cycle_at"] = stats.Last.FinishedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := h.stats.Stats()

	c.JSON(http.StatusOK, gin.H{
		"version":    h.version,
		"cycles":     stats.Cycles,
		"cache_size": h.entries.Len(),
		"last_cycle": stats.Last,
	})
}

func (h *Handler) GetFeed(c *gin.Context) {
	entries := h.entries.Snapshot()

	rss, err := h.generator.Run(entries, time.Now())
	if err != nil {
		slog.Error("RSS generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(entries)))

	c.String(http.StatusOK, rss)
}

func (h *Handler) ListFeeds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": len(h.feeds),
		"feeds": h.feeds,
	})
}
