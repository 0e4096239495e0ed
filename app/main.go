package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/rss-toast/app/api"
	"github.com/lysyi3m/rss-toast/app/cache"
	"github.com/lysyi3m/rss-toast/app/cfg"
	"github.com/lysyi3m/rss-toast/app/config"
	"github.com/lysyi3m/rss-toast/app/feed"
	"github.com/lysyi3m/rss-toast/app/logger"
	"github.com/lysyi3m/rss-toast/app/metrics"
	"github.com/lysyi3m/rss-toast/app/notify"
	"github.com/lysyi3m/rss-toast/app/tasks"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	if appCfg == nil {
		return 0
	}

	log, logCloser, err := logger.Setup(logger.Config{Debug: appCfg.Debug, File: appCfg.LogFile}, os.Stderr)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		return 1
	}
	defer logCloser.Close()
	slog.SetDefault(log)

	settings, err := config.LoadSettings(appCfg.SettingsPath)
	if err != nil {
		slog.Error("Failed to load settings", "path", appCfg.SettingsPath, "error", err)
		return 1
	}

	feeds, err := config.NewLoader(appCfg.FeedsPath).LoadAll()
	if err != nil {
		slog.Error("Failed to load feed list", "path", appCfg.FeedsPath, "error", err)
		return 1
	}

	slog.Info("Starting RSS Toast",
		"version", appCfg.Version,
		"toast_wait", appCfg.ToastWait,
		"interval", appCfg.CycleInterval,
		"window", settings.GetWindow(),
		"feeds", len(feeds))
	for i, f := range feeds {
		slog.Info("Feed", "index", i, "url", displayURL(f))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{}
	fetcher := tasks.NewFetcher(httpClient, appCfg.UserAgent, settings.GetTimeout(), settings.MaxBodyBytes)
	parser := feed.NewParser()

	if appCfg.Check {
		return runCheck(ctx, feeds, fetcher, parser, feed.NewProber())
	}

	notifier, err := notify.New(appCfg.Notifiers, settings.Notify.Icon, os.Stdout)
	if err != nil {
		slog.Error("Failed to set up notifications", "error", err)
		return 1
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	dedup := cache.NewDedup()
	poller := tasks.NewPoller(feeds, fetcher, parser, dedup, feed.NewFilterer(settings.Filters), notifier, collector, tasks.Options{
		Window:     settings.GetWindow(),
		Pause:      settings.GetPause(),
		Interval:   appCfg.CycleInterval,
		NotifyWait: appCfg.ToastWait,
	})

	var httpServer *http.Server
	if appCfg.ListenAddr != "" {
		handler := api.NewHandler(poller, dedup, feeds, appCfg.Version)
		httpServer = &http.Server{
			Addr:         appCfg.ListenAddr,
			Handler:      api.NewServer(handler, metrics.Handler(registry)),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		go func() {
			slog.Info("Status server listening", "addr", appCfg.ListenAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Status server error", "error", err)
			}
		}()
	}

	err = poller.Run(ctx)

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Status server shutdown error", "error", err)
		}
	}

	if err != nil && !tasks.IsShutdown(err) {
		slog.Error("Poller stopped", "error", err)
		return 1
	}

	slog.Info("RSS Toast stopped", "cycles", poller.Stats().Cycles)
	return 0
}

// displayURL percent-decodes an identifier for the startup listing
func displayURL(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
