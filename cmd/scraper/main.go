package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/nahid-013/alkoteka-scraper/internal/config"
	"github.com/nahid-013/alkoteka-scraper/internal/crawler"
	"github.com/nahid-013/alkoteka-scraper/internal/database"
	"github.com/nahid-013/alkoteka-scraper/internal/export"
	"github.com/nahid-013/alkoteka-scraper/internal/fetch"
	"github.com/nahid-013/alkoteka-scraper/internal/observability"
	"github.com/nahid-013/alkoteka-scraper/internal/parser"
	"github.com/nahid-013/alkoteka-scraper/pkg/logger"
)

func main() {
	var (
		seedsFile = flag.String("seeds", "", "File with start URLs, one per line (# comments allowed)")
		output    = flag.String("output", "", "NDJSON output path")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *seedsFile != "" {
		cfg.Crawler.SeedsFile = *seedsFile
	}
	if *output != "" {
		cfg.Export.OutputPath = *output
	}

	logg := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	logg.Info("starting alkoteka scraper")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logg.Info("shutdown signal received")
		cancel()
	}()

	observability.Start(cfg.Metrics.Port)

	sink, err := buildSink(ctx, cfg)
	if err != nil {
		logg.Error("failed to build export sink", "error", err)
		os.Exit(1)
	}
	defer sink.Close()

	fetcher := fetch.NewClient(fetch.Options{
		UserAgent:         cfg.Fetch.UserAgent,
		AcceptLanguage:    cfg.Fetch.AcceptLanguage,
		Region:            cfg.Fetch.Region,
		Timeout:           cfg.Fetch.Timeout,
		MaxRetries:        cfg.Fetch.MaxRetries,
		RetryDelay:        cfg.Fetch.RetryDelay,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
	}, logg)

	seeds := crawler.LoadSeeds(cfg.Crawler.SeedsFile)
	logg.Info("seeds loaded", "file", cfg.Crawler.SeedsFile, "count", len(seeds))

	c := crawler.New(fetcher, parser.NewAlkotekaParser(), sink, cfg.Crawler.Workers, logg)
	if err := c.Run(ctx, seeds); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("crawl aborted", "error", err)
		os.Exit(1)
	}

	logg.Info("crawl complete", "output", cfg.Export.OutputPath)
}

// buildSink assembles the export fan-out: NDJSON always, Postgres and the
// redis stream when configured.
func buildSink(ctx context.Context, cfg *config.Config) (export.Sink, error) {
	ndjson, err := export.OpenNDJSON(cfg.Export.OutputPath)
	if err != nil {
		return nil, err
	}
	sinks := []export.Sink{ndjson}

	if cfg.Export.DatabaseURL != "" {
		store, err := database.New(ctx, cfg.Export.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, err
		}
		sinks = append(sinks, export.NewPostgresSink(store))
	}

	if cfg.Export.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.Export.RedisURL)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, export.NewRedisStreamSink(redis.NewClient(opts), cfg.Export.RedisStream))
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return export.NewMultiSink(sinks...), nil
}
