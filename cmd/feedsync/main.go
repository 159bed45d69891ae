package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/simplifeed/feedsync/pkg/cleanup"
	"github.com/simplifeed/feedsync/pkg/config"
	"github.com/simplifeed/feedsync/pkg/content"
	"github.com/simplifeed/feedsync/pkg/db"
	"github.com/simplifeed/feedsync/pkg/feed"
	"github.com/simplifeed/feedsync/pkg/indexer"
	"github.com/simplifeed/feedsync/pkg/scheduler"
	"github.com/simplifeed/feedsync/pkg/summary"
	"github.com/simplifeed/feedsync/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`
	Debug   bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool   `short:"V" long:"version" description:"show version info"`
	NoColor bool   `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	lgr.Printf("[INFO] starting feedsync version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires all components together and blocks until the context is cancelled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Summary.APIKey != "" {
		setupLog(opts.Debug, cfg.Summary.APIKey) // keep the key out of logs
	}

	database, err := db.New(ctx, db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := database.Close(); closeErr != nil {
			lgr.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	fetcher := feed.NewFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	ix := indexer.New(fetcher, database, indexer.Config{ConflictWindow: cfg.Schedule.ConflictWindow})

	sched := scheduler.NewScheduler(database, ix, scheduler.Config{
		Interval:   cfg.Schedule.Interval,
		MaxWorkers: cfg.Schedule.MaxWorkers,
		PageSize:   cfg.Schedule.PageSize,
	})
	sched.Start(ctx)
	defer sched.Stop()

	cleaner := cleanup.NewCleaner(database, cleanup.Config{
		Interval:         cfg.Cleanup.Interval,
		KeepPerFeed:      cfg.Cleanup.KeepPerFeed,
		Retention:        time.Duration(cfg.Cleanup.RetentionDays) * 24 * time.Hour,
		SummaryRetention: time.Duration(cfg.Cleanup.SummaryRetentionDays) * 24 * time.Hour,
		PageSize:         cfg.Schedule.PageSize,
	})
	cleaner.Start(ctx)
	defer cleaner.Stop()

	extractor := content.NewHTTPExtractor(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)

	var summarizer server.Summarizer // stays nil when summaries are disabled
	if cfg.Summary.Enabled {
		summarizer = summary.NewSummarizer(summary.Config{
			APIKey:       cfg.Summary.APIKey,
			Endpoint:     cfg.Summary.Endpoint,
			Model:        cfg.Summary.Model,
			Temperature:  cfg.Summary.Temperature,
			MaxTokens:    cfg.Summary.MaxTokens,
			SystemPrompt: cfg.Summary.SystemPrompt,
		}, extractor, database)
		lgr.Printf("[INFO] summaries enabled, model %s", cfg.Summary.Model)
	}

	srv := server.New(cfg, database, ix, sched, summarizer, extractor, revision, opts.Debug)
	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
