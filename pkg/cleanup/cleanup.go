package cleanup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/simplifeed/feedsync/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// summaryBucket matches the bucket the summarizer caches into
const summaryBucket = "summaries"

// Store provides the retention operations
type Store interface {
	ListFeeds(ctx context.Context, limit, offset int) ([]domain.FeedSource, error)
	DeleteStaleArticles(ctx context.Context, feedID string, keep int, cutoff time.Time) (int64, error)
	DeleteStaleEpisodes(ctx context.Context, feedID string, keep int, cutoff time.Time) (int64, error)
	DeleteBlobsOlderThan(ctx context.Context, bucket string, cutoff time.Time) (int64, error)
}

// Config holds retention configuration
type Config struct {
	Interval         time.Duration // how often a sweep runs
	KeepPerFeed      int           // newest records always kept per feed
	Retention        time.Duration // item age limit
	SummaryRetention time.Duration // cached summary age limit
	PageSize         int           // feed listing page size
}

// Cleaner periodically removes old items and expired cached summaries
type Cleaner struct {
	store Store
	cfg   Config

	wg     sync.WaitGroup
	cancel context.CancelFunc
	now    func() time.Time
}

// NewCleaner creates a cleaner instance
func NewCleaner(store Store, cfg Config) *Cleaner {
	if cfg.Interval == 0 {
		cfg.Interval = time.Hour
	}
	if cfg.KeepPerFeed == 0 {
		cfg.KeepPerFeed = 150
	}
	if cfg.Retention == 0 {
		cfg.Retention = 7 * 24 * time.Hour
	}
	if cfg.SummaryRetention == 0 {
		cfg.SummaryRetention = 3 * 24 * time.Hour
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 50
	}

	return &Cleaner{store: store, cfg: cfg, now: time.Now}
}

// Start begins periodic sweeps, the first one runs immediately
func (c *Cleaner) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(c.cfg.Interval)
		defer ticker.Stop()

		c.runAndLog(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.runAndLog(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] cleaner started, interval %v, keep %d per feed, retention %v",
		c.cfg.Interval, c.cfg.KeepPerFeed, c.cfg.Retention)
}

// Stop gracefully stops the cleaner
func (c *Cleaner) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	lgr.Printf("[INFO] cleaner stopped")
}

func (c *Cleaner) runAndLog(ctx context.Context) {
	items, summaries, err := c.RunSweep(ctx)
	if err != nil {
		lgr.Printf("[ERROR] cleanup sweep failed: %v", err)
		return
	}
	if items > 0 || summaries > 0 {
		lgr.Printf("[INFO] cleanup removed %d items and %d cached summaries", items, summaries)
	}
}

// RunSweep walks all feeds once, removing items past retention beyond the
// per-feed cap, then drops expired cached summaries. Returns removed counts.
func (c *Cleaner) RunSweep(ctx context.Context) (items, summaries int64, err error) {
	now := c.now()
	itemCutoff := now.Add(-c.cfg.Retention)

	for offset := 0; ; offset += c.cfg.PageSize {
		page, listErr := c.store.ListFeeds(ctx, c.cfg.PageSize, offset)
		if listErr != nil {
			return items, summaries, fmt.Errorf("list feeds at offset %d: %w", offset, listErr)
		}

		for _, f := range page {
			var removed int64
			var sweepErr error
			if f.Kind == domain.KindPodcast {
				removed, sweepErr = c.store.DeleteStaleEpisodes(ctx, f.ID, c.cfg.KeepPerFeed, itemCutoff)
			} else {
				removed, sweepErr = c.store.DeleteStaleArticles(ctx, f.ID, c.cfg.KeepPerFeed, itemCutoff)
			}
			if sweepErr != nil {
				// keep sweeping the remaining feeds
				lgr.Printf("[WARN] cleanup failed for feed %s: %v", f.ID, sweepErr)
				continue
			}
			items += removed
		}

		if len(page) < c.cfg.PageSize {
			break
		}
	}

	summaries, err = c.store.DeleteBlobsOlderThan(ctx, summaryBucket, now.Add(-c.cfg.SummaryRetention))
	if err != nil {
		return items, 0, fmt.Errorf("delete expired summaries: %w", err)
	}

	return items, summaries, nil
}
