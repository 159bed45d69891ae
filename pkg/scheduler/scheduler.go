package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/simplifeed/feedsync/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/indexer.go -pkg mocks -skip-ensure -fmt goimports . Indexer

// Store lists feed subscriptions
type Store interface {
	ListFeeds(ctx context.Context, limit, offset int) ([]domain.FeedSource, error)
}

// Indexer refreshes a single feed
type Indexer interface {
	Refresh(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error)
}

// Config holds scheduler configuration
type Config struct {
	Interval   time.Duration // how often a pass runs
	MaxWorkers int           // concurrent feed refreshes per pass
	PageSize   int           // feed listing page size
}

// Scheduler periodically walks all subscriptions and refreshes the due ones
type Scheduler struct {
	store      Store
	indexer    Indexer
	interval   time.Duration
	maxWorkers int
	pageSize   int

	wg     sync.WaitGroup
	cancel context.CancelFunc
	now    func() time.Time
}

// FeedResult is the outcome of refreshing one feed during a pass
type FeedResult struct {
	FeedID  string
	Title   string
	Outcome domain.FeedOutcome
	Err     error
}

// PassResult summarizes one scheduler pass
type PassResult struct {
	Checked int // subscriptions examined
	Due     int // subscriptions past their refresh interval
	Results []FeedResult
}

// NewScheduler creates a scheduler instance
func NewScheduler(store Store, indexer Indexer, cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 50
	}

	return &Scheduler{
		store:      store,
		indexer:    indexer,
		interval:   cfg.Interval,
		maxWorkers: cfg.MaxWorkers,
		pageSize:   cfg.PageSize,
		now:        time.Now,
	}
}

// Start begins periodic passes, the first one runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runAndLog(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runAndLog(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] scheduler started, interval %v, %d workers", s.interval, s.maxWorkers)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) runAndLog(ctx context.Context) {
	res, err := s.RunPass(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduler pass failed: %v", err)
		return
	}
	lgr.Printf("[INFO] scheduler pass completed: %d checked, %d due", res.Checked, res.Due)
}

// RunPass examines every subscription once and refreshes those past their
// interval. Feeds are refreshed concurrently with a bounded worker pool, one
// feed's failure never affects the others, and a pass over feeds with nothing
// new is a no-op.
func (s *Scheduler) RunPass(ctx context.Context) (*PassResult, error) {
	due, checked, err := s.collectDue(ctx)
	if err != nil {
		return nil, err
	}

	res := &PassResult{Checked: checked, Due: len(due)}
	if len(due) == 0 {
		return res, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for i := range due {
		source := due[i]
		g.Go(func() error {
			outcome, refreshErr := s.indexer.Refresh(gctx, &source)
			if refreshErr != nil {
				lgr.Printf("[WARN] refresh failed for feed %s (%s): %v", source.ID, source.Title, refreshErr)
			}

			mu.Lock()
			res.Results = append(res.Results, FeedResult{
				FeedID:  source.ID,
				Title:   source.Title,
				Outcome: outcome,
				Err:     refreshErr,
			})
			mu.Unlock()
			return nil // individual failures don't abort the pass
		})
	}
	_ = g.Wait() // workers never return errors

	return res, nil
}

// collectDue pages through all subscriptions and returns those past their interval
func (s *Scheduler) collectDue(ctx context.Context) (due []domain.FeedSource, checked int, err error) {
	now := s.now()
	for offset := 0; ; offset += s.pageSize {
		page, err := s.store.ListFeeds(ctx, s.pageSize, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("list feeds at offset %d: %w", offset, err)
		}

		checked += len(page)
		for _, f := range page {
			if f.Due(now) {
				due = append(due, f)
			}
		}

		if len(page) < s.pageSize {
			return due, checked, nil
		}
	}
}
