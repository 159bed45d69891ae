package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplifeed/feedsync/pkg/domain"
	"github.com/simplifeed/feedsync/pkg/scheduler/mocks"
)

func makeFeeds(n int, intervalMinutes int, lastUpdate time.Time) []domain.FeedSource {
	feeds := make([]domain.FeedSource, n)
	for i := range feeds {
		feeds[i] = domain.FeedSource{
			ID:                    fmt.Sprintf("f%d", i),
			Title:                 fmt.Sprintf("Feed %d", i),
			RSSURL:                fmt.Sprintf("http://example.com/%d.xml", i),
			LastUpdate:            lastUpdate,
			UpdateIntervalMinutes: intervalMinutes,
		}
	}
	return feeds
}

func pagedStore(feeds []domain.FeedSource) *mocks.StoreMock {
	return &mocks.StoreMock{
		ListFeedsFunc: func(ctx context.Context, limit, offset int) ([]domain.FeedSource, error) {
			if offset >= len(feeds) {
				return nil, nil
			}
			end := offset + limit
			if end > len(feeds) {
				end = len(feeds)
			}
			return feeds[offset:end], nil
		},
	}
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(&mocks.StoreMock{}, &mocks.IndexerMock{}, Config{})
	assert.Equal(t, 5*time.Minute, s.interval)
	assert.Equal(t, 5, s.maxWorkers)
	assert.Equal(t, 50, s.pageSize)
}

func TestScheduler_RunPassRefreshesDueFeeds(t *testing.T) {
	stale := time.Now().Add(-2 * time.Hour)
	feeds := makeFeeds(3, 60, stale)
	feeds[1].LastUpdate = time.Now() // not due

	indexer := &mocks.IndexerMock{
		RefreshFunc: func(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error) {
			return domain.FeedSuccess, nil
		},
	}

	s := NewScheduler(pagedStore(feeds), indexer, Config{})
	res, err := s.RunPass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Checked)
	assert.Equal(t, 2, res.Due)
	require.Len(t, res.Results, 2)

	refreshed := map[string]bool{}
	for _, c := range indexer.RefreshCalls() {
		refreshed[c.Source.ID] = true
	}
	assert.Equal(t, map[string]bool{"f0": true, "f2": true}, refreshed)
}

func TestScheduler_RunPassDueBoundary(t *testing.T) {
	now := time.Now()
	feeds := []domain.FeedSource{
		// elapsed exactly equals the interval, not yet due
		{ID: "exact", UpdateIntervalMinutes: 60, LastUpdate: now.Add(-60 * time.Minute)},
		// just past the interval
		{ID: "past", UpdateIntervalMinutes: 60, LastUpdate: now.Add(-61 * time.Minute)},
	}

	indexer := &mocks.IndexerMock{
		RefreshFunc: func(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error) {
			return domain.FeedSuccess, nil
		},
	}

	s := NewScheduler(pagedStore(feeds), indexer, Config{})
	s.now = func() time.Time { return now }

	res, err := s.RunPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Due)
	require.Len(t, indexer.RefreshCalls(), 1)
	assert.Equal(t, "past", indexer.RefreshCalls()[0].Source.ID)
}

func TestScheduler_RunPassPaginates(t *testing.T) {
	feeds := makeFeeds(120, 60, time.Now().Add(-2*time.Hour))
	store := pagedStore(feeds)
	indexer := &mocks.IndexerMock{
		RefreshFunc: func(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error) {
			return domain.FeedConflict, nil
		},
	}

	s := NewScheduler(store, indexer, Config{PageSize: 50})
	res, err := s.RunPass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120, res.Checked)
	assert.Equal(t, 120, res.Due)
	require.Len(t, store.ListFeedsCalls(), 3)
	assert.Equal(t, 0, store.ListFeedsCalls()[0].Offset)
	assert.Equal(t, 50, store.ListFeedsCalls()[1].Offset)
	assert.Equal(t, 100, store.ListFeedsCalls()[2].Offset)
}

func TestScheduler_RunPassBoundedConcurrency(t *testing.T) {
	feeds := makeFeeds(20, 60, time.Now().Add(-2*time.Hour))

	var inFlight, peak int32
	indexer := &mocks.IndexerMock{
		RefreshFunc: func(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return domain.FeedSuccess, nil
		},
	}

	s := NewScheduler(pagedStore(feeds), indexer, Config{MaxWorkers: 3})
	res, err := s.RunPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, res.Due)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestScheduler_RunPassIsolatesFailures(t *testing.T) {
	feeds := makeFeeds(3, 60, time.Now().Add(-2*time.Hour))

	var mu sync.Mutex
	indexer := &mocks.IndexerMock{
		RefreshFunc: func(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error) {
			mu.Lock()
			defer mu.Unlock()
			if source.ID == "f1" {
				return domain.FeedFailure, errors.New("connection refused")
			}
			return domain.FeedSuccess, nil
		},
	}

	s := NewScheduler(pagedStore(feeds), indexer, Config{})
	res, err := s.RunPass(context.Background())
	require.NoError(t, err, "a failing feed doesn't abort the pass")
	require.Len(t, res.Results, 3)

	var failed, succeeded int
	for _, r := range res.Results {
		if r.Err != nil {
			failed++
			assert.Equal(t, "f1", r.FeedID)
			continue
		}
		succeeded++
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, succeeded)
}

func TestScheduler_RunPassNothingDue(t *testing.T) {
	feeds := makeFeeds(3, 60, time.Now())
	indexer := &mocks.IndexerMock{}

	s := NewScheduler(pagedStore(feeds), indexer, Config{})
	res, err := s.RunPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Checked)
	assert.Zero(t, res.Due)
	assert.Empty(t, indexer.RefreshCalls())
}

func TestScheduler_RunPassListError(t *testing.T) {
	store := &mocks.StoreMock{
		ListFeedsFunc: func(ctx context.Context, limit, offset int) ([]domain.FeedSource, error) {
			return nil, errors.New("db closed")
		},
	}

	s := NewScheduler(store, &mocks.IndexerMock{}, Config{})
	_, err := s.RunPass(context.Background())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	feeds := makeFeeds(1, 60, time.Now().Add(-2*time.Hour))
	indexer := &mocks.IndexerMock{
		RefreshFunc: func(ctx context.Context, source *domain.FeedSource) (domain.FeedOutcome, error) {
			return domain.FeedSuccess, nil
		},
	}

	s := NewScheduler(pagedStore(feeds), indexer, Config{Interval: time.Hour})
	s.Start(context.Background())

	// the first pass runs immediately on start
	require.Eventually(t, func() bool {
		return len(indexer.RefreshCalls()) == 1
	}, time.Second, 10*time.Millisecond)

	s.Stop()
}
