package cleanup

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplifeed/feedsync/pkg/cleanup/mocks"
	"github.com/simplifeed/feedsync/pkg/domain"
)

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

func TestNewCleaner_Defaults(t *testing.T) {
	c := NewCleaner(&mocks.StoreMock{}, Config{})
	assert.Equal(t, time.Hour, c.cfg.Interval)
	assert.Equal(t, 150, c.cfg.KeepPerFeed)
	assert.Equal(t, 7*24*time.Hour, c.cfg.Retention)
	assert.Equal(t, 3*24*time.Hour, c.cfg.SummaryRetention)
	assert.Equal(t, 50, c.cfg.PageSize)
}

func TestCleaner_RunSweep(t *testing.T) {
	now := time.Now()
	feeds := []domain.FeedSource{
		{ID: "f1", Kind: domain.KindArticle},
		{ID: "p1", Kind: domain.KindPodcast},
	}

	store := pagedStore(feeds)
	store.DeleteStaleArticlesFunc = func(ctx context.Context, feedID string, keep int, cutoff time.Time) (int64, error) {
		return 4, nil
	}
	store.DeleteStaleEpisodesFunc = func(ctx context.Context, feedID string, keep int, cutoff time.Time) (int64, error) {
		return 2, nil
	}
	store.DeleteBlobsOlderThanFunc = func(ctx context.Context, bucket string, cutoff time.Time) (int64, error) {
		return 3, nil
	}

	c := NewCleaner(store, Config{})
	c.now = func() time.Time { return now }

	items, summaries, err := c.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), items)
	assert.Equal(t, int64(3), summaries)

	// article feeds sweep articles, podcast feeds sweep episodes
	require.Len(t, store.DeleteStaleArticlesCalls(), 1)
	assert.Equal(t, "f1", store.DeleteStaleArticlesCalls()[0].FeedID)
	assert.Equal(t, 150, store.DeleteStaleArticlesCalls()[0].Keep)
	assert.Equal(t, now.Add(-7*24*time.Hour), store.DeleteStaleArticlesCalls()[0].Cutoff)

	require.Len(t, store.DeleteStaleEpisodesCalls(), 1)
	assert.Equal(t, "p1", store.DeleteStaleEpisodesCalls()[0].FeedID)

	require.Len(t, store.DeleteBlobsOlderThanCalls(), 1)
	assert.Equal(t, "summaries", store.DeleteBlobsOlderThanCalls()[0].Bucket)
	assert.Equal(t, now.Add(-3*24*time.Hour), store.DeleteBlobsOlderThanCalls()[0].Cutoff)
}

func TestCleaner_RunSweepPaginates(t *testing.T) {
	feeds := make([]domain.FeedSource, 120)
	for i := range feeds {
		feeds[i] = domain.FeedSource{ID: fmt.Sprintf("f%d", i), Kind: domain.KindArticle}
	}

	store := pagedStore(feeds)
	store.DeleteStaleArticlesFunc = func(ctx context.Context, feedID string, keep int, cutoff time.Time) (int64, error) {
		return 1, nil
	}
	store.DeleteBlobsOlderThanFunc = func(ctx context.Context, bucket string, cutoff time.Time) (int64, error) {
		return 0, nil
	}

	c := NewCleaner(store, Config{PageSize: 50})
	items, _, err := c.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), items)
	assert.Len(t, store.ListFeedsCalls(), 3)
}

func TestCleaner_RunSweepFeedFailureIsolated(t *testing.T) {
	feeds := []domain.FeedSource{
		{ID: "f1", Kind: domain.KindArticle},
		{ID: "f2", Kind: domain.KindArticle},
	}

	store := pagedStore(feeds)
	store.DeleteStaleArticlesFunc = func(ctx context.Context, feedID string, keep int, cutoff time.Time) (int64, error) {
		if feedID == "f1" {
			return 0, errors.New("locked")
		}
		return 5, nil
	}
	store.DeleteBlobsOlderThanFunc = func(ctx context.Context, bucket string, cutoff time.Time) (int64, error) {
		return 0, nil
	}

	c := NewCleaner(store, Config{})
	items, _, err := c.RunSweep(context.Background())
	require.NoError(t, err, "one feed failing doesn't abort the sweep")
	assert.Equal(t, int64(5), items)
	assert.Len(t, store.DeleteStaleArticlesCalls(), 2)
}

func TestCleaner_StartStop(t *testing.T) {
	store := pagedStore(nil)
	store.DeleteBlobsOlderThanFunc = func(ctx context.Context, bucket string, cutoff time.Time) (int64, error) {
		return 0, nil
	}

	c := NewCleaner(store, Config{Interval: time.Hour})
	c.Start(context.Background())

	require.Eventually(t, func() bool {
		return len(store.DeleteBlobsOlderThanCalls()) == 1
	}, time.Second, 10*time.Millisecond)

	c.Stop()
}
